//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

// mpv listens on a named pipe on windows, which the unix socket client cannot reach.
func checkPlatform() error {
	return ErrUnsupportedPlatform
}
