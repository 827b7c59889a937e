// Package where resolves the directories tcut reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/aschmelyun/tcut/constant"
	"github.com/aschmelyun/tcut/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "TCUT_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, creating it if needed.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs returns the directory log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Temp returns a scratch directory for transient files such as IPC sockets.
// It always lives on the real filesystem since mpv has to reach it.
func Temp() string {
	path := filepath.Join(os.TempDir(), constant.App)
	lo.Must0(os.MkdirAll(path, 0o700))
	return path
}
