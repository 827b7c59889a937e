package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aschmelyun/tcut/config"
	"github.com/aschmelyun/tcut/constant"
	"github.com/aschmelyun/tcut/key"
	"github.com/aschmelyun/tcut/log"
	"github.com/aschmelyun/tcut/player"
	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Show version info")

	rootCmd.Flags().String("mpv", "mpv", "mpv executable used for playback")
	lo.Must0(viper.BindPFlag(key.PlayerBinary, rootCmd.Flags().Lookup("mpv")))

	rootCmd.Flags().Int("poll-interval", 50, "Milliseconds between selection end checks while previewing")
	lo.Must0(viper.BindPFlag(key.PlayerPollInterval, rootCmd.Flags().Lookup("poll-interval")))

	rootCmd.Flags().Int("seek-step", 5, "Seconds skipped by the left/right keys")
	lo.Must0(viper.BindPFlag(key.TimelineSeekStep, rootCmd.Flags().Lookup("seek-step")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		if cmd == rootCmd {
			printRequirements()
		}
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App + " [file]",
	Short: "Mark and preview an excerpt of a local audio file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			fmt.Println(BulletStyle.Render("└") + TextStyle.Render(constant.Version))
			return nil
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New(constant.App + " needs an interactive terminal")
		}

		binary := viper.GetString(key.PlayerBinary)
		if !checkDependency(binary) {
			printRequirements()
			return fmt.Errorf("%s is required for playback", binary)
		}

		opts := settingsFromConfig()

		var inputFile string
		if len(args) == 1 {
			inputFile = args[0]
			if err := validateAudioFile(inputFile, opts.extensions); err != nil {
				return err
			}
		}

		fmt.Println(BulletStyle.Render("┌") + TitleStyle.Render(constant.App))
		log.Info("starting " + constant.App + " " + constant.Version)

		backend := player.NewMPV(binary)
		defer backend.Close()

		p := tea.NewProgram(newModel(backend, opts, inputFile))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

func printRequirements() {
	fmt.Println(BulletStyle.Render("├") + TextStyle.Render("Requirements:"))

	dependency := viper.GetString(key.PlayerBinary)
	status := "✔ installed"
	if !checkDependency(dependency) {
		status = "✗ missing"
	}
	name := filepath.Base(dependency)
	spaces := strings.Repeat(" ", max(10-len(name), 1))
	fmt.Println(BulletStyle.Render("├────") + TextStyle.Render(name) + DimTextStyle.Render(spaces+status))

	fmt.Println(BulletStyle.Render("│"))
	exts := normalizeExtensions(viper.GetStringSlice(key.FilesExtensions))
	fmt.Println(BulletStyle.Render("└") + TextStyle.Render("Supported formats:") + DimTextStyle.Render(" "+strings.Join(exts, ", ")))
}

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%s: %v", constant.App, err)
		fmt.Fprintf(os.Stderr, BulletStyle.Render("└")+TextStyle.Render("Error: %s")+"\n", err)
		os.Exit(1)
	}
}
