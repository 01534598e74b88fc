package cli

import (
	"fmt"

	"github.com/AntonioJCosta/wasabi/internal/handlers/ui"
	"github.com/AntonioJCosta/wasabi/internal/repositories/config"
	"github.com/spf13/cobra"
)

// Session is a ready-to-run interaction loop.
type Session interface {
	Run() error
}

// SessionFactory builds a Session from the resolved configuration.
// The returned cleanup function is called once the session ends.
type SessionFactory func(cfg config.Config) (Session, func(), error)

type rootFlags struct {
	configPath  string
	prompt      string
	historyFile string
	noColor     bool
	debug       bool
}

func NewRootCommand(version string, newSession SessionFactory) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "wasabi",
		Short: "wasabi is a small interactive shell.",
		Long: `wasabi reads command lines, runs the builtins cd, ls, cwd, mkdir, rmdir,
help and exit itself, and launches every other command as an external program.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if newSession == nil {
				return fmt.Errorf("session factory not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, flags, newSession)
		},
	}

	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to the config file (default $HOME/.wasabi/config.yaml).")
	rootCmd.Flags().StringVarP(&flags.prompt, "prompt", "p", "", "Prompt shown before each command line.")
	rootCmd.Flags().StringVar(&flags.historyFile, "history-file", "", "File used to persist command history (default $HOME/.wasabi/history).")
	rootCmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output.")
	rootCmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "Log dispatch and process events to stderr.")

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, flags *rootFlags, newSession SessionFactory) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}
	if !cfg.Color {
		ui.DisableColors()
	}

	session, cleanup, err := newSession(cfg)
	if err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}
	return session.Run()
}

// resolveConfig layers explicitly set flags over the file and environment configuration.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	path := flags.configPath
	if path == "" {
		if defaultPath, err := config.DefaultPath(); err == nil {
			path = defaultPath
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("could not load configuration: %w", err)
	}

	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = flags.prompt
	}
	if cmd.Flags().Changed("history-file") {
		cfg.HistoryFile = flags.historyFile
	}
	if flags.noColor {
		cfg.Color = false
	}
	if flags.debug {
		cfg.Debug = true
	}
	return cfg, nil
}
