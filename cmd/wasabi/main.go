package main

import (
	"os"

	"github.com/AntonioJCosta/wasabi/internal/adapters/linesource"
	"github.com/AntonioJCosta/wasabi/internal/adapters/oscommand"
	"github.com/AntonioJCosta/wasabi/internal/adapters/osfs"
	"github.com/AntonioJCosta/wasabi/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/wasabi/internal/core/services/builtins"
	"github.com/AntonioJCosta/wasabi/internal/core/services/dispatch"
	"github.com/AntonioJCosta/wasabi/internal/core/services/interaction"
	"github.com/AntonioJCosta/wasabi/internal/handlers/cli"
	"github.com/AntonioJCosta/wasabi/internal/handlers/ui"
	"github.com/AntonioJCosta/wasabi/internal/repositories/config"
	"github.com/AntonioJCosta/wasabi/internal/repositories/history"
	"github.com/AntonioJCosta/wasabi/pkg/log"
)

// Version is set at build time
var Version = "dev"

// streams are the standard files the shell and its children share.
type streams struct {
	in, out, err *os.File
}

func main() {
	rootCmd := cli.NewRootCommand(Version, func(cfg config.Config) (cli.Session, func(), error) {
		return buildSession(cfg, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildSession(cfg config.Config, std streams) (*interaction.Loop, func(), error) {
	logger := log.New(std.err, cfg.Debug, !cfg.Color)

	historyFile, err := history.NewDefaultHistoryFileFinder(cfg.HistoryFile).Find()
	if err != nil {
		// The shell still works without history.
		logger.Warn().Err(err).Msg("command history disabled")
		historyFile = ""
	}

	source, closer, err := linesource.New(std.in, std.out, historyFile)
	if err != nil {
		return nil, nil, err
	}

	console := ui.NewConsole(std.out, std.err)
	registry := builtins.NewRegistry(osfs.NewFilesystem(), console)
	launcher := oscommand.NewProcessLauncher(std.in, std.out, std.err, logger)
	dispatcher := dispatch.NewService(registry, launcher, console, logger)

	loop := interaction.NewLoop(source, tokenizer.NewWhitespaceTokenizer(), dispatcher, ui.PromptColor(cfg.Prompt), logger)
	cleanup := func() {
		if err := closer.Close(); err != nil {
			logger.Warn().Err(err).Msg("could not close line source")
		}
	}
	return loop, cleanup, nil
}
