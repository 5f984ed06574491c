package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const logDir = "logs"

var (
	snapshotPath string
	settingsPath string
	debugFlag    bool
	muteFlag     bool
)

func main() {
	root := &cobra.Command{
		Use:   "memoa",
		Short: "Navigate a memorial space in your terminal",
		Long: "memoa renders a profile's content snapshot as an interactive\n" +
			"3D memorial space: category icons on a ring, a media carousel,\n" +
			"and a starfield backdrop.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	root.Flags().StringVar(&snapshotPath, "snapshot", "snapshot.json", "path to the content snapshot export")
	root.Flags().StringVar(&settingsPath, "settings", "memoa.yaml", "path to the customization settings file")
	root.Flags().BoolVar(&debugFlag, "debug", false, "write a debug log under logs/")
	root.Flags().BoolVar(&muteFlag, "mute", false, "start with audio muted")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger, err := setupLogging(debugFlag)
	if err != nil {
		return err
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Panic recovery: restore the terminal before the stack trace
	// prints, or the shell is left in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nmemoa crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	app, err := NewApp(screen, snapshotPath, settingsPath, muteFlag, logger)
	if err != nil {
		screen.Fini()
		return err
	}
	defer app.Close()

	app.Run()
	return nil
}

// setupLogging returns a nop logger unless debug is requested: the
// TUI owns the terminal, so logs go to a file or nowhere
func setupLogging(enabled bool) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(logDir, "memoa.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
