package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rpggio/commissions/internal/app"
	"github.com/rpggio/commissions/internal/cli"
	"github.com/rpggio/commissions/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	open := func(cmd *cobra.Command) (*app.App, error) {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}

		// Logs go to stderr so stdout stays clean for command output and JSON-RPC.
		logWriter := io.Writer(os.Stderr)
		if cfg.Log.Path != "" {
			fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
			} else {
				closers = append(closers, file)
				logWriter = fileWriter
			}
		}
		logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
			Level: parseLogLevel(cfg.Log.Level),
		}))

		return app.New(cfg, logger)
	}

	if err := cli.NewRootCmd(open).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		for _, c := range closers {
			c.Close()
		}
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
