package commands

import (
	"context"
	"fmt"
	stdLog "log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/keyasu/juejin-auto/internal/config"
	"github.com/keyasu/juejin-auto/internal/lib/logger/fanout"
	"github.com/keyasu/juejin-auto/internal/lib/logger/runlog"
	"github.com/keyasu/juejin-auto/internal/lib/logger/slogpretty"
)

var rootCmd = &cobra.Command{
	Use:   "juejin-auto",
	Short: "juejin-auto performs the daily juejin check-in and reports the result.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads .env and the configuration, and builds the logger.
// Fatal here is fine: nothing has happened yet that needs reporting.
func setup() (*config.Config, *slog.Logger) {
	if err := godotenv.Load(".env"); err != nil {
		stdLog.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdLog.Fatalf("Failed to load config: %v", err)
	}

	log := setupLogger(cfg.Env, cfg.Log.File)

	return cfg, log
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env, logFile string) *slog.Logger {
	var console slog.Handler

	switch env {
	case envLocal:
		console = setupPrettyHandler()
	case envDev:
		console = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		console = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		console = setupPrettyHandler()
	}

	if logFile == "" {
		return slog.New(console)
	}

	// every record also lands in the append-only run log file
	return slog.New(fanout.New(console, runlog.New(logFile, nil)))
}

func setupPrettyHandler() slog.Handler {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return opts.NewPrettyHandler(os.Stdout)
}
