package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bizdesk/backend/internal/cli"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	// Logs go to stderr so that reports and exports on stdout stay clean.
	// The format defaults to JSON, LOG_FORMAT=human switches to a
	// human readable format
	output := io.Writer(os.Stderr)
	if logFormat, ok := os.LookupEnv("LOG_FORMAT"); ok && logFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
