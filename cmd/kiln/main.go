// Package main is the entry point for the kiln CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/adapters/cas"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/adapters/environment"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	progrocktracer "go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/zerr"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := execute(); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}

func execute() error {
	ctx := context.Background()

	log := logger.New()
	defer func() { _ = log.Close() }()

	executor := shell.NewExecutor()
	envFactory := environment.NewFactory(nil)
	walker := fs.NewWalker()
	hasher := fs.NewHasher(walker)

	configLoader := config.NewLoader(executor, envFactory, hasher)

	metaStore := cas.NewStore()
	outputVerifier := fs.NewVerifier()
	tracer := telemetry.NewNoOpTracer()

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	application := app.New(configLoader, metaStore, outputVerifier, log, tracer, home, nil, "out", "out-external")

	cli := commands.New(application)
	cli.SetConfigHook(func(path string) {
		configLoader.Filename = path
	})
	cli.SetTelemetryHook(func(backend string) error {
		switch backend {
		case "none", "":
			// application already holds a NoOpTracer.
		case "otel":
			application.SetTracer(telemetry.NewOTelTracer("kiln"))
		case "progrock":
			application.SetTracer(progrocktracer.New())
		default:
			return zerr.With(zerr.New("unknown telemetry backend"), "telemetry", backend)
		}
		return nil
	})

	return cli.Execute(ctx)
}
