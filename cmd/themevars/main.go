package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/themevars/internal/logger"
	"github.com/alexisbeaulieu97/themevars/internal/ports"
)

func main() {
	boot, err := logger.New(logger.Options{Level: logger.LevelFromEnv(envPrefix + "_LOG_LEVEL"), Console: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := ports.WithCorrelationID(context.Background(), ports.GenerateCorrelationID())
	boot = boot.ForContext(ctx)
	boot.With("args", os.Args[1:]).Debug("starting themevars")

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if boot.DebugEnabled() {
			boot.Error(err, "command failed")
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
