package main

import (
	"context"
	"fmt"
	"os"

	"github.com/afriwallet/afriwallet/internal/client/cli"
	"github.com/afriwallet/afriwallet/internal/client/config"
	"github.com/afriwallet/afriwallet/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start: %v\n", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
