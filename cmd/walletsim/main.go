package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/afriwallet/afriwallet/internal/logging"
	"github.com/afriwallet/afriwallet/internal/simulator"
)

// envOr reads an environment variable with a fallback.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	addr := flag.String("addr", envOr("WALLETSIM_ADDR", "127.0.0.1:8089"), "listen address")
	level := flag.String("l", envOr("WALLETSIM_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(*level)

	cfg := simulator.DefaultConfig()
	if secret := os.Getenv("WALLETSIM_JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}

	srv := simulator.New(cfg, logger)

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen(*addr)
	}()
	logger.Info("simulator listening", "addr", *addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("simulator exited cleanly")
}
