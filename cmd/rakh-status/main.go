// Command rakh-status serves the HTTP status catalogue as read-only JSON.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/gommon/log"

	"github.com/adeilh/go-rakh-status/httpx"
	"github.com/adeilh/go-rakh-status/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("rakh-status: %v", err)
	}

	logger := log.New(cfg.Log.Prefix)
	logger.SetLevel(parseLevel(cfg.Log.Level))

	opts := []httpx.ServerOption{
		httpx.WithAddress(cfg.Server.Address),
		httpx.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		httpx.WithLogger(logger),
	}
	if len(cfg.Server.CORSOrigins) > 0 {
		cors := httpx.DefaultCORSConfig
		cors.AllowOrigins = cfg.Server.CORSOrigins
		opts = append(opts, httpx.WithCORS(&cors))
	}

	server := httpx.NewServer(opts...)
	server.RegisterRoutes(httpx.CatalogueRoutes(cfg.Server.Prefix))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = server.Start(ctx, httpx.WithShutdownTimeout(cfg.Server.ShutdownTimeout))
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("rakh-status: %v", err)
		os.Exit(1)
	}
	logger.Info("rakh-status: stopped")
}

func parseLevel(s string) log.Lvl {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
