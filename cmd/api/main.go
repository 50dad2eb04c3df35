package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"arborlove_quote/internal/adapter/http/routes"
	"arborlove_quote/internal/infrastructure/config"
	"arborlove_quote/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           ArborLove Quote Service API
// @version         1.0
// @description     Tree service quoting: pricing, stored quotes, photo uploads and form options.

// @contact.name   ArborLove
// @contact.email  info@arborlove.com

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("service stopped", zap.Error(err))
		os.Exit(1)
	}
}
