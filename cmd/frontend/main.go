package main

import (
	"fmt"

	"provider_map/internal/config"
	"provider_map/internal/gateway"
	"provider_map/internal/logger"
	"provider_map/internal/session"
	"provider_map/internal/webapp"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	// Неразрешимый адрес API не валит процесс: страницы показывают
	// инструкцию по настройке
	base, err := gateway.ResolveBaseURL(cfg.Frontend)
	if err != nil {
		logger.Error("API address is not configured", "error", err)
	} else {
		logger.Info("API base resolved", "base", base)
	}

	gw := gateway.NewClient(base)
	sessions := session.NewStore(cfg.Frontend.SessionSecret, cfg.Frontend.CookieSecure)

	server := webapp.NewServer(gw, sessions, cfg.Frontend, err)
	router, err := server.Router()
	if err != nil {
		logger.Fatal("Failed to build router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Frontend.Host, cfg.Frontend.Port)
	logger.Info(fmt.Sprintf("🚀 Frontend starting on %s", address))
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}
