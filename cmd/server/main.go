package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/visualmath/server/internal/config"
	"codeberg.org/visualmath/server/internal/logger"
)

// @title VisualMath API
// @version 1.0
// @description English to math animations: prompt in, rendered Manim video out.
// @description
// @description The gateway forwards prompts to the external code generation and
// @description video rendering service and returns the rendered video URL.

// @contact.name API Support
// @contact.url https://codeberg.org/visualmath/server

// @license.name MIT

func main() {
	logger.Info("starting visualmath server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     srv.router,
		ReadTimeout: 15 * time.Second,
		// no write timeout: a render can keep the request open for minutes
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			"port", cfg.Port,
			"api_base_url", cfg.APIBaseURL,
			"frontend_url", cfg.FrontendURL,
			"model", cfg.GeneratorModel,
		)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
