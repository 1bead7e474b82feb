// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the BrandPress AI authoring server.
// It loads configuration, connects to PostgreSQL, wires the AI providers,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"brandpress/internal/ai"
	"brandpress/internal/config"
	"brandpress/internal/database"
	"brandpress/internal/handlers"
	"brandpress/internal/router"
	"brandpress/internal/search"
	"brandpress/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Best effort: a missing .env is fine, the environment wins anyway.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Provider clients. An empty API key leaves a client constructed but
	// unconfigured; endpoints report that instead of crashing.
	gemini := ai.NewGemini(ai.GeminiConfig{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		ImageModel: cfg.GeminiImageModel,
		BaseURL:    cfg.GeminiBaseURL,
	})
	openai := ai.NewOpenAI(ai.OpenAIConfig{
		APIKey:         cfg.OpenAIAPIKey,
		ImageModel:     cfg.OpenAIImageModel,
		EmbeddingModel: cfg.OpenAIEmbeddingModel,
		BaseURL:        cfg.OpenAIBaseURL,
	})
	orchestrator := ai.NewOrchestrator(gemini, gemini, openai)

	searchService := search.New(db, openai, cfg.EnableSemanticSearch)

	slog.Info("providers initialized",
		"gemini", gemini.Configured(),
		"openai", openai.Configured(),
		"semantic_search", searchService.Enabled(),
	)

	aiHandlers := handlers.NewAI(gemini, orchestrator, openai, searchService)
	searchHandlers := handlers.NewSearch(searchService, store.NewArticleStore(db))

	r := router.New(aiHandlers, searchHandlers)

	// WriteTimeout must accommodate endpoints that wait on generative
	// model responses (typically 10-30s, up to 60s for image runs).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
