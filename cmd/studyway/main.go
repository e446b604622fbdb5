package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/studyway/studyway/internal/advisor"
	"github.com/studyway/studyway/internal/api"
	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/config"
	"github.com/studyway/studyway/internal/llm"
	"github.com/studyway/studyway/internal/search"
	"github.com/studyway/studyway/internal/storage"
	"github.com/studyway/studyway/internal/submission"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("studyway: .env file not loaded", "error", err)
	} else {
		logger.Info("studyway: environment loaded from .env")
	}

	addr := flag.String("addr", ":8080", "listen address")
	dataDir := flag.String("data-dir", "", "directory for the file-backed submission store")
	databaseURL := flag.String("db", "", "Postgres connection string (overrides DATABASE_URL)")
	ephemeral := flag.Bool("ephemeral", false, "keep submissions in memory only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("studyway: config load failed", "error", err)
		fmt.Println("config error:", err)
		os.Exit(1)
	}
	if trimmed := strings.TrimSpace(*dataDir); trimmed != "" {
		cfg.DataDir = trimmed
	}
	if trimmed := strings.TrimSpace(*databaseURL); trimmed != "" {
		cfg.DatabaseURL = trimmed
	}
	if *ephemeral {
		cfg.Ephemeral = true
	}

	logger.Info("studyway: startup initiated", "addr", *addr, "model", cfg.OpenAIModel)

	var provider llm.Provider
	if p, err := llm.NewProvider(cfg); err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			logger.Warn("studyway: llm provider not configured; plan generation disabled")
		} else {
			logger.Error("studyway: llm provider initialization failed", "error", err)
			fmt.Println("llm provider error:", err)
			os.Exit(1)
		}
	} else {
		provider = p
		logger.Info("studyway: llm provider ready", "provider", p.Name())
	}

	searcher := search.NewService(search.NewClient(cfg.SerpAPIKey, cfg.SerpAPIBaseURL))
	if searcher.Configured() {
		logger.Info("studyway: web search enabled")
	} else {
		logger.Info("studyway: web search not configured; prompts run without live context")
	}

	store := storage.Open(cfg)
	pipeline := advisor.New(provider, searcher, search.FormatForPrompt)
	service := submission.NewService(store, pipeline)
	server := api.NewServer(service, pipeline)

	logger.Info("studyway: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("studyway: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}
