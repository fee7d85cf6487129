package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"apnadost/backend/internal/api"
	"apnadost/backend/internal/auth"
	"apnadost/backend/internal/config"
	"apnadost/backend/internal/llm"
	"apnadost/backend/internal/observability"
	"apnadost/backend/internal/repository"
	"apnadost/backend/internal/service"
)

// Run wires the application together and serves until the process exits.
// External client handles (Firebase auth, Firestore, the generation client)
// are created exactly once here and are read-only afterwards, so request
// handlers can share them without locking.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 1
	}

	ctx := context.Background()

	fbApp, err := auth.InitApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize Firebase", "error", err)
		return 1
	}
	verifier, err := auth.NewFirebaseVerifier(ctx, fbApp)
	if err != nil {
		slog.Error("Failed to create token verifier", "error", err)
		return 1
	}
	slog.Info("Firebase initialized.")

	fsClient, err := fbApp.Firestore(ctx)
	if err != nil {
		slog.Error("Failed to create Firestore client", "error", err)
		return 1
	}
	defer func() {
		if err := fsClient.Close(); err != nil {
			slog.Error("Failed to close Firestore client", "error", err)
		}
	}()
	slog.Info("Connected to Firestore.")

	metrics := observability.NewMetrics("apnadost")
	recorder := repository.NewFirestoreRecorder(fsClient)
	provider := llm.NewGeminiProvider(cfg.GeminiAPIURL, cfg.GeminiAPIKey)

	chatService := service.NewChatService(provider, recorder, metrics, cfg.SystemPrompt)
	chatHandler := api.NewChatHandler(chatService, metrics)
	router := api.NewRouter(chatHandler, verifier, metrics)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
