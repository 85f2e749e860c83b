package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DuelitDev/quant-sim/internal/api/handler"
	"github.com/DuelitDev/quant-sim/internal/client"
	"github.com/DuelitDev/quant-sim/internal/config"
	"github.com/DuelitDev/quant-sim/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize structured logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	// Load configuration
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Create KRX gateway client
	krxClient := client.NewKRX(cfg.KRXBaseURL, cfg.HTTPTimeout, cfg.RequestsPerSec)

	// Create the query facade
	marketService := service.New(krxClient)

	// Create handlers
	stockHandler := handler.NewStockHandler(marketService)
	marketHandler := handler.NewMarketHandler(marketService)
	healthHandler := handler.NewHealthHandler(config.Version)

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Handle)
	mux.HandleFunc("GET /api/stocks/list", stockHandler.HandleList)
	mux.HandleFunc("GET /api/stocks/{code}/price", stockHandler.HandlePrices)
	mux.HandleFunc("GET /api/market/kospi", marketHandler.HandleKospi)
	mux.HandleFunc("GET /api/market/status", marketHandler.HandleStatus)

	root := handler.RequestLogger(log.Logger)(handler.CORS(cfg.AllowedOrigin)(mux))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      root,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("version", config.Version).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
