package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"site-contact/pkg/api"
	"site-contact/pkg/clients/resend"
	"site-contact/pkg/clients/sanity"
	"site-contact/pkg/config"
	"site-contact/pkg/logger"
	"site-contact/pkg/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	l, err := logger.NewLogger(cfg.GinMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer l.Sync()

	// The server still starts so /health answers; the contact endpoint
	// refuses submissions until the settings are provided.
	if missing := cfg.MissingKeys(); len(missing) > 0 {
		l.Warn("Contact endpoint is missing configuration", zap.Strings("missing_keys", missing))
	}

	// Initialize API clients
	sanityClient := sanity.NewClient(
		cfg.SanityProjectID,
		cfg.SanityDataset,
		cfg.SanityAPIVersion,
		cfg.SanityAPIToken,
		sanity.WithLogger(l),
	)
	resendClient := resend.NewClient(cfg.ResendAPIKey, resend.WithLogger(l))

	// Initialize services
	submissionService := services.NewContactSubmissionService(
		sanityClient,
		resendClient,
		cfg,
		l,
	)

	gin.SetMode(cfg.GinMode)

	handlers := api.NewHandlers(submissionService, cfg, l)
	router := api.NewRouter(handlers, cfg, l)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		l.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("Error starting server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout*2+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error("Server forced to shutdown", zap.Error(err))
	}
}
