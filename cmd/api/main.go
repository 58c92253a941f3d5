package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finsync/mailer/internal/config"
	"github.com/finsync/mailer/internal/infrastructure/dynamo"
	jwtinfra "github.com/finsync/mailer/internal/infrastructure/jwt"
	"github.com/finsync/mailer/internal/infrastructure/resend"
	s3infra "github.com/finsync/mailer/internal/infrastructure/s3"
	"github.com/finsync/mailer/internal/infrastructure/secrets"
	"github.com/finsync/mailer/internal/infrastructure/sns"
	transporthttp "github.com/finsync/mailer/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// Secrets Manager binding for the provider key (optional — the gateway
	// falls back to the RESEND_API_KEY environment variable).
	var resolver secrets.Resolver
	if cfg.UseSecretsManager {
		r, err := secrets.NewResolver(cfg)
		if err != nil {
			log.Printf("WARN: secrets binding not available: %v", err)
		} else {
			resolver = r
		}
	}
	mailer := resend.NewGateway(cfg, resolver)

	// Asset presigner for s3:// logo references.
	assets := s3infra.NewAssets(s3infra.NewClient(cfg))

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	// Trigger webhook auth (optional — routes stay open without a key).
	var triggerVerifier *jwtinfra.Verifier
	if cfg.TriggerJWTPublicKeyPath != "" {
		v, err := jwtinfra.NewVerifier(cfg)
		if err != nil {
			log.Printf("WARN: trigger webhook auth not available: %v", err)
		} else {
			triggerVerifier = v
		}
	} else {
		log.Println("trigger webhook auth disabled (no public key configured)")
	}

	deps := &transporthttp.Deps{
		UserRepo:         dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		NotificationRepo: dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.Notifications),
		Mailer:           mailer,
		Assets:           assets,
		SMSSender:        smsSender,
		TriggerVerifier:  triggerVerifier,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
