// Command seed loads a demo user and notification into LocalStack so the
// trigger endpoints can be exercised locally:
//
//	curl -X POST localhost:3000/triggers/users/<user id>
//	curl -X POST localhost:3000/triggers/notifications/users/<user id>/<notification id>
package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/finsync/mailer/internal/config"
	"github.com/finsync/mailer/internal/domain"
	"github.com/finsync/mailer/internal/infrastructure/dynamo"
	s3infra "github.com/finsync/mailer/internal/infrastructure/s3"
	"github.com/finsync/mailer/internal/pkg/id"
)

const demoEmail = "demo@finsyncdigitalservice.com"

// logoPNG is a 1x1 transparent pixel, enough for the presign flow to have a
// real object to point at.
var logoPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	client := dynamo.NewClient(cfg)
	dynamo.Bootstrap(ctx, client, cfg.DynamoTables)

	users := dynamo.NewUserRepo(client, cfg.DynamoTables.Users)
	notifications := dynamo.NewNotificationRepo(client, cfg.DynamoTables.Notifications)

	if existing, err := users.GetByEmail(ctx, demoEmail); err == nil {
		log.Printf("demo user already present (id=%s), nothing to do", existing.UserID)
		return
	}

	// Demo brand asset, best effort: without it the alert falls back to the
	// configured logo URL.
	assets := s3infra.NewAssets(s3infra.NewClient(cfg))
	logoURI := ""
	if err := assets.EnsureBucket(ctx, cfg.AssetBucket); err != nil {
		log.Printf("WARN: asset bucket not available: %v", err)
	} else {
		uri, err := assets.Upload(ctx, cfg.AssetBucket, "brand/finsync.png", bytes.NewReader(logoPNG), "image/png")
		if err != nil {
			log.Printf("WARN: demo logo not uploaded: %v", err)
		} else {
			logoURI = uri
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)

	userID := id.New()
	if err := users.Put(ctx, &domain.User{
		UserID:         userID,
		Email:          demoEmail,
		FirstName:      "Demo",
		Name:           "Demo Customer",
		AccountNumber:  "0123456789",
		AccountBalance: 250000.00,
		BankName:       "Finsync MFB",
		LogoURL:        logoURI,
		CreatedAt:      now,
	}); err != nil {
		log.Fatalf("seed user: %v", err)
	}

	notificationID := id.New()
	if err := notifications.Put(ctx, &domain.Notification{
		ID:        notificationID,
		UserID:    userID,
		Type:      "transaction",
		Title:     "Debit Alert!",
		Body:      "POS purchase",
		CreatedAt: now,
		Data: map[string]any{
			"amount":        12500.00,
			"balance":       237500.00,
			"description":   "POS purchase at JARA STORES",
			"transactionId": "TXN-" + notificationID[:8],
		},
	}); err != nil {
		log.Fatalf("seed notification: %v", err)
	}

	log.Printf("seeded user %s and notification %s", userID, notificationID)
}
