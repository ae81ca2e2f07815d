package app

import (
	"context"
	"fmt"
	"log"

	"soul-studio-art/app/controller"
	"soul-studio-art/app/router"
	"soul-studio-art/config"
	"soul-studio-art/db"
	"soul-studio-art/repository"
	"soul-studio-art/service"
)

// Initialize wires the application from the loaded configuration
func Initialize(cfg *config.Config) error {
	// Database is optional: without it the webhook path still works,
	// only the audit trail is disabled
	var fulfillmentRepo repository.FulfillmentRepositoryInterface
	if cfg.DatabaseURL != "" {
		if err := db.InitDB(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		fulfillmentRepo = repository.NewFulfillmentRepository()
	} else {
		log.Printf("⚠️ No database configured, running without the fulfillment audit trail")
	}

	if cfg.ShopifyWebhookSecret == "" {
		// The verifier rejects every webhook without a secret; the app
		// still starts so the generation endpoints keep working
		log.Printf("⚠️ SHOPIFY_WEBHOOK_SECRET is not set, inbound webhooks will be rejected")
	}

	if cfg.GoogleCredentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}

	// Initialize Drive blob storage
	driveService, err := service.NewDriveService(cfg.GoogleCredentialsPath, cfg.DriveFolderID)
	if err != nil {
		return err
	}

	// Initialize Gemini/Imagen client
	geminiService, err := service.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.GeminiImageModel)
	if err != nil {
		return err
	}

	revelationService := service.NewRevelationService(geminiService, driveService)
	printifyService := service.NewPrintifyService(cfg.PrintifyAPIKey, cfg.PrintifyShopID, cfg.PrintifyBaseURL)

	// Create controllers
	controllers := &router.Controllers{
		Webhook:     controller.NewWebhookController(cfg.ShopifyWebhookSecret, printifyService, fulfillmentRepo),
		Revelation:  controller.NewRevelationController(revelationService),
		Product:     controller.NewProductController(printifyService, cfg.PrintifyProductID),
		Fulfillment: controller.NewFulfillmentController(fulfillmentRepo),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
