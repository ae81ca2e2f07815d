package config

import (
	"fmt"
	"os"
)

// Default model names; overridable per environment so a model retirement
// doesn't require a new build
const (
	defaultTextModel  = "gemini-2.5-flash"
	defaultImageModel = "imagen-3.0-generate-002"
)

// Config holds every setting the application reads from the environment.
// It is built once in main and passed by parameter; business logic never
// reads environment variables directly.
type Config struct {
	Env  string
	Port string

	// Shopify
	ShopifyWebhookSecret string

	// Printify
	PrintifyAPIKey    string
	PrintifyShopID    string
	PrintifyProductID string
	PrintifyBaseURL   string

	// Google generative APIs
	GeminiAPIKey     string
	GeminiTextModel  string
	GeminiImageModel string

	// Google Drive blob storage
	GoogleCredentialsPath string
	DriveFolderID         string

	// Postgres (optional; audit trail only)
	DatabaseURL string
}

// Load builds the configuration from the process environment
func Load() *Config {
	return &Config{
		Env:  os.Getenv("ENV"),
		Port: getenv("PORT", "8080"),

		ShopifyWebhookSecret: os.Getenv("SHOPIFY_WEBHOOK_SECRET"),

		PrintifyAPIKey:    os.Getenv("PRINTIFY_API_KEY"),
		PrintifyShopID:    os.Getenv("PRINTIFY_STORE_ID"),
		PrintifyProductID: os.Getenv("PRINTIFY_PRODUCT_ID"),
		PrintifyBaseURL:   getenv("PRINTIFY_BASE_URL", "https://api.printify.com/v1"),

		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiTextModel:  getenv("GEMINI_TEXT_MODEL", defaultTextModel),
		GeminiImageModel: getenv("GEMINI_IMAGE_MODEL", defaultImageModel),

		GoogleCredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		DriveFolderID:         os.Getenv("DRIVE_FOLDER_ID"),

		DatabaseURL: databaseURL(),
	}
}

// databaseURL returns DATABASE_URL, or assembles a connection string from
// the individual DB_* variables. Empty means no database is configured.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	dbname := os.Getenv("DB_NAME")
	if host == "" || user == "" || dbname == "" {
		return ""
	}

	port := getenv("DB_PORT", "5432")
	sslmode := getenv("DB_SSLMODE", "disable")
	password := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
