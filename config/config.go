// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os" // For reading environment variables
)

type Config struct { // Config struct holds all configuration values
	MongoURI          string // Connection string for the MongoDB deployment
	DBName            string // Name of the database holding all collections
	AccessTokenSecret string // Secret key for signing and verifying access tokens
	StripeSecretKey   string // Secret key for the Stripe API
	Port              string // Port the HTTP server listens on
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	return &Config{
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"), // Get Mongo URI or use default
		DBName:            getEnv("DB_NAME", "surveyDB"),                    // Get database name or use default
		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),                // Token secret has no safe default
		StripeSecretKey:   getEnv("STRIPE_SECRET_KEY", ""),                  // Stripe key has no safe default
		Port:              getEnv("PORT", "5000"),                           // Get port or use default
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}
