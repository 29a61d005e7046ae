package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file loaded, using process environment")
	}
}

// GetEnv retrieves environment variables with a fallback
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Config holds the settings shared by the API server and the operator commands.
type Config struct {
	Port         string
	AppEnv       string
	LogLevel     string
	MongoURI     string
	DatabaseName string

	// JWT
	JWTSecret       string
	JWTVerifySecret string

	// Optional; an empty value leaves the encryptor in pass-through mode.
	EncryptPassword string

	StoreDomain string
}

// Load reads the configuration from the process environment.
func Load() *Config {
	storeDomain := firstEnv("NEXT_PUBLIC_STORE_DOMAIN", "NEXTAUTH_URL")
	if storeDomain == "" {
		storeDomain = "http://localhost:3000"
	}

	return &Config{
		Port:         GetEnv("PORT", "3000"),
		AppEnv:       GetEnv("APP_ENV", "dev"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		MongoURI:     firstEnv("MONGO_URI", "MONGODB_URI", "DATABASE_URL", "MONGODB_URL"),
		DatabaseName: GetEnv("MONGODB_DATABASE", "bazar"),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTVerifySecret: os.Getenv("JWT_SECRET_FOR_VERIFY"),
		EncryptPassword: os.Getenv("ENCRYPT_PASSWORD"),

		StoreDomain: storeDomain,
	}
}

var (
	ErrMissingMongoURI  = errors.New("MongoDB connection string not found: set MONGO_URI, MONGODB_URI, DATABASE_URL or MONGODB_URL")
	ErrMissingJWTSecret = errors.New("JWT_SECRET and JWT_SECRET_FOR_VERIFY must both be set")
	ErrSharedJWTSecret  = errors.New("JWT_SECRET and JWT_SECRET_FOR_VERIFY must differ")
)

// Validate checks what the API server needs before it can start.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return ErrMissingMongoURI
	}
	if c.JWTSecret == "" || c.JWTVerifySecret == "" {
		return ErrMissingJWTSecret
	}
	if c.JWTSecret == c.JWTVerifySecret {
		return ErrSharedJWTSecret
	}
	return nil
}
