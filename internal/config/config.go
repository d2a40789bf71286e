package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string
	MongoURI          string
	MongoDatabase     string
	RedisAddr         string
	RabbitURL         string
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
	AnalyticsCacheTTL time.Duration
	ReconcileInterval time.Duration
	ReconcileRepair   bool
	OTLPEndpoint      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	tokenTTL, _ := time.ParseDuration(os.Getenv("TOKEN_TTL"))
	if tokenTTL == 0 {
		tokenTTL = 12 * time.Hour
	}

	cacheTTL, _ := time.ParseDuration(os.Getenv("ANALYTICS_CACHE_TTL"))
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Second
	}

	reconcileInterval, _ := time.ParseDuration(os.Getenv("RECONCILE_INTERVAL"))
	if reconcileInterval == 0 {
		reconcileInterval = time.Minute
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	db := os.Getenv("MONGO_DATABASE")
	if db == "" {
		db = "OnewheroBayPark"
	}

	return &Config{
		HTTPAddr:          addr,
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     db,
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RabbitURL:         os.Getenv("RABBIT_URL"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          tokenTTL,
		AnalyticsCacheTTL: cacheTTL,
		ReconcileInterval: reconcileInterval,
		ReconcileRepair:   os.Getenv("RECONCILE_REPAIR") == "true",
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}
