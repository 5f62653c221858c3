package config

import (
	"os"
	"strconv"
)

// Config holds every runtime setting the service reads. It is loaded once in
// main and handed to constructors; nothing outside this package touches the
// environment for settings.
type Config struct {
	Env    string
	Port   string
	Origin string // CORS

	MongoURI string
	MongoDB  string

	JWTSecret string

	RedisAddr     string
	RedisPassword string

	ReportDailyLimit int

	AzureStorageConnection string
	AzureContainer         string

	InferenceURL string
	InferenceKey string

	GeocodeURL string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Env:    env("APP_ENV", "dev"),
		Port:   env("PORT", "8080"),
		Origin: env("CORS_ORIGIN", "http://localhost:3000"),

		MongoURI: env("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  env("MONGODB_DB", "civicconnect"),

		JWTSecret: env("JWT_SECRET", ""),

		RedisAddr:     env("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: env("REDIS_PASSWORD", ""),

		ReportDailyLimit: envInt("REPORT_DAILY_LIMIT", 5),

		AzureStorageConnection: env("AZURE_STORAGE_CONNECTION_STRING", ""),
		AzureContainer:         env("AZURE_STORAGE_CONTAINER", "report-images"),

		InferenceURL: env("INFERENCE_URL", ""),
		InferenceKey: env("INFERENCE_API_KEY", ""),

		GeocodeURL: env("GEOCODE_URL", "https://nominatim.openstreetmap.org"),
	}
}
