package config

import "os"

type Config struct {
	CatalogFile  string
	JWTSecret    string
	ClientSecret string
	StaffSecret  string
	LogLevel     string
	PixCode      string
}

func Load() *Config {
	return &Config{
		CatalogFile:  getEnv("CATALOG_FILE", "catalog.toml"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		ClientSecret: getEnv("CLIENT_SECRET", "123"),
		StaffSecret:  getEnv("STAFF_SECRET", "1234"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		PixCode:      getEnv("PIX_CODE", "00020126330014BR.GOV.BCB.PIX0111salonagenda5204000053039865802BR"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
