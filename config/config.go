package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultPort = "8080"

// Config holds process-level settings. The store handle itself is opened
// by the caller and injected into each component; config only carries the
// knobs.
type Config struct {
	DatabasePath string
	Port         string
	ExportDir    string
	GinMode      string
}

func init() {
	// Load env from .env
	godotenv.Load()
}

// Load reads configuration from the environment with local single-user
// defaults.
func Load() Config {
	cfg := Config{
		DatabasePath: envOr("BREWERY_DB_PATH", "brewery.db"),
		Port:         envOr("API_PORT", ""),
		ExportDir:    envOr("BREWERY_EXPORT_DIR", "."),
		GinMode:      envOr("GIN_MODE", ""),
	}
	if cfg.Port == "" {
		cfg.Port = envOr("PORT", defaultPort)
	}
	return cfg
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
