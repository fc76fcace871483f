package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	RulesPath       string // optional rules file (.json or .yaml)
	ApplicationName string // override applied on top of rules; empty = keep
	TextContains    string // override applied on top of rules; empty = keep
}

func Load() *Config {
	_ = godotenv.Load() // optional

	return &Config{
		RulesPath:       getenv("TRACESTAT_RULES", ""),
		ApplicationName: getenv("TRACESTAT_APP_NAME", ""),
		TextContains:    getenv("TRACESTAT_TEXT_MATCH", ""),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
