package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type AppConfig struct {
	Env  string // test, dev or prod
	Port int
}

// NewAppConfig reads configuration in order: .env (if present) →
// environment → flags.
func NewAppConfig() AppConfig {

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	port := 8080
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	pflag.IntVarP(&port, "port", "p", port, "port to listen on")
	pflag.Parse()

	return AppConfig{
		Env:  os.Getenv("APP_ENV"),
		Port: port,
	}
}
