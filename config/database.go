package config

import (
	"os"
	"strconv"
)

type PgsqlConnectionConf struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
}

type DatabaseConfig struct {
	Pgsql PgsqlConnectionConf
}

func DatabaseConf() *DatabaseConfig {

	port := 5432
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	return &DatabaseConfig{
		Pgsql: PgsqlConnectionConf{
			Host:     envOrDefault("POSTGRES_HOST", "db"),
			Port:     port,
			Database: envOrDefault("POSTGRES_DB", "postgres"),
			Username: envOrDefault("POSTGRES_USER", "postgres"),
			Password: envOrDefault("POSTGRES_PASSWORD", "password"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
