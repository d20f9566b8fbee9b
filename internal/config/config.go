package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultHeurekaBaseURL = "https://api.heureka.group"
	defaultCacheTTL       = 10 * time.Minute
	defaultMaxRangeDays   = 366
)

type Config struct {
	Port           string
	LogLevel       string
	HeurekaAPIKey  string
	HeurekaBaseURL string
	CacheTTL       time.Duration
	MaxRangeDays   int
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
}

func New() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       os.Getenv("LOGLEVEL"),
		HeurekaAPIKey:  os.Getenv("HEUREKAAPIKEY"),
		HeurekaBaseURL: getEnv("HEUREKABASEURL", defaultHeurekaBaseURL),
		CacheTTL:       getDuration("CACHETTL", defaultCacheTTL),
		MaxRangeDays:   getInt("MAXRANGEDAYS", defaultMaxRangeDays),
		RedisAddr:      os.Getenv("REDISADDR"),
		RedisPassword:  os.Getenv("REDISPASSWORD"),
		RedisDB:        getInt("REDISDB", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
