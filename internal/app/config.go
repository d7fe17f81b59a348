package app

import (
	"fmt"
	"os"
	"strconv"

	"salary-bench/internal/shared/connection"
)

type Config struct {
	DB           connection.DBConfig
	Department   string
	RedisAddr    string
	KafkaBroker  string
	Port         string
	HistoryLimit int
	Seed         SeedConfig
}

type SeedConfig struct {
	Employees   int
	MonthsOfPay int
}

// LoadConfig reads the process environment. Call godotenv.Load first to
// pick up a .env file.
func LoadConfig() (Config, error) {
	historyLimit, err := intEnv("HISTORY_LIMIT", 50)
	if err != nil {
		return Config{}, err
	}
	seedEmployees, err := intEnv("SEED_EMPLOYEES", 100)
	if err != nil {
		return Config{}, err
	}
	seedMonths, err := intEnv("SEED_MONTHS", 24)
	if err != nil {
		return Config{}, err
	}

	return Config{
		DB: connection.DBConfig{
			Host:     stringEnv("DB_HOST", "localhost"),
			Port:     stringEnv("DB_PORT", "5432"),
			User:     stringEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     stringEnv("DB_NAME", "demodb"),
			SSLMode:  stringEnv("DB_SSLMODE", "disable"),
		},
		Department:   stringEnv("BENCH_DEPARTMENT", "Finance"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		Port:         stringEnv("PORT", "3000"),
		HistoryLimit: historyLimit,
		Seed: SeedConfig{
			Employees:   seedEmployees,
			MonthsOfPay: seedMonths,
		},
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}
