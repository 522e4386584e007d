// Package config содержит логику чтения конфигурации панели AccountBot.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultRunAddress   = "localhost:8080"
	defaultAuthDelay    = 800 * time.Millisecond
	defaultPaymentDelay = 1500 * time.Millisecond
)

// Config содержит параметры конфигурации панели.
type Config struct {
	RunAddress    string        `env:"RUN_ADDRESS"`
	DatabaseURI   string        `env:"DATABASE_URI"`
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GenAIBaseURL  string        `env:"GENAI_BASE_URL"`
	GenAIModel    string        `env:"GENAI_MODEL"`
	SessionSecret string        `env:"SESSION_SECRET"`
	AuthDelay     time.Duration `env:"AUTH_DELAY"`
	PaymentDelay  time.Duration `env:"PAYMENT_DELAY"`
}

// Parse считывает конфигурацию из файла .env (если он есть), флагов командной
// строки и переменных окружения. Переменные окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fromEnv := *cfg

	flag.StringVar(&cfg.RunAddress, "a", defaultRunAddress, "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI for the user directory")
	flag.StringVar(&cfg.GeminiAPIKey, "k", "", "generative AI API key")
	flag.StringVar(&cfg.GenAIBaseURL, "g", "", "generative AI base URL")
	flag.StringVar(&cfg.GenAIModel, "m", "", "generative AI model")
	flag.StringVar(&cfg.SessionSecret, "s", "", "session cookie signing secret")
	flag.DurationVar(&cfg.AuthDelay, "auth-delay", defaultAuthDelay, "simulated login delay")
	flag.DurationVar(&cfg.PaymentDelay, "payment-delay", defaultPaymentDelay, "simulated payment gateway delay")

	flag.Parse()

	override(&cfg.RunAddress, "RUN_ADDRESS", fromEnv.RunAddress)
	override(&cfg.DatabaseURI, "DATABASE_URI", fromEnv.DatabaseURI)
	override(&cfg.GeminiAPIKey, "GEMINI_API_KEY", fromEnv.GeminiAPIKey)
	override(&cfg.GenAIBaseURL, "GENAI_BASE_URL", fromEnv.GenAIBaseURL)
	override(&cfg.GenAIModel, "GENAI_MODEL", fromEnv.GenAIModel)
	override(&cfg.SessionSecret, "SESSION_SECRET", fromEnv.SessionSecret)
	override(&cfg.AuthDelay, "AUTH_DELAY", fromEnv.AuthDelay)
	override(&cfg.PaymentDelay, "PAYMENT_DELAY", fromEnv.PaymentDelay)

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}

	return cfg, nil
}

// override заменяет значение флага значением из окружения, если переменная
// задана и не пуста. Явный ноль ("0s") тоже считается заданным значением.
func override[T any](dst *T, key string, envValue T) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = envValue
	}
}
