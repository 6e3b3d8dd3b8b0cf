package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	databaseDSN       = "DATABASE_DSN"
	terminalTokenENV  = "TERMINAL_TOKEN"
)

// Config ...
type Config struct {
	DB      string `yaml:"db_dsn"`
	Service struct {
		Host       string `yaml:"host"`
		PublicPort int    `yaml:"public_port"`
	} `yaml:"service"`

	Terminal struct {
		BaseURL        string `yaml:"base_url"`
		Token          string `yaml:"token"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"terminal"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`

	History struct {
		// Page size for one history-orders fetch; further pages are the
		// caller's responsibility via the offset parameter.
		PageLimit int `yaml:"page_limit"`
		// Broker reporting timezone offset applied to range starts.
		BrokerUTCOffsetHours int `yaml:"broker_utc_offset_hours"`
		// Upper bound on in-flight deals-by-position fetches.
		DealFetchConcurrency int `yaml:"deal_fetch_concurrency"`
	} `yaml:"history"`
}

func NewConfig() (*Config, error) {

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		log.Fatalf("Failed to open config file: %v", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	config := Config{}
	config.Service.Host = getenvDefault("SERVICE_HOST", "0.0.0.0")
	config.Service.PublicPort = intFromEnv("SERVICE_PUBLIC_PORT", 8080)
	config.Terminal.TimeoutSeconds = intFromEnv("TERMINAL_TIMEOUT_SECONDS", 30)
	config.History.PageLimit = intFromEnv("HISTORY_PAGE_LIMIT", 20)
	config.History.BrokerUTCOffsetHours = intFromEnv("BROKER_UTC_OFFSET_HOURS", 3)
	config.History.DealFetchConcurrency = intFromEnv("DEAL_FETCH_CONCURRENCY", 4)

	err = decoder.Decode(&config)
	if err != nil {
		log.Fatalf("Failed to decode config file: %v", err)
	}

	dsn := os.Getenv(databaseDSN)
	if dsn != "" {
		config.DB = dsn
	}

	token := os.Getenv(terminalTokenENV)
	if token != "" {
		config.Terminal.Token = token
	}

	if config.History.PageLimit <= 0 {
		config.History.PageLimit = 20
	}
	if config.History.DealFetchConcurrency <= 0 {
		config.History.DealFetchConcurrency = 1
	}

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
