package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env   string `yaml:"env" env:"ENV" env-default:"local"`
	API   API    `yaml:"api"`
	Cache Cache  `yaml:"cache"`
}

type API struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

type Cache struct {
	TTL time.Duration `yaml:"ttl" env-default:"30s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
