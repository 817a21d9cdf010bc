package config

import (
	"fmt"

	coreconfig "github.com/go-core-fx/config"
)

const DefaultTablePath = "ReFoundly_CHATBOT.xlsx"

type Config struct {
	TablePath    string `koanf:"table_path"`
	TableSheet   string `koanf:"table_sheet"`
	RequireTable bool   `koanf:"require_table"`
	LogFile      string `koanf:"log_file"`
	Debug        bool   `koanf:"debug"`
}

func Default() Config {
	return Config{
		TablePath: DefaultTablePath,
		LogFile:   "./refoundly.log",
		Debug:     false,
	}
}

func New() (Config, error) {
	cfg := Default()

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}
