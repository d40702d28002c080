package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production verification base URL, used when no
// explicit base URL is configured or passed per call.
const DefaultBaseURL = "https://digitalclub.kiut.ac.tz"

type Config struct {
	Server Server `yaml:"server"`
	Assets Assets `yaml:"assets"`
	// BaseURL prefixes the /verify-id links embedded in card QR codes.
	BaseURL     string `yaml:"baseURL"`
	PostgresDsn string `yaml:"postgresDsn"`
}

type Server struct {
	Port string `yaml:"port"`
}

type Assets struct {
	// UploadRoot holds member uploads; generated cards go under
	// {UploadRoot}/digital_ids and profile photos under {UploadRoot}/profiles.
	UploadRoot string `yaml:"uploadRoot"`
	LogoPath   string `yaml:"logoPath"`
}

func defaults() Config {
	return Config{
		Server:  Server{Port: "8080"},
		Assets:  Assets{UploadRoot: "uploads", LogoPath: "assets/logo.svg"},
		BaseURL: DefaultBaseURL,
	}
}

// Load reads a yaml config file. A missing file is not an error: defaults
// apply, so the server can run with no config at all.
func Load(path string) (Config, error) {
	cfg := defaults()

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("opening config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg, nil
}
