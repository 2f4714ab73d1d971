package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type appConfig struct {
	Message         string `json:"message"`
	CommitsPerPixel int    `json:"commits_per_pixel"`
}

func defaultAppConfig() *appConfig {
	return &appConfig{
		Message:         "Pizza!",
		CommitsPerPixel: 4,
	}
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pixelpush", "config.json"), nil
}

// loadAppConfig reads the user config, falling back to defaults when the
// file is missing or unreadable.
func loadAppConfig() *appConfig {
	path, err := configPath()
	if err != nil {
		return defaultAppConfig()
	}

	f, err := os.Open(path)
	if err != nil {
		return defaultAppConfig()
	}
	defer f.Close()

	config := defaultAppConfig()
	if err := json.NewDecoder(f).Decode(config); err != nil {
		return defaultAppConfig()
	}

	if config.Message == "" {
		config.Message = defaultAppConfig().Message
	}
	if config.CommitsPerPixel < 1 {
		config.CommitsPerPixel = defaultAppConfig().CommitsPerPixel
	}
	return config
}
