package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/utils"
)

type Config struct {
	Port         string   `yaml:"port"`
	Mode         string   `yaml:"mode"`
	AllowOrigins []string `yaml:"allow_origins"`
	UserFilePath string   `yaml:"user_file_path"`
}

// LoadConfig reads the optional YAML file named by CONFIG_PATH, then lets
// environment variables override individual fields.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:         "8000",
		Mode:         "development",
		AllowOrigins: []string{"http://localhost:3000"},
		UserFilePath: "users.json",
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	}

	cfg.Port = utils.GetEnv("PORT", cfg.Port, log)
	cfg.Mode = utils.GetEnv("LOG_MODE", cfg.Mode, log)
	cfg.UserFilePath = utils.GetEnv("USER_FILE_PATH", cfg.UserFilePath, log)
	if origins := utils.GetEnv("ALLOW_ORIGINS", "", log); origins != "" {
		cfg.AllowOrigins = splitAndTrim(origins)
	}
	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
