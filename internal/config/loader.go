package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrawl loads the crawler configuration.
// Search order: customPath -> ~/.crawler/configs/crawl.yaml ->
// ./configs/crawl.yaml -> embedded default.
func LoadCrawl(customPath string) (CrawlConfig, error) {
	var cfg CrawlConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crawl.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/crawl.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCrawlYAML, &cfg); err != nil {
		return DefaultCrawlConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crawler", "configs", filename)
}

// ApplyCrawlPreset replaces the config's difficulty block with the preset's
// multipliers. An empty preset leaves the config untouched.
func ApplyCrawlPreset(cfg *CrawlConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = DifficultyForPreset(preset)
}
