// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SalaryRange bounds the acceptable salary, inclusive on both ends.
type SalaryRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type Config struct {
	//Search criteria
	JobTitles          []string     `yaml:"job_titles"`
	Locations          []string     `yaml:"locations"`
	RequiredSkills     []string     `yaml:"required_skills"`
	BlocklistCompanies []string     `yaml:"blocklist_companies"`
	SalaryRange        *SalaryRange `yaml:"salary_range"`
	Timezone           string       `yaml:"timezone"`

	//Reporting (optional)
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Paths
	CachePath  string `yaml:"cache_path"`
	OutputPath string `yaml:"output_path"`

	LogLevel string `yaml:"log_level"`
}

// Load reads the YAML config at path, applies env overrides and defaults,
// and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.CachePath == "" {
		cfg.CachePath = "cache.txt"
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = "output.json"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configs that would leave the filter without usable
// bounds. Missing salary range, locations, skills or timezone are fatal
// rather than silently defaulted.
func (c *Config) Validate() error {
	if c.SalaryRange == nil {
		return fmt.Errorf("salary_range is required")
	}
	if c.SalaryRange.Min > c.SalaryRange.Max {
		return fmt.Errorf("salary_range min %d exceeds max %d", c.SalaryRange.Min, c.SalaryRange.Max)
	}
	if len(c.Locations) == 0 {
		return fmt.Errorf("locations is required")
	}
	//an empty skill list would divide by zero in the match score
	if len(c.RequiredSkills) == 0 {
		return fmt.Errorf("required_skills is required")
	}
	if c.Timezone == "" {
		return fmt.Errorf("timezone is required")
	}
	return nil
}
