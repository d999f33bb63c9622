package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Planner PlannerConfig `yaml:"planner"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig holds where the planner document is kept.
type StorageConfig struct {
	Dir       string `yaml:"dir"       env:"VACATION_STORAGE_DIR"       env-default:"."`
	Key       string `yaml:"key"       env:"VACATION_STORAGE_KEY"       env-default:"vacationPlannerData"`
	Ephemeral bool   `yaml:"ephemeral" env:"VACATION_STORAGE_EPHEMERAL" env-default:"false"`
}

// PlannerConfig holds defaults for a fresh document.
type PlannerConfig struct {
	TotalVacationDays int `yaml:"total_vacation_days" env:"VACATION_TOTAL_DAYS" env-default:"30"`
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs go
// to a file.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"LOG_FILE"   env-default:"vacation.log"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The path falls back to CONFIG_PATH; with
// neither set only ENV and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Storage.Key) == "" {
		errs = append(errs, errors.New("storage.key is required"))
	}
	if !c.Storage.Ephemeral && strings.TrimSpace(c.Storage.Dir) == "" {
		errs = append(errs, errors.New("storage.dir is required"))
	}
	if c.Planner.TotalVacationDays <= 0 {
		errs = append(errs, errors.New("planner.total_vacation_days must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
