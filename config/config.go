package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Default values; every setting is optional so the tool runs configless.
const (
	DefaultTemplatePath = "mcp-servers/templates/_template.json"
	DefaultOutputDir    = "mcp-servers/active"

	defaultAgentTimeoutSeconds   = 300
	defaultSummaryTimeoutSeconds = 60
	defaultFilesTimeoutSeconds   = 120
)

// Config is the top-level configuration for mcpcatalog.
type Config struct {
	Agents    AgentsConfig    `yaml:"agents"`
	Ingestion IngestionConfig `yaml:"ingestion"`
	Template  string          `yaml:"template"`   // path to the template record
	OutputDir string          `yaml:"output_dir"` // where records are written
}

// AgentsConfig controls backend selection and invocation bounds.
type AgentsConfig struct {
	Preference     []string `yaml:"preference"`      // fixed preference order
	TimeoutSeconds int      `yaml:"timeout_seconds"` // per-invocation bound for CLI backends
}

// IngestionConfig controls the repository ingestion stage.
type IngestionConfig struct {
	Strategy              string `yaml:"strategy"` // "auto", "gitingest", or "local"
	SummaryTimeoutSeconds int    `yaml:"summary_timeout_seconds"`
	FilesTimeoutSeconds   int    `yaml:"files_timeout_seconds"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a configuration file, expanding environment
// variables in paths and filling unset values with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Template = expandEnv(cfg.Template)
	cfg.OutputDir = expandEnv(cfg.OutputDir)
	applyDefaults(&cfg)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".mcpcatalog.yaml",
		".mcpcatalog.yml",
		"mcpcatalog.yaml",
		"mcpcatalog.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func applyDefaults(cfg *Config) {
	if len(cfg.Agents.Preference) == 0 {
		cfg.Agents.Preference = []string{"gemini", "codex", "claude"}
	}
	if cfg.Agents.TimeoutSeconds == 0 {
		cfg.Agents.TimeoutSeconds = defaultAgentTimeoutSeconds
	}
	if cfg.Ingestion.Strategy == "" {
		cfg.Ingestion.Strategy = "auto"
	}
	if cfg.Ingestion.SummaryTimeoutSeconds == 0 {
		cfg.Ingestion.SummaryTimeoutSeconds = defaultSummaryTimeoutSeconds
	}
	if cfg.Ingestion.FilesTimeoutSeconds == 0 {
		cfg.Ingestion.FilesTimeoutSeconds = defaultFilesTimeoutSeconds
	}
	if cfg.Template == "" {
		cfg.Template = DefaultTemplatePath
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
}

// expandEnv expands ${ENV_VAR} references in a path-like value.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks configuration values that defaults cannot repair.
func validate(cfg *Config) error {
	switch cfg.Ingestion.Strategy {
	case "auto", "gitingest", "local":
	default:
		return fmt.Errorf(
			"ingestion.strategy must be one of auto, gitingest, local (got %q)",
			cfg.Ingestion.Strategy,
		)
	}

	for i, name := range cfg.Agents.Preference {
		if name == "" {
			return fmt.Errorf("agents.preference[%d] must not be empty", i)
		}
	}

	if cfg.Agents.TimeoutSeconds < 0 {
		return errors.New("agents.timeout_seconds must be positive")
	}

	return nil
}
