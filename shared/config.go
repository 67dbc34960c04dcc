package shared

import (
	"encoding/json"
	"fmt"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName     = "CONFIG"                // If set, will load config from this path and not from devConfigPath
	secretsVarName    = "SECRETS"               // If set, will load secrets from this path and not from devSecretsPath
	slackTokenVarName = "SLACK_TOKEN"           // If set, overrides the token in the secrets file
	devConfigPath     = "dev/config.dev.jsonc"  // Path to config in development environment
	devSecretsPath    = "dev/secrets.dev.jsonc" // Path to secrets in development environment
)

const (
	DefaultSlackApiBase    = "https://slack.com/api"
	DefaultSlackTimeoutSec = 10
	DefaultSchedule        = "*/2 6-16 * * 2-6"
	DefaultHistoryKeep     = 500
)

type Config struct {
	Secrets         Secrets `json:"-"`
	LogFile         string  `json:"log_file"`
	LogLevel        string  `json:"log_level"`
	ServicePort     uint    `json:"service_port"`
	DbFile          string  `json:"db_file"`
	SlackApiBase    string  `json:"slack_api_base"`
	SlackTimeoutSec int     `json:"slack_timeout_sec"`
	Schedule        string  `json:"schedule"`
	TimeZone        string  `json:"time_zone"`
	RunOnStart      bool    `json:"run_on_start"`
	ImagesDir       string  `json:"images_dir"`
	MoodsFile       string  `json:"moods_file"`
	HistoryKeep     int     `json:"history_keep"`
}

type Secrets struct {
	SlackToken  string   `json:"slack_token"`
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	cfg, err := loadConfig(cfgPath, secretsPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func loadConfig(cfgPath, secretsPath string) (*Config, error) {

	var config Config
	if err := deserializeFile(cfgPath, &config); err != nil {
		return nil, err
	}
	// Secrets file is optional if the token comes from the environment
	if err := deserializeFile(secretsPath, &config.Secrets); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if token := os.Getenv(slackTokenVarName); token != "" {
		config.Secrets.SlackToken = token
	}
	applyDefaults(&config)
	if config.Secrets.SlackToken == "" {
		return nil, fmt.Errorf("missing %s: set it in the environment or in %s", slackTokenVarName, secretsPath)
	}
	return &config, nil
}

func applyDefaults(cfg *Config) {
	if cfg.SlackApiBase == "" {
		cfg.SlackApiBase = DefaultSlackApiBase
	}
	if cfg.SlackTimeoutSec <= 0 {
		cfg.SlackTimeoutSec = DefaultSlackTimeoutSec
	}
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.HistoryKeep <= 0 {
		cfg.HistoryKeep = DefaultHistoryKeep
	}
}

func deserializeFile[T any](fileName string, obj *T) error {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		return err
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", fileName, err)
	}
	// Parse
	if err = json.Unmarshal(cfgJson, obj); err != nil {
		return fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return nil
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
