package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                      // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                     // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "../../dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "../../dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

const (
	defaultPageSize         = 30
	defaultTimelineKeepMax  = 200
	defaultPruneIntervalMin = 60
	defaultApiTimeoutSec    = 20
	defaultProfileKeepDays  = 3
)

type Config struct {
	Secrets          Secrets `json:"-"`
	LogFile          string  `json:"log_file"`
	LogLevel         string  `json:"log_level"`
	ServicePort      uint    `json:"service_port"`
	DbFile           string  `json:"db_file"`
	ClientName       string  `json:"client_name"`
	ClientWebsite    string  `json:"client_website"`
	PageSize         int     `json:"page_size"`
	TimelineKeepMax  int     `json:"timeline_keep_max"`
	PruneIntervalMin int     `json:"prune_interval_min"`
	ApiTimeoutSec    int     `json:"api_timeout_sec"`
	ProfileDir       string  `json:"profile_dir"` // Goroutine dumps go here; empty means no profiling
	ProfileKeepDays  int     `json:"profile_keep_days"`
}

type Secrets struct {
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

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	config.applyDefaults()
	return &config
}

func (cfg *Config) applyDefaults() {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.TimelineKeepMax <= 0 {
		cfg.TimelineKeepMax = defaultTimelineKeepMax
	}
	if cfg.PruneIntervalMin <= 0 {
		cfg.PruneIntervalMin = defaultPruneIntervalMin
	}
	if cfg.ApiTimeoutSec <= 0 {
		cfg.ApiTimeoutSec = defaultApiTimeoutSec
	}
	if cfg.ProfileKeepDays <= 0 {
		cfg.ProfileKeepDays = defaultProfileKeepDays
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	if err = deserializeJSONC(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func deserializeJSONC[T any](data []byte, obj *T) error {
	// JSONC => JSON
	data, err := standardizeJSON(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, obj)
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
