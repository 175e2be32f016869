package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "LISTINGHUB_CONFIG"
	addrEnv          = "LISTINGHUB_ADDR"
	storeBackendEnv  = "LISTINGHUB_STORE_BACKEND"
	sqlitePathEnv    = "LISTINGHUB_DB_PATH"
	jsonDirEnv       = "LISTINGHUB_JSON_DIR"
	redisAddrEnv     = "LISTINGHUB_REDIS_ADDR"
	redisPasswordEnv = "LISTINGHUB_REDIS_PASSWORD"
	dailyLimitEnv    = "LISTINGHUB_DAILY_LIMIT"
	adminSecretEnv   = "LISTINGHUB_ADMIN_SECRET"
	adminIssuerEnv   = "LISTINGHUB_ADMIN_ISSUER"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds the settings shared by the API server and the CLIs.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Usage  UsageConfig  `yaml:"usage"`
	Admin  AdminConfig  `yaml:"admin"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// StoreConfig selects and parameterizes the usage-store backend.
type StoreConfig struct {
	Backend       string `yaml:"backend"` // sqlite, json, redis, memory
	SQLitePath    string `yaml:"sqlitePath"`
	JSONDir       string `yaml:"jsonDir"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisPrefix   string `yaml:"redisPrefix"`
}

type UsageConfig struct {
	DailyLimit int `yaml:"dailyLimit"`
}

type AdminConfig struct {
	Secret   string        `yaml:"secret"`
	Issuer   string        `yaml:"issuer"`
	TokenTTL time.Duration `yaml:"tokenTtl"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides on top of the defaults.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			cfg = defaultConfig()
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(addrEnv); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(storeBackendEnv); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv(sqlitePathEnv); v != "" {
		c.Store.SQLitePath = v
	}
	if v := os.Getenv(jsonDirEnv); v != "" {
		c.Store.JSONDir = v
	}
	if v := os.Getenv(redisAddrEnv); v != "" {
		c.Store.RedisAddr = v
	}
	if v := os.Getenv(redisPasswordEnv); v != "" {
		c.Store.RedisPassword = v
	}
	if v := os.Getenv(dailyLimitEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Usage.DailyLimit = n
		} else {
			log.Printf("config: invalid %s=%q, keeping %d", dailyLimitEnv, v, c.Usage.DailyLimit)
		}
	}
	if v := os.Getenv(adminSecretEnv); v != "" {
		c.Admin.Secret = v
	}
	if v := os.Getenv(adminIssuerEnv); v != "" {
		c.Admin.Issuer = v
	}
}

func defaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	dataDir := filepath.Join(home, ".listinghub")

	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Store: StoreConfig{
			Backend:     BackendSQLite,
			SQLitePath:  filepath.Join(dataDir, "data.db"),
			JSONDir:     dataDir,
			RedisPrefix: "listinghub",
		},
		Usage: UsageConfig{DailyLimit: 5},
		Admin: AdminConfig{
			// dev default (change for demo / production)
			Secret:   "dev-secret-change-me",
			Issuer:   "listinghub",
			TokenTTL: 24 * time.Hour,
		},
	}
}
