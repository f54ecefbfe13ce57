package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

// Public holds settings safe to expose in logs and tests.
type Public struct {
	Port           int    `yaml:"port"`
	LogLevel       string `yaml:"log_level"`
	LogJSON        bool   `yaml:"log_json"`
	MaxTitleLen    int    `yaml:"max_title_len"`
	MaxContentLen  int    `yaml:"max_content_len"`
	MinUsernameLen int    `yaml:"min_username_len"`
	MaxUsernameLen int    `yaml:"max_username_len"`

	PgMaxOpenConns int `yaml:"pg_max_open_conns"`
	PgMaxIdleConns int `yaml:"pg_max_idle_conns"`
}

type Private struct {
	Pg         Pg            `yaml:"pg"`
	JwtKey     string        `yaml:"jwt_key"`
	JwtTTL     time.Duration `yaml:"jwt_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Private.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

func validate(cfg *Config) error {
	if cfg.Public.Port == 0 {
		return fmt.Errorf("port is required")
	}
	if cfg.Public.MaxTitleLen == 0 {
		return fmt.Errorf("max_title_len is required")
	}
	if cfg.Public.MaxContentLen == 0 {
		return fmt.Errorf("max_content_len is required")
	}
	if cfg.Private.JwtKey == "" {
		return fmt.Errorf("jwt_key is required")
	}
	if cfg.Private.JwtTTL == 0 {
		return fmt.Errorf("jwt_ttl is required")
	}
	return nil
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Missing files or missing required fields are a startup failure.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	if err := validate(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}
