// Copyright (C) 2025 the Kookooha maintainers
// See root-dir/LICENSE for more information

/*
Package config implements TOML config file handling for the marketing
site server. Pass a config file name to Load to obtain a Config struct;
an empty name yields the built-in defaults. A handful of environment
variables override the file, they use the same names as the backend so
both ends can share one deployment environment.
*/
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/oleg-github-collab/KooKooha/internal/lens"
	"github.com/oleg-github-collab/KooKooha/internal/pricing"
)

const (
	PricingAuthorityLocal   = "local"
	PricingAuthorityBackend = "backend"
)

// Config represents the parsed configuration for the site server.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	DB      DBConfig      `toml:"database"`
	Admin   AdminConfig   `toml:"admin"`
	Lens    LensConfig    `toml:"lens"`
	Pricing PricingConfig `toml:"pricing"`
	I18n    I18nConfig    `toml:"i18n"`
}

type ServerConfig struct {
	Addr        string `toml:"addr"`
	StatusAddr  string `toml:"status_addr"`
	ServiceName string `toml:"service_name"`
	StaticDir   string `toml:"static_dir"`
	OTLPAddr    string `toml:"otlp_grpc"`
	LogLevel    string `toml:"log_level"`
}

type DBConfig struct {
	// URL selects the storage backend by scheme,
	// e.g. "kvdb://data/site.db" or "jsondb://data".
	URL string `toml:"url"`
}

type AdminConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

type LensConfig struct {
	BaseURL        string         `toml:"base_url"`
	TimeoutSeconds int            `toml:"timeout_seconds"`
	Leads          lens.LeadPaths `toml:"leads"`
}

type PricingConfig struct {
	// Authority decides who computes quotes: "local" uses the
	// configured constants, "backend" asks the Human Lens API.
	Authority string `toml:"authority"`
	pricing.Config
}

type I18nConfig struct {
	DefaultLocale string `toml:"default_locale"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        "0.0.0.0:8080",
			StatusAddr:  "",
			ServiceName: "kookooha-site",
			LogLevel:    "INFO",
		},
		DB: DBConfig{URL: "jsondb://data"},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin",
		},
		Lens: LensConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 15,
			Leads:          lens.DefaultLeadPaths(),
		},
		Pricing: PricingConfig{
			Authority: PricingAuthorityLocal,
			Config:    pricing.DefaultConfig(),
		},
		I18n: I18nConfig{DefaultLocale: "en"},
	}
}

// Load reads the TOML file, applies environment overrides and
// validates the result. An empty filename skips the file step.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename != "" {
		if _, err := toml.DecodeFile(filename, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", filename, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.valid(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setString(&c.Admin.Username, "KOOKOOHA_ADMIN")
	setString(&c.Admin.Password, "KOOKOOHA_PASSWORD")
	setString(&c.Lens.BaseURL, "LENS_API_URL")
	setString(&c.I18n.DefaultLocale, "DEFAULT_LOCALE")

	setInt(&c.Pricing.BasePriceCents, "BASE_PRICE_CENTS")
	setInt(&c.Pricing.PricePerAdditionalPersonCents, "PRICE_PER_ADDITIONAL_PERSON_CENTS")
	setInt(&c.Pricing.PricePerAdditionalCriteriaCents, "PRICE_PER_ADDITIONAL_CRITERIA_CENTS")
	setInt(&c.Pricing.BaseTeamSize, "BASE_TEAM_SIZE")
	setInt(&c.Pricing.BaseCriteriaCount, "BASE_CRITERIA_COUNT")
	setInt(&c.Pricing.MaxTeamSize, "MAX_TEAM_SIZE")
	setInt(&c.Pricing.MaxCriteriaCount, "MAX_CRITERIA_COUNT")
}

// valid checks if the Config is valid in its current state.
func (c *Config) valid() error {
	if c.Server.Addr == "" {
		return errors.New("config: missing server.addr value")
	}
	u, err := url.Parse(c.DB.URL)
	if err != nil {
		return fmt.Errorf("config: invalid database.url value: %w", err)
	}
	if u.Scheme != "kvdb" && u.Scheme != "jsondb" {
		return fmt.Errorf("config: unknown database.url scheme %q (must be one of: 'kvdb, jsondb')", u.Scheme)
	}
	if c.Lens.BaseURL == "" {
		return errors.New("config: missing lens.base_url value")
	}
	if c.Lens.TimeoutSeconds <= 0 {
		return errors.New("config: lens.timeout_seconds must be positive")
	}
	if c.Pricing.Authority != PricingAuthorityLocal && c.Pricing.Authority != PricingAuthorityBackend {
		return fmt.Errorf("config: invalid pricing.authority value %q (must be one of: 'local, backend')", c.Pricing.Authority)
	}
	if err := c.Pricing.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.I18n.DefaultLocale == "" {
		return errors.New("config: missing i18n.default_locale value")
	}
	return nil
}

// DBPath strips the scheme from the database URL.
func (c *Config) DBPath() string {
	u, err := url.Parse(c.DB.URL)
	if err != nil {
		return ""
	}
	return u.Host + u.Path
}

// DBScheme returns the storage backend selector.
func (c *Config) DBScheme() string {
	u, err := url.Parse(c.DB.URL)
	if err != nil {
		return ""
	}
	return u.Scheme
}
