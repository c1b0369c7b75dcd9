package config

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	SupabaseURL     string `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey string `mapstructure:"SUPABASE_ANON_KEY"`
	JWTSecret       string `mapstructure:"SUPABASE_JWT_SECRET"`
	SiteURL         string `mapstructure:"SITE_URL"`
	OAuthProvider   string `mapstructure:"OAUTH_PROVIDER"`
	SessionSecret   string `mapstructure:"SESSION_SECRET"`
	SteamSearchURL  string `mapstructure:"STEAM_SEARCH_URL"`
	Port            string `mapstructure:"PORT"`
	AutoMigrate     bool   `mapstructure:"AUTO_MIGRATE"`
}

var AppConfig *Config

// defaults are registered with viper so AutomaticEnv can also see every key
// during Unmarshal, even when it is absent from the .env file.
var defaults = map[string]any{
	"DATABASE_URL":        "",
	"SUPABASE_URL":        "",
	"SUPABASE_ANON_KEY":   "",
	"SUPABASE_JWT_SECRET": "",
	"SITE_URL":            "http://localhost:8080",
	"OAUTH_PROVIDER":      "twitch",
	"SESSION_SECRET":      "",
	"STEAM_SEARCH_URL":    "https://store.steampowered.com/api/storesearch/",
	"PORT":                "8080",
	"AUTO_MIGRATE":        true,
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	cfg, err := Load(viper.New(), ".")
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	AppConfig = cfg
}

// Load reads configuration using v, looking for a .env file in path.
func Load(v *viper.Viper, path string) (*Config, error) {
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	cfg.SupabaseURL = strings.TrimRight(cfg.SupabaseURL, "/")
	return &cfg, nil
}

// Validate reports every required key that is missing.
func (c *Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.SupabaseURL == "" {
		errs = append(errs, errors.New("SUPABASE_URL is required"))
	}
	if c.SupabaseAnonKey == "" {
		errs = append(errs, errors.New("SUPABASE_ANON_KEY is required"))
	}
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}
	return errors.Join(errs...)
}

// CallbackURL is where the identity provider sends users after sign-in.
func (c *Config) CallbackURL() string {
	return c.SiteURL + "/api/auth/callback"
}

// SecureCookies reports whether cookies should carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return strings.HasPrefix(c.SiteURL, "https://")
}
