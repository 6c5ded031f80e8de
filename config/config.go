package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Scrape    ScrapeConfig
	Retailers RetailersConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScrapeConfig holds settings shared by all retailer extractors
type ScrapeConfig struct {
	UserAgent   string        `mapstructure:"user_agent"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxResults  int           `mapstructure:"max_results"` // result slots probed per search page
	Concurrency int           `mapstructure:"concurrency"` // 1 scrapes retailers one after another
	Debug       bool          `mapstructure:"debug"`
}

// RetailersConfig holds per-retailer endpoints
type RetailersConfig struct {
	Colruyt     RetailerConfig `mapstructure:"colruyt"`
	AlbertHeijn RetailerConfig `mapstructure:"ah"`
	Delhaize    DelhaizeConfig `mapstructure:"delhaize"`
}

// RetailerConfig holds the endpoint of an HTML search page
type RetailerConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// DelhaizeConfig holds the Delhaize search API settings
type DelhaizeConfig struct {
	BaseURL            string `mapstructure:"base_url"`
	PersistedQueryHash string `mapstructure:"persisted_query_hash"`
	Language           string `mapstructure:"language"`
}

const (
	maxResultsLimit  = 50
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Safari/537.36 Edg/110.0.1587.63"
)

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	return load("")
}

// LoadFrom loads configuration from an explicit config file, still honouring environment variables
func LoadFrom(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/basketwise/")
	}

	// Environment variable settings: BASKETWISE_SCRAPE_MAX_RESULTS -> scrape.max_results
	v.SetEnvPrefix("BASKETWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional unless one was named explicitly
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*", "http://127.0.0.1:*"})

	// Scrape defaults
	v.SetDefault("scrape.user_agent", defaultUserAgent)
	v.SetDefault("scrape.timeout", "30s")
	v.SetDefault("scrape.max_results", 10)
	v.SetDefault("scrape.concurrency", 3)
	v.SetDefault("scrape.debug", false)

	// Retailer defaults
	v.SetDefault("retailers.colruyt.base_url", "https://www.collectandgo.be")
	v.SetDefault("retailers.ah.base_url", "https://www.ah.be")
	v.SetDefault("retailers.delhaize.base_url", "https://api.delhaize.be")
	v.SetDefault("retailers.delhaize.persisted_query_hash", "c7899cf99d5932a1a9d81131cf4c620dc55a08d16d1260a173648a8d2a38f0b2")
	v.SetDefault("retailers.delhaize.language", "nl")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Scrape.MaxResults < 1 || config.Scrape.MaxResults > maxResultsLimit {
		return fmt.Errorf("scrape max_results must be between 1 and %d, got: %d", maxResultsLimit, config.Scrape.MaxResults)
	}

	if config.Scrape.Concurrency < 1 {
		return fmt.Errorf("scrape concurrency must be at least 1, got: %d", config.Scrape.Concurrency)
	}

	if config.Scrape.Timeout <= 0 {
		return fmt.Errorf("scrape timeout must be positive, got: %s", config.Scrape.Timeout)
	}

	if config.Retailers.Colruyt.BaseURL == "" || config.Retailers.AlbertHeijn.BaseURL == "" || config.Retailers.Delhaize.BaseURL == "" {
		return fmt.Errorf("every retailer needs a base_url")
	}

	if config.Retailers.Delhaize.PersistedQueryHash == "" {
		return fmt.Errorf("Delhaize persisted query hash is required (set BASKETWISE_RETAILERS_DELHAIZE_PERSISTED_QUERY_HASH)")
	}

	return nil
}
