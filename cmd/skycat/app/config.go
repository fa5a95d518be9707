package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/errors"
)

// envPrefix prefixes every environment variable read through viper.
const envPrefix = "SKYCAT"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	Root           string
	Medium         string
	Language       string
	IndexedCursors bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. SKYCAT_* environment variables
//  3. .env files
//  4. Config file (configFile, or ~/.skycat.yaml, or ./.skycat.yaml)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("root", ".")
	v.SetDefault("medium", constants.MediumOS)
	v.SetDefault("language", "english")
	v.SetDefault("indexed_cursors", false)
	v.SetDefault("log_format", getEnvOrDefault("LOG_FORMAT", "auto"))
	v.SetDefault("log_output", getEnvOrDefault("LOG_OUTPUT", "stderr"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".skycat")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.NewConfigError("config", "cannot parse config file",
					errors.WrapParse("yaml", v.ConfigFileUsed(), err))
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Root:           v.GetString("root"),
		Medium:         v.GetString("medium"),
		Language:       v.GetString("language"),
		IndexedCursors: v.GetBool("indexed_cursors"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	return config, nil
}

// UpdateFromFlags copies every flag the user set onto the config, so flag
// values take precedence over config file and environment.
func (c *Config) UpdateFromFlags(flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		value := f.Value.String()
		switch f.Name {
		case "verbose":
			c.Verbose = value == "true"
		case "quiet":
			c.Quiet = value == "true"
		case "no-color":
			c.NoColor = value == "true"
		case "format":
			c.Format = value
		case "log-level":
			c.LogLevel = value
		case "root":
			c.Root = value
		case "medium":
			c.Medium = value
		case "language":
			c.Language = value
		case "indexed":
			c.IndexedCursors = value == "true"
		}
	})
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides a variable that is already set, so .env.local goes first.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
