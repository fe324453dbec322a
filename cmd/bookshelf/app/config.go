package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string
	DryRun  bool

	// Config file
	ConfigFile string

	// Catalog configuration
	File       string
	ExportFile string
	PageSize   int

	// Logging configuration. LogLevel is the explicit --log-level flag;
	// EnvLogLevel comes from LOG_LEVEL or the config file and ranks below -v/-q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. BOOKSHELF_* environment variables
//  3. .env files
//  4. Config file (./.bookshelf.yaml or ~/.bookshelf.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig("")
}

// loadConfig loads configuration reading configFile when it is non-empty.
// An explicitly named file must exist; the default locations are optional.
func loadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", constants.DefaultLibraryFile)
	v.SetDefault("export_file", constants.DefaultExportFile)
	v.SetDefault("page_size", constants.DefaultPageSize)
	v.SetDefault("log.format", "auto")
	v.SetDefault("log.output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "failed to read "+configFile, err)
		}
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "failed to parse config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),
		DryRun:  v.GetBool("dry_run"),

		ConfigFile: v.ConfigFileUsed(),

		File:       v.GetString("file"),
		ExportFile: v.GetString("export_file"),
		PageSize:   v.GetInt("page_size"),

		EnvLogLevel: getEnvOrDefault("LOG_LEVEL", v.GetString("log.level")),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", v.GetString("log.format")),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", v.GetString("log.output")),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	if c.PageSize < 1 || c.PageSize > constants.MaxPageSize {
		return errors.NewConfigError("page_size", "must be between 1 and 1000",
			errors.NewValidationError("page_size", c.PageSize, "out of range"))
	}
	if c.File == "" {
		return errors.NewConfigError("file", "library file path is empty", nil)
	}
	return nil
}

// UpdateFromFlags copies every flag the user actually set into the config.
// This should be called after cobra parses flags so flag values take
// precedence over the config file and environment.
func (c *Config) UpdateFromFlags(flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "verbose":
			c.Verbose, err = flags.GetBool(f.Name)
		case "quiet":
			c.Quiet, err = flags.GetBool(f.Name)
		case "no-color":
			c.NoColor, err = flags.GetBool(f.Name)
		case "dry-run":
			c.DryRun, err = flags.GetBool(f.Name)
		case "output":
			c.Format, err = flags.GetString(f.Name)
		case "log-level":
			c.LogLevel, err = flags.GetString(f.Name)
		case "library":
			c.File, err = flags.GetString(f.Name)
		case "page-size":
			c.PageSize, err = flags.GetInt(f.Name)
		}
	})
	if err != nil {
		return errors.NewConfigError("flags", "invalid flag value", err)
	}
	return c.Validate()
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win; godotenv never overrides.
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
