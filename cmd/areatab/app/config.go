package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/areatab/areatab/pkg/constants"
	pkgerrors "github.com/areatab/areatab/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Values of the shared cobra flags.
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// ConfigFile records which config file was read.
	ConfigFile string

	// Client settings handed to areatab.New.
	SnapshotPath       string
	SheetPath          string
	Delimiter          string
	SchemaFile         string
	AutoImportsEnabled bool
	AutoImportInterval time.Duration

	// Log routing.
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.areatab.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return loadConfig("")
}

// LoadConfigFile loads configuration like LoadConfig but reads the
// given config file instead of searching the standard locations.
// Unlike the implicit search, an unreadable explicit file is an error.
func LoadConfigFile(configFile string) (*Config, error) {
	return loadConfig(configFile)
}

func loadConfig(configFile string) (*Config, error) {
	// .env values must be in the environment before viper binds it.
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	bindEnvVars()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, pkgerrors.NewConfigError("app", "cannot read config file "+configFile, err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".areatab")
		}

		// A missing implicit config file is fine.
		_ = viper.ReadInConfig()
	}

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		SnapshotPath:       viper.GetString("snapshot_path"),
		SheetPath:          viper.GetString("sheet_path"),
		Delimiter:          viper.GetString("delimiter"),
		SchemaFile:         viper.GetString("schema_file"),
		AutoImportsEnabled: viper.GetBool("auto_imports_enabled"),
		AutoImportInterval: viper.GetDuration("auto_import_interval"),

		// LogLevel stays empty unless the --log-level flag sets it so
		// the -v/-q shortcuts keep their place in the precedence order.
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.SnapshotPath == "" {
		config.SnapshotPath = constants.DefaultSnapshotPath
	}
	if config.AutoImportInterval == 0 {
		config.AutoImportInterval = constants.DefaultImportInterval
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles pulls .env files into the environment. godotenv.Load
// never overrides a key that is already set, so the more specific file
// comes first: .env.local wins over .env, and the real environment
// wins over both.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// bindEnvVars explicitly binds configuration keys to their prefixed
// environment variables, so AREATAB_SNAPSHOT_PATH works alongside the
// bare SNAPSHOT_PATH picked up by AutomaticEnv.
func bindEnvVars() {
	bindings := [][]string{
		{"snapshot_path", "AREATAB_SNAPSHOT_PATH"},
		{"sheet_path", "AREATAB_SHEET_PATH"},
		{"delimiter", "AREATAB_DELIMITER"},
		{"schema_file", "AREATAB_SCHEMA_FILE"},
		{"auto_imports_enabled", "AREATAB_AUTO_IMPORTS_ENABLED"},
		{"auto_import_interval", "AREATAB_AUTO_IMPORT_INTERVAL"},
	}

	for _, binding := range bindings {
		if err := viper.BindEnv(binding...); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", binding[0], err)
		}
	}
}

// getEnvOrDefault reads an environment variable, falling back to def
// when it is unset or empty.
func getEnvOrDefault(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

// expandPath expands a leading ~ to the user's home directory.
// Paths without a tilde are returned unchanged.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
