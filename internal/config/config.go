package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Output formats
	FormatJSON = "json"
	FormatCSV  = "csv"

	// Default values
	DefaultFormat      = FormatJSON
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
	DefaultWorkers     = 1
)

// Config holds all configuration for the door schedule extractor
type Config struct {
	// Input/output
	InputPath  string
	OutputPath string
	Format     string

	// Extraction configuration
	ExtraMarkers []string // appended to the metadata deny-list
	Workers      int      // concurrent pages, 1 = sequential

	// Application configuration
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Format:      DefaultFormat,
		Workers:     DefaultWorkers,
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and positional arguments and
// returns a configuration. The first positional argument is the input PDF,
// the optional second one the output path.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	args := pflag.Args()
	if len(args) < 1 {
		return nil, errors.New("input PDF path is required")
	}
	cfg.InputPath = args[0]
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	} else {
		cfg.OutputPath = defaultOutputPath(cfg.InputPath, cfg.Format)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("DOORSCHED")
	viper.AutomaticEnv()

	viper.SetDefault("format", cfg.Format)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("workers", cfg.Workers)
	viper.SetDefault("deny", cfg.ExtraMarkers)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("format", cfg.Format, "Output format: 'json' or 'csv'")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
	pflag.Int("workers", cfg.Workers, "Number of pages processed concurrently")
	pflag.StringSlice("deny", nil, "Extra metadata markers appended to the record deny-list")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("format", pflag.Lookup("format"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("workers", pflag.Lookup("workers"))
	_ = viper.BindPFlag("deny", pflag.Lookup("deny"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input.pdf> [output]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nDoor Schedule Extractor - pulls door schedule tables out of drawing set PDFs\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  input.pdf   Path to the PDF file to extract (required)\n")
		fmt.Fprintf(os.Stderr, "  output      Output file path (default: <input>_door_schedule.json)\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s door_schedule.pdf\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s door_schedule.pdf output.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --format=csv door_schedule.pdf doors.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  DOORSCHED_FORMAT       Output format\n")
		fmt.Fprintf(os.Stderr, "  DOORSCHED_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  DOORSCHED_MAXFILESIZE  Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  DOORSCHED_WORKERS      Concurrent pages\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Format = strings.ToLower(viper.GetString("format"))
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.Workers = viper.GetInt("workers")
	cfg.ExtraMarkers = viper.GetStringSlice("deny")
}

// defaultOutputPath derives the output file name from the input file,
// e.g. "plans/tower-a.pdf" becomes "tower-a_door_schedule.json".
func defaultOutputPath(inputPath, format string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	ext := ".json"
	if format == FormatCSV {
		ext = ".csv"
	}
	return stem + "_door_schedule" + ext
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return errors.New("input path cannot be empty")
	}

	if c.Format != FormatJSON && c.Format != FormatCSV {
		return fmt.Errorf("invalid format: %s (must be 'json' or 'csv')", c.Format)
	}

	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputPath: %s, OutputPath: %s, Format: %s, Workers: %d, LogLevel: %s, MaxFileSize: %d}",
		c.InputPath, c.OutputPath, c.Format, c.Workers, c.LogLevel, c.MaxFileSize)
}
