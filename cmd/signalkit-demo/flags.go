package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	MetricsPort int
	MaxRally    int
	RallyRate   float64
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("SIGNALKIT_CONFIG", ""),
		"Path to wiring file, empty uses the embedded default (env: SIGNALKIT_CONFIG)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("SIGNALKIT_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: SIGNALKIT_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("SIGNALKIT_LOG_FORMAT", "text"),
		"Log format: json, text (env: SIGNALKIT_LOG_FORMAT)")

	flag.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("SIGNALKIT_METRICS_PORT", 0),
		"Prometheus metrics port, 0 to disable (env: SIGNALKIT_METRICS_PORT)")

	flag.IntVar(&cfg.MaxRally, "max-rally",
		getEnvInt("SIGNALKIT_MAX_RALLY", 20),
		"Number of ball exchanges before the match ends (env: SIGNALKIT_MAX_RALLY)")

	flag.Float64Var(&cfg.RallyRate, "rate",
		getEnvFloat("SIGNALKIT_RATE", 100),
		"Maximum deliveries per second (env: SIGNALKIT_RATE)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	flag.Usage = printDetailedHelp

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("wiring file not found: %s", cfg.ConfigPath)
		}
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	if cfg.MaxRally < 1 {
		return fmt.Errorf("invalid max rally count: %d", cfg.MaxRally)
	}

	if cfg.RallyRate <= 0 {
		return fmt.Errorf("invalid rate: %v", cfg.RallyRate)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - deferred signal/slot wiring demo

Runs two named actions exchanging a ball through configured links and
drains the delivery queue until the rally limit is reached.

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Run with the embedded wiring and verbose logging
  %s --log-level=debug

  # Run a long, slow match with metrics exposed
  %s --max-rally=1000 --rate=10 --metrics-port=9102

Version: %s
`, os.Args[0], os.Args[0], Version)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
