package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a base URL of the remote Hack or Snooze API
//	-d session database DSN (SQLite file path)
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	cfg, _ := parseFlagsFrom(os.Args[1:])
	return cfg
}

// CommandArgs returns the positional arguments left after the configuration
// flags, i.e. the subcommand and its operands.
func CommandArgs() []string {
	_, rest := parseFlagsFrom(os.Args[1:])
	return rest
}

func parseFlagsFrom(args []string) (*StructuredConfig, []string) {
	fs := flag.NewFlagSet("go-snooze-client", flag.ContinueOnError)

	var baseURL string
	var databaseDSN string
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs.StringVar(&baseURL, "a", "", "Remote API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Session database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// parsing stops at the first positional argument, leaving subcommand
	// words for the app-level dispatcher
	_ = fs.Parse(args)

	cfg := &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args()
}
