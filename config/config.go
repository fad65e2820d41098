// Package config loads the verify CLI's configuration from flags,
// environment variables and defaults, grounded on the
// davinci-sequencer command's viper/pflag wiring (spec.md §2, ambient
// "Configuration").
package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultFormat   = "text"
	defaultLogLevel = "info"
)

// Config holds the verify CLI's runtime configuration.
type Config struct {
	// Format selects the predicate-trail rendering: "text" (one
	// OK:/FAIL: line per predicate, spec.md §6) or "json" (an array of
	// predicate records).
	Format string `mapstructure:"format"`
	// LogLevel controls zerolog verbosity: debug, info, warn, error.
	LogLevel string `mapstructure:"log-level"`
	// FailFast threads into verify.Options{FailFast}.
	FailFast bool `mapstructure:"fail-fast"`
}

// Load parses args (normally os.Args[1:]) into a Config plus the
// positional record-path argument. Flags take precedence over
// environment variables (EGVERIFY_ prefix), which take precedence over
// the defaults above.
func Load(args []string) (*Config, string, error) {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.String("format", defaultFormat, `output format: "text" or "json"`)
	fs.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.Bool("fail-fast", false, "stop a Sigma-OR check at the first failing branch instead of checking every branch")
	fs.Usage = func() {
		fmt.Println("Usage: verify [flags] <path-to-record.json>")
		fmt.Println("Flags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, "", errors.Wrap(err, "config: failed to parse flags")
	}

	v := viper.New()
	v.SetDefault("format", defaultFormat)
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("fail-fast", false)
	v.SetEnvPrefix("EGVERIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, "", errors.Wrap(err, "config: failed to bind flags")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", errors.Wrap(err, "config: failed to unmarshal configuration")
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, "", errors.Errorf("config: unsupported --format %q (want text or json)", cfg.Format)
	}

	rest := fs.Args()
	if len(rest) != 1 {
		return nil, "", errors.New("config: expected exactly one <path-to-record.json> argument")
	}
	return cfg, rest[0], nil
}
