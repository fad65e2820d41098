// Command verify is the CLI collaborator spec.md §6 describes: it
// reads an election record, walks it with package verify, and prints
// one line per predicate, exiting nonzero if any predicate failed.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/takakv/egverify/config"
	"github.com/takakv/egverify/record"
	"github.com/takakv/egverify/verify"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, path, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to read election record")
		return 1
	}

	rec, err := record.Load(data)
	if err != nil {
		// Structural fatal (spec.md §7): terminates before the core ever
		// sees the record.
		logger.Error().Err(err).Msg("election record is not valid")
		return 1
	}
	logger.Info().Str("path", path).Msg("election record loaded")

	rcd := verify.NewCollectingRecorder()
	verify.VerifyElection(rec, verify.Options{FailFast: cfg.FailFast}, rcd)

	for _, o := range rcd.All() {
		logger.Debug().Bool("status", o.Status).Str("context", o.Context).Str("name", o.Name).Msg(o.Title)
	}

	switch cfg.Format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rcd.All()); err != nil {
			logger.Error().Err(err).Msg("failed to encode predicate trail")
			return 1
		}
	default:
		for _, o := range rcd.All() {
			tag := "OK:  "
			if !o.Status {
				tag = "FAIL:"
			}
			fmt.Printf("%s %s | %s: %s\n", tag, o.Context, o.Name, o.Title)
		}
	}

	if rcd.Failed() {
		return 1
	}
	return 0
}
