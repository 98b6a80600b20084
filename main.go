package main

import (
	"flag"
	"iter"
	"os"

	"github.com/tuannh982/prime-sieve/bench"
	"github.com/tuannh982/prime-sieve/config"
	"github.com/tuannh982/prime-sieve/sieve"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.Level())

	logger := log.WithFields(log.Fields{"component": "bench", "limit": cfg.Limit})
	runner := bench.NewRunner(os.Stdout, logger)
	for _, variant := range cfg.Variants {
		if err := runner.Add(newTask(variant, cfg.Limit)); err != nil {
			log.Fatal(err)
		}
	}
	runner.RunAll()
}

// loadConfig merges the command line over the optional configuration file.
// An explicit -limit always wins, and the result is validated afterwards.
func loadConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("prime-sieve", flag.ContinueOnError)
	configFile := fs.String("config", "", "path to an optional TOML configuration file")
	limit := fs.Int("limit", config.DefaultLimit, "upper bound of the sieve (overrides the configuration)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "limit" {
			cfg.Limit = *limit
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newTask(variant string, limit int) bench.Task {
	switch variant {
	case config.VariantSet:
		return bench.Lazy("sieve_with_set", func() iter.Seq[int] {
			return sieve.Set(limit)
		})
	case config.VariantGenerator:
		return bench.Lazy("sieve_with_generator", func() iter.Seq[int] {
			return sieve.Generator(limit)
		})
	default:
		return bench.Eager("sieve_with_array", func() []int {
			return sieve.Array(limit)
		})
	}
}
