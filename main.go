package main

import (
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/ttsolve/bench"
	"github.com/domino14/ttsolve/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}

	var logger zerolog.Logger
	switch cfg.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
		logger = zerolog.New(os.Stderr).Level(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
	}
	zerolog.DefaultContextLogger = &logger
	logger.Debug().Msgf("Loaded config: %v", cfg.AllSettings())

	if pp := cfg.GetString("profile-path"); pp != "" {
		f, err := os.Create(pp)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if cfg.GetBool("debug-selfcheck") {
		if err := bench.SelfCheck(); err != nil {
			log.Fatal().Err(err).Msg("self-check-failed")
		}
		return
	}

	h := bench.NewHarness(cfg.GetInt("iterations"),
		cfg.GetBool("ab-prune"), cfg.GetBool("win-lose-prune"))

	var results []bench.PhaseResult
	if !cfg.GetBool("single-threaded") {
		pr, err := h.RunParallel()
		if err != nil {
			log.Fatal().Err(err).Msg("parallel-phase")
		}
		results = append(results, pr)
	}
	sr, err := h.RunSerial()
	if err != nil {
		log.Fatal().Err(err).Msg("serial-phase")
	}
	results = append(results, sr)

	bench.WriteReport(os.Stdout, results)

	if path := cfg.GetString("chart-file"); path != "" {
		if err := bench.WriteChart(path, results); err != nil {
			log.Err(err).Str("path", path).Msg("could not write chart")
		}
	}
}
