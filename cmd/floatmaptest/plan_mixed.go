package main

import (
	"flag"

	"github.com/Meesho/BharatMLStack/floatmap/internal/bench"
	"github.com/Meesho/BharatMLStack/floatmap/internal/report"
	"github.com/Meesho/BharatMLStack/floatmap/pkg/floatmap"
	"github.com/Meesho/BharatMLStack/floatmap/pkg/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// planMixed runs a single mixed benchmark: 50% puts, 25% gets, 25% removes.
func planMixed() {
	var (
		distName      string
		n             int
		trials        int
		baseSeed      int64
		mixerName     string
		withFreecache bool
		csvPath       string
	)

	flag.StringVar(&distName, "dist", "uniform", "distribution: uniform, gaussian or exponential")
	flag.IntVar(&n, "n", 100_000, "number of operations")
	flag.IntVar(&trials, "trials", bench.DefaultTrials, "trials to average over")
	flag.Int64Var(&baseSeed, "base-seed", bench.DefaultBaseSeed, "base seed; trial seed = base + trial")
	flag.StringVar(&mixerName, "mixer", "splitmix64", "hash mixer: splitmix64, xxhash or xxh3")
	flag.BoolVar(&withFreecache, "freecache", false, "include the freecache baseline")
	flag.StringVar(&csvPath, "csv", "", "optional CSV file to append results to")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	if metrics.Enabled() {
		metrics.Init()
	}

	spec, err := specFor(distName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid distribution")
	}
	mixer, err := floatmap.MixerFor(mixerName)
	if err != nil {
		log.Fatal().Err(err).Str("mixer", mixerName).Msg("invalid mixer")
	}

	cfg := bench.Config{
		DistName:      spec.name,
		NewSampler:    spec.newSampler,
		N:             n,
		Workload:      bench.WorkloadMixed,
		Trials:        trials,
		BaseSeed:      baseSeed,
		Mixer:         mixer,
		MixerName:     mixerName,
		WithFreecache: withFreecache,
	}

	results, err := bench.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}

	rows := bench.CSVRows(cfg, spec.params, results)
	report.LogResults(rows)
	for _, r := range results {
		if r.TableStats != nil {
			log.Info().Str("stats", r.TableStats.String()).Msg("final table shape")
		}
	}

	if csvPath != "" {
		if err := report.AppendRows(csvPath, rows); err != nil {
			log.Fatal().Err(err).Str("csv", csvPath).Msg("failed to append results")
		}
	}
}
