package main

import (
	"flag"
	"math"
	"net/http"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/Meesho/BharatMLStack/floatmap/internal/bench"
	"github.com/Meesho/BharatMLStack/floatmap/internal/report"
	"github.com/Meesho/BharatMLStack/floatmap/pkg/floatmap"
	"github.com/Meesho/BharatMLStack/floatmap/pkg/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// planGrid sweeps every distribution x problem size x workload combination,
// averages trials and appends one CSV row per implementation.
func planGrid() {
	var (
		csvPath       string
		trials        int
		baseSeed      int64
		mixerName     string
		withFreecache bool
		verbose       bool
		memProfile    string
		cpuProfile    string
	)

	flag.StringVar(&csvPath, "csv", report.DefaultCSVFileName, "CSV file to append results to")
	flag.IntVar(&trials, "trials", bench.DefaultTrials, "trials per benchmark")
	flag.Int64Var(&baseSeed, "base-seed", bench.DefaultBaseSeed, "base seed; trial seed = base + trial")
	flag.StringVar(&mixerName, "mixer", "splitmix64", "hash mixer: splitmix64, xxhash or xxh3")
	flag.BoolVar(&withFreecache, "freecache", false, "include the freecache baseline")
	flag.BoolVar(&verbose, "verbose", false, "debug logging with per-trial timings")
	flag.StringVar(&memProfile, "memprofile", "", "write memory profile to this file")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to this file")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if metrics.Enabled() {
		metrics.Init()
	}

	go func() {
		log.Info().Msg("Starting pprof server on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			log.Error().Err(err).Msg("pprof server failed")
		}
	}()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	mixer, err := floatmap.MixerFor(mixerName)
	if err != nil {
		log.Fatal().Err(err).Str("mixer", mixerName).Msg("invalid mixer")
	}

	specs := []distSpec{uniformSpec(), gaussianSpec(), exponentialSpec()}
	workloads := []bench.Workload{bench.WorkloadBuildOnly, bench.WorkloadMixed}
	exponents := []float64{3.0, 3.5, 4.0, 4.5, 5.0, 5.5, 6.0}

	sizes := make([]int, len(exponents))
	for i, e := range exponents {
		sizes[i] = int(math.Round(math.Pow(10, e)))
	}

	total := len(specs) * len(sizes) * len(workloads)
	done := 0
	sweepStart := time.Now()

	for _, spec := range specs {
		for _, n := range sizes {
			for _, workload := range workloads {
				cfg := bench.Config{
					DistName:      spec.name,
					NewSampler:    spec.newSampler,
					N:             n,
					Workload:      workload,
					Trials:        trials,
					BaseSeed:      baseSeed,
					Mixer:         mixer,
					MixerName:     mixerName,
					WithFreecache: withFreecache,
				}

				results, err := bench.Run(cfg)
				if err != nil {
					log.Error().Err(err).
						Str("dist", spec.name).
						Int("n", n).
						Str("workload", string(workload)).
						Msg("benchmark failed")
					done++
					continue
				}

				rows := bench.CSVRows(cfg, spec.params, results)
				report.LogResults(rows)
				if err := report.AppendRows(csvPath, rows); err != nil {
					log.Fatal().Err(err).Str("csv", csvPath).Msg("failed to append results")
				}

				done++
				report.LogProgress(done, total, time.Since(sweepStart).Seconds())
			}
		}
	}

	log.Info().
		Str("csv", csvPath).
		Dur("elapsed", time.Since(sweepStart)).
		Msg("sweep done")

	if memProfile != "" {
		runtime.GC() // get up-to-date statistics
		f, err := os.Create(memProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not write memory profile")
		}
		log.Info().Msgf("Memory profile written to %s", memProfile)
	}
}
