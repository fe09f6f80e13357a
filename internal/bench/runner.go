package bench

import (
	"fmt"
	"time"

	"github.com/Meesho/BharatMLStack/floatmap/internal/dist"
	"github.com/Meesho/BharatMLStack/floatmap/internal/report"
	"github.com/Meesho/BharatMLStack/floatmap/pkg/floatmap"
	"github.com/Meesho/BharatMLStack/floatmap/pkg/metrics"
	"github.com/rs/zerolog/log"
)

const (
	ImplFloatMap  = "floatmap"
	ImplStdMap    = "stdmap"
	ImplFreecache = "freecache"

	// Trial seeds are BaseSeed+trial and shared across impls so every
	// implementation sees the same keys and the same mixed-op schedule.
	DefaultTrials   = 5
	DefaultBaseSeed = 1234
)

var (
	ErrNLessThan1     = fmt.Errorf("problem size must be greater than 0")
	ErrNoSampler      = fmt.Errorf("sampler factory must be set")
	ErrUnknownImpl    = fmt.Errorf("unknown store implementation")
	ErrBadWorkload    = fmt.Errorf("unknown workload")
	ErrNoDistribution = fmt.Errorf("distribution name must be set")
)

type Config struct {
	DistName string
	// NewSampler builds a fresh sampler per trial so trials are independent
	// and reproducible from the trial seed alone.
	NewSampler func(seed int64) dist.Sampler
	N          int
	Workload   Workload
	Trials     int
	BaseSeed   int64
	Mixer      floatmap.MixFunc
	MixerName  string
	// WithFreecache adds the freecache baseline alongside the built-in map.
	WithFreecache bool
}

type Result struct {
	Impl       string
	AvgTime    time.Duration
	Ops        int
	Throughput float64
	// TableStats is set only on the floatmap result, captured from the last
	// trial's table.
	TableStats *floatmap.Stats
}

// Run executes the configured workload over every implementation for the
// configured number of trials and returns per-implementation averages.
func Run(cfg Config) ([]Result, error) {
	if cfg.N <= 0 {
		return nil, ErrNLessThan1
	}
	if cfg.NewSampler == nil {
		return nil, ErrNoSampler
	}
	if cfg.DistName == "" {
		return nil, ErrNoDistribution
	}
	if cfg.Workload != WorkloadBuildOnly && cfg.Workload != WorkloadMixed {
		return nil, ErrBadWorkload
	}
	if cfg.Trials <= 0 {
		cfg.Trials = DefaultTrials
	}
	if cfg.BaseSeed == 0 {
		cfg.BaseSeed = DefaultBaseSeed
	}
	if cfg.MixerName == "" {
		cfg.MixerName = "splitmix64"
	}

	impls := []string{ImplFloatMap, ImplStdMap}
	if cfg.WithFreecache {
		impls = append(impls, ImplFreecache)
	}

	averagers := make(map[string]*report.Averager, len(impls))
	for _, impl := range impls {
		averagers[impl] = &report.Averager{}
	}
	var lastStats floatmap.Stats

	for trial := 0; trial < cfg.Trials; trial++ {
		trialSeed := cfg.BaseSeed + int64(trial)

		// 2n keys so the mixed workload never runs out of fresh inserts.
		keys, err := dist.DistinctKeys(cfg.NewSampler(trialSeed), cfg.N*2)
		if err != nil {
			return nil, err
		}

		for _, impl := range impls {
			store, err := newStore(impl, cfg)
			if err != nil {
				return nil, err
			}

			start := time.Now()
			switch cfg.Workload {
			case WorkloadBuildOnly:
				BuildOnly(store, keys[:cfg.N])
			case WorkloadMixed:
				Mixed(store, keys, cfg.N, trialSeed)
			}
			elapsed := time.Since(start)

			averagers[impl].AddDuration(elapsed)
			metrics.Timing(metrics.KEY_TRIAL_LATENCY, elapsed,
				metrics.BenchTags(cfg.DistName, string(cfg.Workload), impl, cfg.MixerName))

			log.Debug().
				Str("dist", cfg.DistName).
				Str("workload", string(cfg.Workload)).
				Str("impl", impl).
				Int("n", cfg.N).
				Int("trial", trial+1).
				Int64("seed", trialSeed).
				Dur("elapsed", elapsed).
				Msg("trial finished")

			if impl == ImplFloatMap && trial == cfg.Trials-1 {
				lastStats = store.(*FloatMapStore).Stats()
			}
		}
	}

	results := make([]Result, 0, len(impls))
	for _, impl := range impls {
		avg := time.Duration(averagers[impl].Average())
		throughput := 0.0
		if avg > 0 {
			throughput = float64(cfg.N) / avg.Seconds()
		}
		r := Result{
			Impl:       impl,
			AvgTime:    avg,
			Ops:        cfg.N,
			Throughput: throughput,
		}
		if impl == ImplFloatMap {
			stats := lastStats
			r.TableStats = &stats
			metrics.Gauge(metrics.KEY_MAX_CHAIN, float64(stats.MaxChainLength),
				metrics.BenchTags(cfg.DistName, string(cfg.Workload), impl, cfg.MixerName))
			metrics.Gauge(metrics.KEY_MEAN_CHAIN, stats.MeanChainLength,
				metrics.BenchTags(cfg.DistName, string(cfg.Workload), impl, cfg.MixerName))
		}
		metrics.Gauge(metrics.KEY_THROUGHPUT, throughput,
			metrics.BenchTags(cfg.DistName, string(cfg.Workload), impl, cfg.MixerName))
		results = append(results, r)
	}
	return results, nil
}

func newStore(impl string, cfg Config) (Store, error) {
	switch impl {
	case ImplFloatMap:
		return NewFloatMapStore(cfg.Mixer), nil
	case ImplStdMap:
		return NewStdMap(), nil
	case ImplFreecache:
		return NewFreecacheStore(freecacheSize(cfg.N)), nil
	default:
		return nil, ErrUnknownImpl
	}
}

// freecacheSize returns a cache size comfortably holding 2n entries of
// 12 payload bytes plus freecache's per-entry overhead.
func freecacheSize(n int) int {
	size := n * 2 * 64
	if size < 32*1024*1024 {
		size = 32 * 1024 * 1024
	}
	return size
}
