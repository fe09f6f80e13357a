package report

import (
	"github.com/rs/zerolog/log"
)

// LogResults prints an averaged benchmark summary to the console.
func LogResults(rows []Row) {
	for _, row := range rows {
		event := log.Info().
			Str("dist", row.Distribution).
			Str("params", row.Params).
			Int("n", row.N).
			Str("workload", row.Workload).
			Str("impl", row.Impl).
			Dur("avg_time", row.AvgTime).
			Float64("throughput_ops_per_s", row.Throughput)
		if row.HasChainStats {
			event = event.
				Int("max_chain", row.MaxChain).
				Float64("mean_chain", row.MeanChain).
				Float64("load_factor", row.LoadFactor)
		}
		event.Msg("benchmark result")
	}
}

// LogProgress reports sweep progress with a naive ETA from the average time
// per completed benchmark.
func LogProgress(done, total int, elapsedSecs float64) {
	if done == 0 || total == 0 {
		return
	}
	eta := elapsedSecs / float64(done) * float64(total-done)
	log.Info().
		Int("done", done).
		Int("total", total).
		Float64("pct", 100.0*float64(done)/float64(total)).
		Float64("elapsed_secs", elapsedSecs).
		Float64("eta_secs", eta).
		Msg("sweep progress")
}
