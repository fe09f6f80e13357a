package bench

import "github.com/Meesho/BharatMLStack/floatmap/internal/report"

// CSVRows flattens averaged results into report rows, one per implementation.
func CSVRows(cfg Config, params string, results []Result) []report.Row {
	rows := make([]report.Row, 0, len(results))
	for _, r := range results {
		row := report.Row{
			Distribution: cfg.DistName,
			Params:       params,
			N:            cfg.N,
			Workload:     string(cfg.Workload),
			Impl:         r.Impl,
			AvgTime:      r.AvgTime,
			Ops:          r.Ops,
			Throughput:   r.Throughput,
		}
		if r.TableStats != nil {
			row.HasChainStats = true
			row.MaxChain = r.TableStats.MaxChainLength
			row.MeanChain = r.TableStats.MeanChainLength
			row.LoadFactor = r.TableStats.LoadFactor
		}
		rows = append(rows, row)
	}
	return rows
}
