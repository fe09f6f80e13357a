package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// DefaultCSVFileName is where the grid plan appends results unless overridden.
const DefaultCSVFileName = "benchmark_results.csv"

// Row is one averaged benchmark result. Baseline impls have no chain shape;
// their chain columns are written as -1 so the CSV keeps a fixed width.
type Row struct {
	Distribution string
	Params       string
	N            int
	Workload     string
	Impl         string
	AvgTime      time.Duration
	Ops          int
	Throughput   float64

	HasChainStats bool
	MaxChain      int
	MeanChain     float64
	LoadFactor    float64
}

var csvHeader = []string{
	"distribution", "params", "n", "workload", "impl",
	"avg_time_ns", "ops", "throughput_ops_per_s",
	"max_chain", "mean_chain", "load_factor",
	"cpu_secs", "mem_mb", "time",
}

// AppendRows appends results to the CSV at path, writing the header only when
// the file is new or empty.
func AppendRows(path string, rows []Row) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat CSV file: %w", err)
	}
	if fileInfo.Size() == 0 {
		if err := writer.Write(csvHeader); err != nil {
			return fmt.Errorf("error writing CSV header: %w", err)
		}
	}

	cpuSecs := getCPUSeconds()
	memMB := getMemoryUsageMB()
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	for _, row := range rows {
		maxChain, meanChain, loadFactor := "-1", "-1", "-1"
		if row.HasChainStats {
			maxChain = strconv.Itoa(row.MaxChain)
			meanChain = fmt.Sprintf("%.3f", row.MeanChain)
			loadFactor = fmt.Sprintf("%.3f", row.LoadFactor)
		}
		record := []string{
			row.Distribution,
			row.Params,
			strconv.Itoa(row.N),
			row.Workload,
			row.Impl,
			strconv.FormatInt(row.AvgTime.Nanoseconds(), 10),
			strconv.Itoa(row.Ops),
			fmt.Sprintf("%.2f", row.Throughput),
			maxChain,
			meanChain,
			loadFactor,
			fmt.Sprintf("%.3f", cpuSecs),
			fmt.Sprintf("%.2f", memMB),
			timestamp,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV data row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// getMemoryUsageMB returns the current heap allocation of this process in MB.
func getMemoryUsageMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Alloc) / 1024 / 1024
}

// getCPUSeconds returns the total user+system CPU time consumed by this
// process so far.
func getCPUSeconds() float64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return timevalSeconds(ru.Utime) + timevalSeconds(ru.Stime)
}

func timevalSeconds(tv unix.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}
