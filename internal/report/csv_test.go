package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleRows() []Row {
	return []Row{
		{
			Distribution:  "Uniform",
			Params:        "min=0.0 max=1000.0",
			N:             1000,
			Workload:      "build-only",
			Impl:          "floatmap",
			AvgTime:       3 * time.Millisecond,
			Ops:           1000,
			Throughput:    333333.33,
			HasChainStats: true,
			MaxChain:      4,
			MeanChain:     1.25,
			LoadFactor:    0.488,
		},
		{
			Distribution: "Uniform",
			Params:       "min=0.0 max=1000.0",
			N:            1000,
			Workload:     "build-only",
			Impl:         "stdmap",
			AvgTime:      2 * time.Millisecond,
			Ops:          1000,
			Throughput:   500000.00,
		},
	}
}

func TestAppendRowsWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	if err := AppendRows(path, sampleRows()); err != nil {
		t.Fatalf("first AppendRows failed: %v", err)
	}
	if err := AppendRows(path, sampleRows()); err != nil {
		t.Fatalf("second AppendRows failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	// Header + 2 rows per append.
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	if records[0][0] != "distribution" {
		t.Fatalf("expected header row first, got %v", records[0])
	}
	for i, record := range records[1:] {
		if record[0] == "distribution" {
			t.Fatalf("duplicate header at data row %d", i)
		}
		if len(record) != len(records[0]) {
			t.Fatalf("row %d has %d columns, header has %d", i, len(record), len(records[0]))
		}
	}
}

func TestAppendRowsBaselineChainColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	if err := AppendRows(path, sampleRows()); err != nil {
		t.Fatalf("AppendRows failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	floatmapRow := records[1]
	stdmapRow := records[2]

	if floatmapRow[8] != "4" || floatmapRow[9] != "1.250" || floatmapRow[10] != "0.488" {
		t.Fatalf("unexpected chain columns for floatmap: %v", floatmapRow[8:11])
	}
	if stdmapRow[8] != "-1" || stdmapRow[9] != "-1" || stdmapRow[10] != "-1" {
		t.Fatalf("baseline chain columns should be -1: %v", stdmapRow[8:11])
	}
}

func TestAveragerBasics(t *testing.T) {
	var a Averager

	if a.Average() != 0 {
		t.Fatalf("empty averager should report 0, got %v", a.Average())
	}

	a.AddDuration(10 * time.Millisecond)
	a.AddDuration(20 * time.Millisecond)
	a.AddDuration(0) // ignored

	if a.Count() != 2 {
		t.Fatalf("expected 2 samples, got %d", a.Count())
	}
	if got := time.Duration(a.Average()); got != 15*time.Millisecond {
		t.Fatalf("expected average 15ms, got %v", got)
	}

	a.Reset()
	if a.Count() != 0 || a.Average() != 0 {
		t.Fatalf("Reset did not clear state")
	}
}
