package collector

import (
	"fmt"
	"log"

	"SensexBands/internal/calculator"
	"SensexBands/internal/cleaner"
	"SensexBands/internal/model"
	"SensexBands/internal/summary"
)

// MockLoader returns a fixed table for development and testing.
type MockLoader struct {
	Table *model.RawTable
	Err   error
}

func (m *MockLoader) Name() string { return "mock" }

func (m *MockLoader) Load(path string) (*model.RawTable, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	t := *m.Table
	t.Source = path
	return &t, nil
}

// Collector runs load, clean, derive and summarize in order.
type Collector struct {
	Loader  Loader
	Options cleaner.Options
}

// NewCollector creates a new Collector.
func NewCollector(loader Loader, opts cleaner.Options) *Collector {
	return &Collector{Loader: loader, Options: opts}
}

// Run reads path and produces the enriched records and the yearly summary.
// Nothing is computed if loading fails.
func (c *Collector) Run(path string) (*model.Analysis, error) {
	raw, err := c.Loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	log.Printf("[INFO] loaded %d rows from %s (%s)", len(raw.Rows), path, c.Loader.Name())

	cleaned, err := cleaner.Clean(raw, c.Options)
	if err != nil {
		return nil, fmt.Errorf("clean %s: %w", path, err)
	}

	records := calculator.Derive(cleaned)
	years := summary.Summarize(records)
	log.Printf("[INFO] %d records across %d years", len(records), len(years))

	return &model.Analysis{Records: records, Summary: years}, nil
}
