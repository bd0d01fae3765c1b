package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"SensexBands/internal/cleaner"
	"SensexBands/internal/collector"
	"SensexBands/internal/config"
	"SensexBands/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.Input.Path = os.Args[1]
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}

// run analyzes the configured input and prints the report to out.
// A missing input file prints a message instead of a report and is not an error.
func run(cfg *config.Config, out io.Writer) error {
	loader := collector.LoaderFor(cfg.Input.Path, cfg.Input.Sheet)
	col := collector.NewCollector(loader, cleaner.Options{
		DateLayout:  cfg.Input.DateLayout,
		DropColumns: cfg.Input.DropColumns,
	})

	analysis, err := col.Run(cfg.Input.Path)
	if errors.Is(err, collector.ErrInputNotFound) {
		_, werr := fmt.Fprintf(out, "Error: '%s' not found.\n", cfg.Input.Path)
		return werr
	}
	if err != nil {
		return err
	}
	return report.Write(out, analysis)
}
