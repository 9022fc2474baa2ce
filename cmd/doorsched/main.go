package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/buildplan/doorsched/internal/config"
	"github.com/buildplan/doorsched/internal/export"
	"github.com/buildplan/doorsched/internal/report"
	"github.com/buildplan/doorsched/internal/schedule"
	"github.com/buildplan/doorsched/internal/tablesource"
)

// setupLogging routes progress logging to stderr at the configured level so
// stdout stays clean for the report.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)
	if cfg.LogLevel == "warn" || cfg.LogLevel == "error" {
		log.SetOutput(io.Discard)
	}
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

func main() {
	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		pflag.Usage()
		os.Exit(1)
	}

	setupLogging(cfg)

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := tablesource.ValidateFile(cfg.InputPath, cfg.MaxFileSize); err != nil {
		return err
	}

	src, err := tablesource.Open(cfg.InputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	log.Printf("Processing PDF: %s", cfg.InputPath)
	log.Printf("Total pages: %d", src.PageCount())

	pages := collectPages(src)

	extractor := schedule.NewExtractor(schedule.NewValidator(cfg.ExtraMarkers...))
	records := extractor.ExtractAll(pages, cfg.Workers)
	records = schedule.Finalize(records)

	if err := writeOutput(cfg, records); err != nil {
		return err
	}

	fmt.Printf("Data saved to: %s\n\n", cfg.OutputPath)
	report.Summary(os.Stdout, records)
	return nil
}

// collectPages reads every page's tables from the source. A page the source
// cannot handle is logged and skipped; it must not abort the run.
func collectPages(src tablesource.Source) []schedule.PageTables {
	pages := make([]schedule.PageTables, 0, src.PageCount())
	for page := 1; page <= src.PageCount(); page++ {
		log.Printf("Processing page %d...", page)
		tables, err := src.Tables(page)
		if err != nil {
			log.Printf("  page %d skipped: %v", page, err)
			continue
		}
		if len(tables) == 0 {
			log.Printf("  no tables found on page %d", page)
			continue
		}
		log.Printf("  found %d table(s) on page %d", len(tables), page)
		pages = append(pages, schedule.PageTables{Page: page, Tables: tables})
	}
	return pages
}

func writeOutput(cfg *config.Config, records []schedule.DoorRecord) error {
	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	switch cfg.Format {
	case config.FormatCSV:
		err = export.WriteCSV(out, records)
	default:
		err = export.WriteJSON(out, records)
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
