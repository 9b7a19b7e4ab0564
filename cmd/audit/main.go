package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/osse101/LoadoutCalc_Go/internal/catalog"
	"github.com/osse101/LoadoutCalc_Go/internal/config"
)

func main() {
	defaultDir := config.DefaultDataDir
	if cfg, err := config.Load(); err == nil {
		defaultDir = cfg.DataDir
	}

	dir := flag.String("dir", defaultDir, "Item data directory")
	schema := flag.Bool("schema", true, "Validate each file against the item schema")
	asJSON := flag.Bool("json", false, "Print findings as JSON")
	flag.Parse()

	loader, err := catalog.NewLoader(*schema)
	if err != nil {
		log.Fatalf("Failed to create loader: %v", err)
	}

	c, report, err := catalog.LoadCatalog(context.Background(), loader, *dir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	findings := catalog.Audit(c, report)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			log.Fatalf("Failed to encode findings: %v", err)
		}
	} else {
		printFindings(c, report, findings)
	}

	if catalog.HasErrors(findings) {
		os.Exit(1)
	}
}

func printFindings(c *catalog.Catalog, report *catalog.LoadReport, findings []catalog.Finding) {
	fmt.Printf("Catalog %s: %d records from %d files, %d skipped\n", report.Dir, c.Len(), report.FilesRead, len(report.Skipped))

	if len(findings) == 0 {
		fmt.Println("✓ No problems found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEVERITY\tKIND\tITEM\tDETAIL")
	for _, f := range findings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Severity, f.Kind, f.ItemID, f.Detail)
	}
	_ = w.Flush()

	errs := 0
	for _, f := range findings {
		if f.Severity == catalog.SeverityError {
			errs++
		}
	}
	fmt.Printf("\n%d findings, %d errors\n", len(findings), errs)
}
