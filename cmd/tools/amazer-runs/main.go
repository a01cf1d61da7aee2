// Command amazer-runs lists the generation runs recorded in a run catalog.
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	dbPath := flag.String("db", "amazer_runs.db", "path to the run catalog")
	limit := flag.Int("limit", 20, "maximum number of runs to list (0 = all)")
	runID := flag.String("run", "", "show the skipped links of one run")
	asJSON := flag.Bool("json", false, "print JSON instead of a table")
	flag.Parse()

	if _, err := os.Stat(*dbPath); err != nil {
		log.Fatalf("catalog %s not accessible: %v", *dbPath, err)
	}

	if err := listRuns(os.Stdout, *dbPath, *limit, *runID, *asJSON); err != nil {
		log.Fatalf("amazer-runs: %v", err)
	}
}
