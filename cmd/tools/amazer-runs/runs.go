package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/banshee-data/amazer/internal/catalog"
)

// listRuns prints either the latest runs or, when runID is set, that run's
// diagnostics.
func listRuns(w io.Writer, dbPath string, limit int, runID string, asJSON bool) error {
	cat, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	if runID != "" {
		diags, err := cat.RunDiagnostics(runID)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(w, diags)
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LINK\tSOURCE\tTARGET\tREASON")
		for _, d := range diags {
			fmt.Fprintf(tw, "%d\t%v\t%v\t%s\n", d.LinkIndex, d.Source, d.Target, d.Reason)
		}
		return tw.Flush()
	}

	runs, err := cat.ListRuns(limit)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(w, runs)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tCREATED\tINPUT\tGRID\tSIMPLICES\tSKIPPED\tDURATION")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dx%dx%d\t%d\t%d\t%s\n",
			r.RunID,
			time.Unix(0, r.CreatedAt).UTC().Format(time.RFC3339),
			r.InputPath,
			r.GridX, r.GridY, r.GridZ,
			r.Simplices,
			r.SkippedLinks,
			r.Duration.Round(time.Millisecond),
		)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
