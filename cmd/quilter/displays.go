package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ZebulonRouseFrantzich/quilter/internal/display"
)

// displayJSON is the wire shape of `quilter displays --json`.
type displayJSON struct {
	Name   string `json:"name"`
	Layout [2]int `json:"layout"`
}

// runDisplays handles the `quilter displays` subcommand
func runDisplays(args []string, stdout io.Writer) error {
	asJSON := false
	for _, arg := range args {
		switch arg {
		case "--json":
			asJSON = true
		case "--help", "-h":
			fmt.Fprintln(stdout, "Usage: quilter displays [--json]")
			return nil
		default:
			return fmt.Errorf("unknown option: %s", arg)
		}
	}

	if asJSON {
		return writeDisplaysJSON(stdout, display.All())
	}
	return writeDisplaysTable(stdout, display.All())
}

func writeDisplaysJSON(w io.Writer, displays []display.Display) error {
	out := make([]displayJSON, 0, len(displays))
	for _, d := range displays {
		out = append(out, displayJSON{Name: d.Name, Layout: d.Layout})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeDisplaysTable(w io.Writer, displays []display.Display) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLAYOUT\tVIEWS")
	for _, d := range displays {
		fmt.Fprintf(tw, "%s\t%dx%d\t%d\n", d.Name, d.Rows(), d.Columns(), d.Views())
	}
	return tw.Flush()
}
