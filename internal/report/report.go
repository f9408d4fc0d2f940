// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints gene lookups as tables, JSON, YAML, or TSV and
// writes the warnings that accompany a batched lookup.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/gene-mapper/pkg/types"
)

// absentGene is printed in tables for accessions without a gene name.
const absentGene = "-"

// Write prints res in the given format.
func Write(format types.OutputFormat, res types.LookupResult, w io.Writer) error {
	switch format {
	case types.OutputTable, "":
		FormatTable(res, w)
		return nil
	case types.OutputJSON:
		return FormatJSON(res.Lookup, w)
	case types.OutputYAML:
		return FormatYAML(res.Lookup, w)
	case types.OutputTSV:
		FormatTSV(res.Lookup, w)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table, json, yaml, or tsv", format)
	}
}

// FormatTable writes the lookup as a human-readable table to w.
func FormatTable(res types.LookupResult, w io.Writer) {
	entries := res.Lookup.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No accessions resolved.")
		return
	}

	width := len("Accession")
	for _, m := range entries {
		width = max(width, len(m.Accession))
	}

	fmt.Fprintf(w, "%-*s  %s\n", width, "Accession", "Gene")
	fmt.Fprintln(w, strings.Repeat("-", width+2+16))
	for _, m := range entries {
		fmt.Fprintf(w, "%-*s  %s\n", width, m.Accession, m.GeneOr(absentGene))
	}

	fmt.Fprintf(w, "\n%d accessions", len(entries))
	if res.Unmapped > 0 {
		fmt.Fprintf(w, " (%d without gene name)", res.Unmapped)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the lookup as an indented, ordered JSON object to w.
func FormatJSON(lookup *types.GeneLookup, w io.Writer) error {
	if lookup == nil {
		lookup = types.NewGeneLookup()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lookup)
}

// FormatYAML writes the lookup as an ordered YAML mapping to w.
func FormatYAML(lookup *types.GeneLookup, w io.Writer) error {
	if lookup == nil {
		lookup = types.NewGeneLookup()
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(lookup); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// FormatTSV writes one "accession<TAB>gene" line per mapping, leaving the
// gene column empty when absent.
func FormatTSV(lookup *types.GeneLookup, w io.Writer) {
	for _, m := range lookup.Entries() {
		fmt.Fprintf(w, "%s\t%s\n", m.Accession, m.GeneOr(""))
	}
}

// Warn writes the unmapped-accession notice, one line per failed chunk, and
// the number of requested accessions UniProt did not return. It writes
// nothing for a clean result.
func Warn(res types.LookupResult, w io.Writer) {
	if res.Unmapped > 0 {
		fmt.Fprintf(w, "%d protein accessions were not mapped!\n", res.Unmapped)
	}
	for _, f := range res.Failed {
		fmt.Fprintf(w, "warning: %v\n", f)
	}
	if n := len(res.Unreturned); n > 0 {
		fmt.Fprintf(w, "warning: %d requested accessions were not returned by UniProt: %s\n",
			n, strings.Join(res.Unreturned, ","))
	}
}
