// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gene-mapper/internal/report"
	"github.com/pdiddy/gene-mapper/internal/store"
	"github.com/pdiddy/gene-mapper/pkg/types"
)

var storedCmd = &cobra.Command{
	Use:   "stored",
	Short: "List mappings saved with lookup --db",
	Long: `Stored prints the accession-to-gene mappings previously written to a SQLite
export database by "lookup --db", ordered by accession.`,
	RunE: runStored,
}

func init() {
	storedCmd.Flags().String("db", "", "SQLite database written by lookup --db")
	storedCmd.Flags().String("format", string(types.OutputTable), "output format: table, json, yaml, tsv")
	storedCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(storedCmd)
}

func runStored(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	recs, err := s.All(cmd.Context())
	if err != nil {
		return err
	}

	res := types.LookupResult{Lookup: types.NewGeneLookup()}
	for _, r := range recs {
		res.Lookup.Set(r.Accession, r.Gene)
		if !r.HasGene() {
			res.Unmapped++
		}
	}

	format, _ := cmd.Flags().GetString("format")
	if err := report.Write(types.OutputFormat(format), res, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("printing %s: %w", dbPath, err)
	}
	return nil
}
