// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gene-mapper/internal/accessions"
	"github.com/pdiddy/gene-mapper/internal/report"
	"github.com/pdiddy/gene-mapper/internal/store"
	"github.com/pdiddy/gene-mapper/internal/uniprot"
	"github.com/pdiddy/gene-mapper/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [accessions...]",
	Short: "Map UniProt accessions to gene names",
	Long: `Lookup sends accessions to the UniProt accessions endpoint in batches and
prints the gene name found for each returned record. Records without a gene
name are printed as absent and counted as unmapped.

Accessions are read from --file (a TSV/CSV table, local path or URL), then
--list (one accession per line), then the positional arguments. A batch that
fails is reported with its accessions and does not stop the others.`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("file", "", "TSV/CSV table (path or URL) holding accessions")
	lookupCmd.Flags().String("column", accessions.DefaultColumn, "table column holding accessions")
	lookupCmd.Flags().Bool("csv", false, "table is comma-separated (default: by .csv extension, else tab)")
	lookupCmd.Flags().Int("limit", 0, "read at most this many accessions from the table (0 = all)")
	lookupCmd.Flags().String("list", "", "file (path or URL) with one accession per line")
	lookupCmd.Flags().Int("batch-size", uniprot.DefaultBatchSize, "accessions per UniProt request")
	lookupCmd.Flags().Duration("timeout", 0, "HTTP request timeout (0 = none)")
	lookupCmd.Flags().Int("max-retries", 0, "re-issue requests answered with HTTP 429 up to this many times")
	lookupCmd.Flags().Bool("single", false, "send every accession in one request without batching")
	lookupCmd.Flags().String("format", string(types.OutputTable), "output format: table, json, yaml, tsv")
	lookupCmd.Flags().String("db", "", "also save mappings to this SQLite database")

	viper.BindPFlag("uniprot.batch_size", lookupCmd.Flags().Lookup("batch-size"))
	viper.BindPFlag("uniprot.timeout", lookupCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("uniprot.max_retries", lookupCmd.Flags().Lookup("max-retries"))

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := lookupConfig()

	accs, err := collectAccessions(ctx, cmd, args, &http.Client{Timeout: cfg.Timeout})
	if err != nil {
		return err
	}
	if len(accs) == 0 {
		return fmt.Errorf("no accessions: pass them as arguments, --file, or --list")
	}
	log.Debug().Int("accessions", len(accs)).Int("batch_size", cfg.BatchSize).Msg("looking up accessions")

	client := uniprot.NewClient(cfg, log.Logger)

	var res types.LookupResult
	if single, _ := cmd.Flags().GetBool("single"); single {
		lookup, unmapped, err := uniprot.MapGenes(ctx, client, accs)
		if err != nil {
			return err
		}
		res = types.LookupResult{Lookup: lookup, Unmapped: unmapped, Requested: len(accs), Chunks: 1}
	} else {
		res, err = uniprot.NewBatcher(client, cfg, log.Logger).Lookup(ctx, accs)
		if err != nil {
			report.Warn(res, cmd.ErrOrStderr())
			return err
		}
	}

	format, _ := cmd.Flags().GetString("format")
	if err := report.Write(types.OutputFormat(format), res, cmd.OutOrStdout()); err != nil {
		return err
	}
	report.Warn(res, cmd.ErrOrStderr())

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		if err := exportLookup(ctx, dbPath, res.Lookup); err != nil {
			return err
		}
	}
	return nil
}

// collectAccessions gathers accessions from --file, --list, and args, in
// that order.
func collectAccessions(ctx context.Context, cmd *cobra.Command, args []string, client *http.Client) ([]string, error) {
	var accs []string

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		column, _ := cmd.Flags().GetString("column")
		limit, _ := cmd.Flags().GetInt("limit")
		isCSV, _ := cmd.Flags().GetBool("csv")
		opts := accessions.TableOptions{Column: column, Limit: limit}
		if isCSV || strings.EqualFold(filepath.Ext(file), ".csv") {
			opts.Comma = ','
		}

		rc, err := accessions.Open(ctx, client, file)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		table, err := accessions.ReadTable(rc, opts)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		accs = append(accs, table...)
	}

	if list, _ := cmd.Flags().GetString("list"); list != "" {
		rc, err := accessions.Open(ctx, client, list)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		listed, err := accessions.ReadList(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", list, err)
		}
		accs = append(accs, listed...)
	}

	return append(accs, args...), nil
}

func exportLookup(ctx context.Context, dbPath string, lookup *types.GeneLookup) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Save(ctx, lookup)
	if err != nil {
		return err
	}
	log.Info().Int("mappings", n).Str("db", dbPath).Msg("saved mappings")
	return nil
}
