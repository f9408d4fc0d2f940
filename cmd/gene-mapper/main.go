// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gene-mapper CLI, which maps
// UniProtKB protein accessions to gene names.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gene-mapper/internal/uniprot"
	"github.com/pdiddy/gene-mapper/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the gene-mapper CLI.
var rootCmd = &cobra.Command{
	Use:   "gene-mapper",
	Short: "Map UniProt protein accessions to gene names",
	Long: `gene-mapper resolves UniProtKB protein accessions to the names of the genes
that encode them, using the UniProt REST accessions endpoint.

Accessions come from arguments, a plain list file, or a column of a TSV/CSV
table such as a UniProt download. Accessions are sent in batches; records
without a gene name are reported as unmapped.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gene-mapper.yaml or ~/.config/gene-mapper/gene-mapper.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("uniprot.base_url", uniprot.DefaultBaseURL)
	viper.SetDefault("uniprot.user_agent", "gene-mapper/"+version)
	viper.SetDefault("uniprot.timeout", time.Duration(0))
	viper.SetDefault("uniprot.batch_size", uniprot.DefaultBatchSize)
	viper.SetDefault("uniprot.max_retries", 0)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gene-mapper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gene-mapper"))
		}
	}

	// GENE_MAPPER_UNIPROT_BATCH_SIZE overrides uniprot.batch_size.
	viper.SetEnvPrefix("GENE_MAPPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogging installs a console logger on stderr at the configured level.
func setupLogging() error {
	lvl, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", viper.GetString("log_level"), err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	return nil
}

// lookupConfig assembles the UniProt settings from config, env, and flags.
func lookupConfig() types.LookupConfig {
	return types.LookupConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("uniprot.timeout"),
			UserAgent: viper.GetString("uniprot.user_agent"),
		},
		BaseURL:    viper.GetString("uniprot.base_url"),
		BatchSize:  viper.GetInt("uniprot.batch_size"),
		MaxRetries: viper.GetInt("uniprot.max_retries"),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
