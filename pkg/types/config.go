// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout: the call
	// blocks until the network layer or the server resolves it.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gene-mapper/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LookupConfig holds settings for accession-to-gene lookups against UniProt.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the UniProt REST root (default https://rest.uniprot.org).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// BatchSize is the number of accessions sent per request (default 100).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// MaxRetries is the number of times a request answered with HTTP 429 is
	// re-issued. Zero disables it; transport failures are never retried.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// OutputFormat selects how lookup results are printed.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputTSV   OutputFormat = "tsv"
)
