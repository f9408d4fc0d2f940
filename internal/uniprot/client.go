// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package uniprot resolves UniProtKB protein accessions to gene names through
// the UniProt REST accessions endpoint. Client issues one request per call,
// ParseGenes turns the decoded body into an ordered GeneLookup, and Batcher
// splits long accession lists into several requests and merges the results.
package uniprot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/gene-mapper/internal/httputil"
	"github.com/pdiddy/gene-mapper/pkg/types"
)

// DefaultBaseURL is the UniProt REST root.
const DefaultBaseURL = "https://rest.uniprot.org"

const accessionsPath = "/uniprotkb/accessions"

// AccessionSeparator joins accessions inside the accessions query parameter.
// It is the URL-encoded comma and is placed in the URL verbatim.
const AccessionSeparator = "%2C"

// QueryResult is the decoded JSON body returned by the accessions endpoint.
// It is not validated; ParseGenes interprets it.
type QueryResult map[string]any

// Client requests gene records for accessions from UniProt.
type Client struct {
	HTTP       *http.Client
	BaseURL    string
	UserAgent  string
	MaxRetries int
	Log        zerolog.Logger
}

// NewClient builds a Client from cfg. An empty BaseURL selects
// DefaultBaseURL; a zero Timeout leaves requests without a deadline.
func NewClient(cfg types.LookupConfig, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		BaseURL:    baseURL,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
		Log:        log,
	}
}

// RequestGenes issues a single GET for all accessions and returns the
// decoded body. The HTTP status is not checked: an error payload that is
// valid JSON is returned like any other body. Transport failures come back
// as *NetworkError and undecodable bodies as *DecodeError.
func (c *Client) RequestGenes(ctx context.Context, accessions []string) (QueryResult, error) {
	if len(accessions) == 0 {
		return nil, ErrNoAccessions
	}

	reqURL := c.AccessionsURL(accessions)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient(), req, c.MaxRetries, c.Log)
	if err != nil {
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	c.Log.Debug().
		Int("status", resp.StatusCode).
		Int("accessions", len(accessions)).
		Msg("UniProt response received")

	var qr QueryResult
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&qr); err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Err: err}
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected second JSON value")
		}
		return nil, &DecodeError{StatusCode: resp.StatusCode, Err: fmt.Errorf("trailing data: %w", err)}
	}
	if qr == nil {
		// A literal null body.
		qr = QueryResult{}
	}
	return qr, nil
}

// AccessionsURL returns the request URL for accessions, joined in order with
// AccessionSeparator. Accessions are not escaped or validated.
func (c *Client) AccessionsURL(accessions []string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return base + accessionsPath + "?accessions=" + strings.Join(accessions, AccessionSeparator)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// MapGenes performs the unbatched lookup: one request for every accession
// followed by ParseGenes. It returns the lookup and the unmapped count.
func MapGenes(ctx context.Context, r Requester, accessions []string) (*types.GeneLookup, int, error) {
	qr, err := r.RequestGenes(ctx, accessions)
	if err != nil {
		return nil, 0, err
	}
	return ParseGenes(qr)
}
