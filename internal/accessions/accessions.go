// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package accessions reads UniProt accession lists from delimited tables
// (such as UniProt TSV downloads), plain line-oriented lists, local files,
// and remote URLs.
package accessions

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultColumn is the accession column of UniProt TSV downloads.
const DefaultColumn = "Entry"

// ErrColumnNotFound is returned when the requested column is not in the header.
var ErrColumnNotFound = errors.New("column not found")

// TableOptions controls ReadTable.
type TableOptions struct {
	// Column is the header name holding accessions (default "Entry").
	Column string

	// Comma is the field delimiter (default tab).
	Comma rune

	// Limit reads only the first Limit data rows when positive. Blank and
	// short rows count toward the limit but yield no accession.
	Limit int
}

// ReadTable reads a delimited table with a header row and returns the
// values of opts.Column in row order. Values are trimmed and blank cells
// skipped; rows shorter than the column index are skipped.
func ReadTable(r io.Reader, opts TableOptions) ([]string, error) {
	column := opts.Column
	if column == "" {
		column = DefaultColumn
	}
	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	if cr.Comma == 0 {
		cr.Comma = '\t'
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %q (empty table)", ErrColumnNotFound, column)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	var out []string
	for rows := 0; opts.Limit <= 0 || rows < opts.Limit; rows++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading table: %w", err)
		}
		if col >= len(rec) {
			continue
		}
		if v := strings.TrimSpace(rec[col]); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// ReadList reads one accession per line. Blank lines and lines starting
// with '#' are ignored.
func ReadList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading accession list: %w", err)
	}
	return out, nil
}

// Open returns a reader for location, which is either a local path or an
// http(s) URL fetched with client. The caller closes the reader.
func Open(ctx context.Context, client *http.Client, location string) (io.ReadCloser, error) {
	if !isURL(location) {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", location, err)
		}
		return f, nil
	}

	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", location, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: HTTP %d", location, resp.StatusCode)
	}
	return resp.Body, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
