// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// ChunkFailure records one batch of accessions whose request or response
// parse failed. Accessions holds the exact chunk so the caller can resubmit it.
type ChunkFailure struct {
	Index      int      `json:"index" yaml:"index"`
	Accessions []string `json:"accessions" yaml:"accessions"`
	Err        error    `json:"-" yaml:"-"`
}

// Error describes the failed chunk.
func (f ChunkFailure) Error() string {
	return fmt.Sprintf("chunk %d (%s): %v", f.Index, summarizeAccessions(f.Accessions), f.Err)
}

// Unwrap returns the underlying request or parse error.
func (f ChunkFailure) Unwrap() error { return f.Err }

// LookupResult is the merged outcome of a batched accession lookup.
type LookupResult struct {
	// Lookup maps every returned primary accession to its gene name.
	Lookup *GeneLookup `json:"lookup" yaml:"lookup"`

	// Unmapped counts returned records that had no resolvable gene name.
	Unmapped int `json:"unmapped" yaml:"unmapped"`

	// Requested is the number of accessions submitted, duplicates included.
	Requested int `json:"requested" yaml:"requested"`

	// Chunks is the number of requests the accessions were split into.
	Chunks int `json:"chunks" yaml:"chunks"`

	// Failed lists chunks that produced no mappings because of an error.
	Failed []ChunkFailure `json:"failed,omitempty" yaml:"failed,omitempty"`

	// Unreturned lists requested accessions, outside failed chunks, that no
	// returned record carried as its primary accession.
	Unreturned []string `json:"unreturned,omitempty" yaml:"unreturned,omitempty"`
}

// summarizeAccessions renders the first few accessions of a chunk.
func summarizeAccessions(accs []string) string {
	const shown = 3
	if len(accs) <= shown {
		return strings.Join(accs, ",")
	}
	return fmt.Sprintf("%s,... %d total", strings.Join(accs[:shown], ","), len(accs))
}
