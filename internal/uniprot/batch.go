// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/gene-mapper/pkg/types"
)

// DefaultBatchSize is the number of accessions per request when none is
// configured. It keeps request URLs well under common server limits.
const DefaultBatchSize = 100

// Requester issues one accessions request. *Client implements it.
type Requester interface {
	RequestGenes(ctx context.Context, accessions []string) (QueryResult, error)
}

// Batcher splits accession lists into chunks, requests and parses each chunk
// in turn, and merges the chunk lookups.
type Batcher struct {
	Requester Requester
	BatchSize int
	Log       zerolog.Logger
}

// NewBatcher returns a Batcher over r using cfg.BatchSize, or
// DefaultBatchSize when it is not positive.
func NewBatcher(r Requester, cfg types.LookupConfig, log zerolog.Logger) *Batcher {
	size := cfg.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &Batcher{Requester: r, BatchSize: size, Log: log}
}

// Lookup resolves accessions chunk by chunk. A chunk whose request or parse
// fails contributes nothing and is listed in LookupResult.Failed with its
// accessions; the remaining chunks still run. Lookup returns an error only
// for empty input, context cancellation, or when every chunk failed.
func (b *Batcher) Lookup(ctx context.Context, accessions []string) (types.LookupResult, error) {
	res := types.LookupResult{
		Lookup:    types.NewGeneLookup(),
		Requested: len(accessions),
	}
	if len(accessions) == 0 {
		return res, ErrNoAccessions
	}

	chunks := Chunk(accessions, b.BatchSize)
	res.Chunks = len(chunks)

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		lookup, unmapped, err := MapGenes(ctx, b.Requester, chunk)
		if err != nil {
			b.Log.Warn().Err(err).Int("chunk", i).Int("accessions", len(chunk)).Msg("chunk failed")
			res.Failed = append(res.Failed, types.ChunkFailure{Index: i, Accessions: chunk, Err: err})
			continue
		}

		b.Log.Debug().
			Int("chunk", i).
			Int("returned", lookup.Len()).
			Int("unmapped", unmapped).
			Msg("chunk resolved")
		res.Lookup.Merge(lookup)
		res.Unmapped += unmapped
	}

	res.Unreturned = unreturned(accessions, res)

	if len(res.Failed) == len(chunks) {
		return res, fmt.Errorf("all %d chunk(s) failed: %w", len(chunks), res.Failed[0].Err)
	}
	return res, nil
}

// Chunk splits accessions in order into slices of at most size elements.
// A non-positive size returns a single chunk.
func Chunk(accessions []string, size int) [][]string {
	if len(accessions) == 0 {
		return nil
	}
	if size <= 0 || size >= len(accessions) {
		return [][]string{accessions}
	}
	chunks := make([][]string, 0, (len(accessions)+size-1)/size)
	for start := 0; start < len(accessions); start += size {
		end := min(start+size, len(accessions))
		chunks = append(chunks, accessions[start:end:end])
	}
	return chunks
}

// unreturned lists requested accessions, deduplicated in input order, that
// are neither keys of the merged lookup nor part of a failed chunk.
func unreturned(accessions []string, res types.LookupResult) []string {
	failed := make(map[string]bool)
	for _, f := range res.Failed {
		for _, acc := range f.Accessions {
			failed[acc] = true
		}
	}

	seen := make(map[string]bool)
	var out []string
	for _, acc := range accessions {
		if seen[acc] || failed[acc] || res.Lookup.Has(acc) {
			continue
		}
		seen[acc] = true
		out = append(out, acc)
	}
	return out
}
