// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import "github.com/pdiddy/gene-mapper/pkg/types"

const (
	resultsKey          = "results"
	primaryAccessionKey = "primaryAccession"
	genesKey            = "genes"
	geneNameKey         = "geneName"
	valueKey            = "value"
)

// ParseGenes converts a QueryResult into an ordered accession-to-gene
// lookup and the number of records that had no gene name.
//
// An empty QueryResult yields an empty lookup. Otherwise the records under
// "results" are read in order: primaryAccession is required and its absence
// aborts the parse with a *SchemaError, returning no lookup. The gene name
// is genes[0].geneName.value; when any link is missing or mistyped the
// accession maps to nil and counts as unmapped. A repeated primaryAccession
// replaces the earlier mapping.
func ParseGenes(qr QueryResult) (*types.GeneLookup, int, error) {
	lookup := types.NewGeneLookup()
	if len(qr) == 0 {
		return lookup, 0, nil
	}

	raw, ok := qr[resultsKey]
	if !ok {
		return nil, 0, &SchemaError{Entry: -1, Key: resultsKey, Err: ErrKeyMissing}
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, 0, &SchemaError{Entry: -1, Key: resultsKey, Err: ErrWrongType}
	}

	unmapped := 0
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return nil, 0, &SchemaError{Entry: i, Err: ErrWrongType}
		}

		accRaw, ok := entry[primaryAccessionKey]
		if !ok {
			return nil, 0, &SchemaError{Entry: i, Key: primaryAccessionKey, Err: ErrKeyMissing}
		}
		acc, ok := accRaw.(string)
		if !ok {
			return nil, 0, &SchemaError{Entry: i, Key: primaryAccessionKey, Err: ErrWrongType}
		}

		gene := geneName(entry)
		if gene == nil {
			unmapped++
		}
		lookup.Set(acc, gene)
	}
	return lookup, unmapped, nil
}

// geneName follows genes[0].geneName.value, returning nil when the chain
// breaks anywhere.
func geneName(entry map[string]any) *string {
	genes, ok := entry[genesKey].([]any)
	if !ok || len(genes) == 0 {
		return nil
	}
	first, ok := genes[0].(map[string]any)
	if !ok {
		return nil
	}
	name, ok := first[geneNameKey].(map[string]any)
	if !ok {
		return nil
	}
	value, ok := name[valueKey].(string)
	if !ok {
		return nil
	}
	return &value
}
