// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for gene-mapper: the ordered
// accession-to-gene mapping, batched lookup results, and configuration.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// GeneName returns a pointer to name, for building mappings with a
// known gene.
func GeneName(name string) *string {
	return &name
}

// GeneMapping pairs a UniProt accession with its gene name. Gene is nil
// when the record carried no resolvable gene name.
type GeneMapping struct {
	Accession string  `json:"accession" yaml:"accession"`
	Gene      *string `json:"gene" yaml:"gene"`
}

// HasGene reports whether a gene name was found for the accession.
func (m GeneMapping) HasGene() bool { return m.Gene != nil }

// GeneOr returns the gene name, or fallback when it is absent.
func (m GeneMapping) GeneOr(fallback string) string {
	if m.Gene == nil {
		return fallback
	}
	return *m.Gene
}

// GeneLookup is an insertion-ordered mapping from accession to gene name.
// Setting an accession that is already present replaces its gene and keeps
// its original position (last write wins). The zero value is ready to use.
type GeneLookup struct {
	entries []GeneMapping
	index   map[string]int
}

// NewGeneLookup returns an empty lookup.
func NewGeneLookup() *GeneLookup {
	return &GeneLookup{index: make(map[string]int)}
}

// Set maps accession to gene. A nil gene records the absence marker.
func (l *GeneLookup) Set(accession string, gene *string) {
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if i, ok := l.index[accession]; ok {
		l.entries[i].Gene = gene
		return
	}
	l.index[accession] = len(l.entries)
	l.entries = append(l.entries, GeneMapping{Accession: accession, Gene: gene})
}

// Get returns the gene for accession. ok is false when the accession is not
// in the lookup; gene is nil when it is present without a gene name.
func (l *GeneLookup) Get(accession string) (gene *string, ok bool) {
	if l == nil {
		return nil, false
	}
	i, ok := l.index[accession]
	if !ok {
		return nil, false
	}
	return l.entries[i].Gene, true
}

// Has reports whether accession is a key of the lookup.
func (l *GeneLookup) Has(accession string) bool {
	_, ok := l.Get(accession)
	return ok
}

// Len returns the number of accessions in the lookup.
func (l *GeneLookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns a copy of the mappings in insertion order.
func (l *GeneLookup) Entries() []GeneMapping {
	if l == nil {
		return nil
	}
	out := make([]GeneMapping, len(l.entries))
	copy(out, l.entries)
	return out
}

// Merge copies every mapping of other into l, in other's order.
func (l *GeneLookup) Merge(other *GeneLookup) {
	for _, m := range other.Entries() {
		l.Set(m.Accession, m.Gene)
	}
}

// Map returns the lookup as a plain Go map. Order is lost.
func (l *GeneLookup) Map() map[string]*string {
	out := make(map[string]*string, l.Len())
	for _, m := range l.Entries() {
		out[m.Accession] = m.Gene
	}
	return out
}

// MarshalJSON encodes the lookup as a JSON object in insertion order, with
// null for accessions without a gene name.
func (l *GeneLookup) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range l.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Accession)
		if err != nil {
			return nil, fmt.Errorf("encoding accession %q: %w", m.Accession, err)
		}
		val, err := json.Marshal(m.Gene)
		if err != nil {
			return nil, fmt.Errorf("encoding gene for %q: %w", m.Accession, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the lookup as an ordered YAML mapping, with null for
// accessions without a gene name.
func (l *GeneLookup) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, m := range l.Entries() {
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if m.Gene != nil {
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: *m.Gene}
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Accession},
			val,
		)
	}
	return node, nil
}
