// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestGeneLookupSetKeepsInsertionOrder(t *testing.T) {
	l := NewGeneLookup()
	l.Set("P12345", GeneName("TP53"))
	l.Set("Q99999", nil)
	l.Set("P04637", GeneName("TP53"))

	want := []GeneMapping{
		{Accession: "P12345", Gene: GeneName("TP53")},
		{Accession: "Q99999"},
		{Accession: "P04637", Gene: GeneName("TP53")},
	}
	if diff := cmp.Diff(want, l.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneLookupLastWriteWins(t *testing.T) {
	l := NewGeneLookup()
	l.Set("P12345", GeneName("OLD"))
	l.Set("Q99999", GeneName("BRCA1"))
	l.Set("P12345", nil)

	require.Equal(t, 2, l.Len())
	gene, ok := l.Get("P12345")
	assert.True(t, ok)
	assert.Nil(t, gene)
	assert.Equal(t, "P12345", l.Entries()[0].Accession, "overwrite keeps first position")
}

func TestGeneLookupZeroValueAndNil(t *testing.T) {
	var l GeneLookup
	l.Set("A0A000", GeneName("X"))
	assert.True(t, l.Has("A0A000"))

	var nilLookup *GeneLookup
	assert.Equal(t, 0, nilLookup.Len())
	assert.Nil(t, nilLookup.Entries())
	_, ok := nilLookup.Get("A0A000")
	assert.False(t, ok)
}

func TestGeneLookupMerge(t *testing.T) {
	a := NewGeneLookup()
	a.Set("P1", GeneName("A"))
	a.Set("P2", nil)

	b := NewGeneLookup()
	b.Set("P2", GeneName("B"))
	b.Set("P3", GeneName("C"))

	a.Merge(b)

	assert.Equal(t, map[string]*string{
		"P1": GeneName("A"),
		"P2": GeneName("B"),
		"P3": GeneName("C"),
	}, a.Map())
	assert.Equal(t, "P3", a.Entries()[2].Accession)
}

func TestGeneLookupMarshalJSON(t *testing.T) {
	l := NewGeneLookup()
	l.Set("Q99999", nil)
	l.Set("P12345", GeneName("TP53"))

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, `{"Q99999":null,"P12345":"TP53"}`, string(data))

	empty, err := json.Marshal(NewGeneLookup())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestGeneLookupMarshalYAML(t *testing.T) {
	l := NewGeneLookup()
	l.Set("Q99999", nil)
	l.Set("P12345", GeneName("TP53"))
	l.Set("P00001", GeneName("null"))

	data, err := yaml.Marshal(l)
	require.NoError(t, err)

	var back map[string]*string
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Nil(t, back["Q99999"])
	require.NotNil(t, back["P00001"])
	assert.Equal(t, "null", *back["P00001"], "string gene named null stays a string")
	assert.Regexp(t, `(?s)^Q99999: null\nP12345: TP53\n`, string(data))
}

func TestGeneMappingGeneOr(t *testing.T) {
	assert.Equal(t, "-", GeneMapping{Accession: "P1"}.GeneOr("-"))
	assert.Equal(t, "TP53", GeneMapping{Accession: "P1", Gene: GeneName("TP53")}.GeneOr("-"))
	assert.False(t, GeneMapping{}.HasGene())
}

func TestChunkFailureError(t *testing.T) {
	cause := errors.New("boom")
	f := ChunkFailure{Index: 2, Accessions: []string{"P1", "P2", "P3", "P4"}, Err: cause}

	assert.Equal(t, "chunk 2 (P1,P2,P3,... 4 total): boom", f.Error())
	assert.ErrorIs(t, f, cause)
}
