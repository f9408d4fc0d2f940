// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package accessions

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTSV = "Entry\tEntry Name\tProtein names\n" +
	"P04637\tP53_HUMAN\tCellular tumor antigen p53\n" +
	"P38398\tBRCA1_HUMAN\tBreast cancer type 1 susceptibility protein\n" +
	"\t\t\n" +
	"A0A024R161\tA0A024R161_HUMAN\tGuanine nucleotide-binding protein subunit gamma\n"

func TestReadTable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    TableOptions
		want    []string
		wantErr error
	}{
		{
			name:  "default Entry column",
			input: sampleTSV,
			want:  []string{"P04637", "P38398", "A0A024R161"},
		},
		{
			name:  "limit keeps first rows",
			input: sampleTSV,
			opts:  TableOptions{Limit: 1},
			want:  []string{"P04637"},
		},
		{
			name:  "limit counts blank rows",
			input: sampleTSV,
			opts:  TableOptions{Limit: 3},
			want:  []string{"P04637", "P38398"},
		},
		{
			name:  "named column",
			input: sampleTSV,
			opts:  TableOptions{Column: "Entry Name"},
			want:  []string{"P53_HUMAN", "BRCA1_HUMAN", "A0A024R161_HUMAN"},
		},
		{
			name:  "csv with quotes and BOM",
			input: "\ufeffAccession,Note\n\"P04637\",\"tumor, suppressor\"\n Q99999 ,x\n",
			opts:  TableOptions{Column: "Accession", Comma: ','},
			want:  []string{"P04637", "Q99999"},
		},
		{
			name:  "short rows skipped",
			input: "Id\tEntry\nx\n y\tP1\n",
			want:  []string{"P1"},
		},
		{
			name:    "missing column",
			input:   "Accession\tName\nP1\tX\n",
			wantErr: ErrColumnNotFound,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrColumnNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadTable(strings.NewReader(tt.input), tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadList(t *testing.T) {
	input := "# proteins of interest\nP04637\n\n  P38398  \n#Q00000\nP04637\n"

	got, err := ReadList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"P04637", "P38398", "P04637"}, got, "duplicates are kept")
}

func TestOpenLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example_uniprot.tsv")
	require.NoError(t, os.WriteFile(path, []byte(sampleTSV), 0o644))

	rc, err := Open(context.Background(), nil, path)
	require.NoError(t, err)
	defer rc.Close()

	got, err := ReadTable(rc, TableOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(context.Background(), nil, filepath.Join(t.TempDir(), "nope.tsv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/example_uniprot.tsv" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, sampleTSV)
	}))
	defer ts.Close()

	rc, err := Open(context.Background(), ts.Client(), ts.URL+"/example_uniprot.tsv")
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleTSV, string(data))

	_, err = Open(context.Background(), ts.Client(), ts.URL+"/missing.tsv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}
