//go:build unit
// +build unit

package qubo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemVariables(t *testing.T) {
	p := Problem{
		{A: "b", B: "a"}: 1,
		{A: "c", B: "c"}: 1,
		{A: "a", B: "c"}: 1,
	}
	assert.Equal(t, []string{"a", "b", "c"}, p.Variables())
}

func TestProblemTerms(t *testing.T) {
	p := Problem{
		{A: "y", B: "y"}: -1,
		{A: "x", B: "y"}: 2,
		{A: "x", B: "x"}: -1,
	}
	assert.Equal(t, []Term{
		{Vars: []string{"x", "x"}, Value: -1},
		{Vars: []string{"x", "y"}, Value: 2},
		{Vars: []string{"y", "y"}, Value: -1},
	}, p.Terms())
}

func TestDecodeTerms(t *testing.T) {
	tests := []struct {
		name    string
		blob    string
		format  string
		want    []Term
		wantErr bool
	}{
		{
			name:   "json",
			blob:   `[{"vars":["x","x"],"value":-1},{"vars":["x","y"],"value":2}]`,
			format: "json",
			want: []Term{
				{Vars: []string{"x", "x"}, Value: -1},
				{Vars: []string{"x", "y"}, Value: 2},
			},
		},
		{
			name: "toml",
			blob: heredoc.Doc(`
				[[term]]
				vars = ["x", "x"]
				value = -1

				[[term]]
				vars = ["x", "y"]
				value = 2.5
			`),
			format: "TOML",
			want: []Term{
				{Vars: []string{"x", "x"}, Value: -1},
				{Vars: []string{"x", "y"}, Value: 2.5},
			},
		},
		{
			name:    "broken json",
			blob:    `[{"vars":`,
			format:  "json",
			wantErr: true,
		},
		{
			name:    "unknown format",
			blob:    ``,
			format:  "yaml",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeTerms([]byte(tt.blob), tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadProblem(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "problem.json")
	require.NoError(t, os.WriteFile(good, []byte(`[{"vars":["a","b"],"value":3}]`), 0644))
	p, err := LoadProblem(good)
	require.NoError(t, err)
	assert.Equal(t, Problem{{A: "a", B: "b"}: 3}, p)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[term]]\nvars = [\"a\"]\nvalue = 1\n"), 0644))
	_, err = LoadProblem(bad)
	assert.ErrorIs(t, err, ErrInvalidKeyShape)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`[]`), 0644))
	_, err = LoadProblem(empty)
	assert.ErrorIs(t, err, ErrEmptyProblem)

	_, err = LoadProblem(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
