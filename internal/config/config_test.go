package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_IsValid keeps the shipped defaults inside the schema.
func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

// TestParse_Overrides merges a partial file over the defaults.
func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte("operation_budget: 5000\nscales:\n  add: 2\n  mult: 1\n  exp: 2\n  tet: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.OperationBudget)
	assert.Equal(t, 2.0, cfg.Scales.Add)
	assert.Equal(t, Default().SimplifyBudget, cfg.SimplifyBudget)
	assert.Equal(t, Default().HistoryPath, cfg.HistoryPath)
}

// TestParse_Empty falls back to defaults.
func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestParse_UnknownKey rejects typos instead of ignoring them.
func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("operation_bugdet: 5000\n"))
	require.Error(t, err)
}

// TestParse_SchemaViolations surfaces schema errors as ValidationError.
func TestParse_SchemaViolations(t *testing.T) {
	for _, src := range []string{
		"operation_budget: -1\n",
		"scales:\n  add: 0\n  mult: 1\n  exp: 2\n  tet: 2\n",
		"inverse_depth: -5\n",
	} {
		_, err := Parse([]byte(src))
		require.Error(t, err, src)

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve, src)
	}
}

// TestLoad_RoundTrip reads a config from disk.
func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cantor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simplify_budget: 12\nhistory_path: \"\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.SimplifyBudget)
	assert.Equal(t, "", cfg.HistoryPath)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
