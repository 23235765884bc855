package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// TestOpen_Idempotent reopens the same database without error.
func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

// TestAppendList round-trips records, newest first.
func TestAppendList(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	r1, err := NewRecord(KindEval, "w+w", "w*2", 4)
	require.NoError(t, err)
	r2, err := NewRecord(KindCompare, "w^w vs e_0", "-1", 2)
	require.NoError(t, err)
	r2.CreatedAt = r1.CreatedAt.Add(time.Second)

	require.NoError(t, s.Append(ctx, r1))
	require.NoError(t, s.Append(ctx, r2))

	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, r2.ID, got[0].ID)
	assert.Equal(t, r1.ID, got[1].ID)
	assert.Equal(t, "w*2", got[1].Output)
	assert.Equal(t, 4, got[1].StepsUsed)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))

	limited, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, r2.ID, limited[0].ID)
}

// TestAppend_Idempotent ignores duplicate IDs.
func TestAppend_Idempotent(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	rec, err := NewRecord(KindSimplify, "w^w+w*3", "w^w", 7)
	require.NoError(t, err)

	require.NoError(t, s.Append(ctx, rec))
	require.NoError(t, s.Append(ctx, rec))

	got, err := s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// TestContentHash is stable across IDs and timestamps, and normalizes
// its text to NFC first.
func TestContentHash(t *testing.T) {
	a, err := NewRecord(KindEval, "w+1", "w+1", 2)
	require.NoError(t, err)
	b, err := NewRecord(KindEval, "w+1", "w+1", 9)
	require.NoError(t, err)
	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.ID, b.ID)

	c, err := NewRecord(KindEval, "w*2", "w*2", 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash, c.Hash)

	// "é" composed vs decomposed normalizes to the same hash.
	d1, err := NewRecord(KindLocate, "café", "1", 1)
	require.NoError(t, err)
	d2, err := NewRecord(KindLocate, "café", "1", 1)
	require.NoError(t, err)
	assert.Equal(t, d1.Hash, d2.Hash)
	assert.Equal(t, d1.Input, d2.Input)
}
