package ordinal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestString_Catalog tests the canonical rendering rules.
func TestString_Catalog(t *testing.T) {
	w := Omega()

	wp1, err := FromTerms([]Term{term(t, One(), 1), term(t, Zero(), 1)})
	require.NoError(t, err)
	wSqFive, err := FromTerms([]Term{term(t, mustFin(t, 2), 5)})
	require.NoError(t, err)
	wW, err := FromTerms([]Term{term(t, w, 1)})
	require.NoError(t, err)
	wWp1, err := FromTerms([]Term{term(t, wp1, 2)})
	require.NoError(t, err)
	wWW, err := FromTerms([]Term{term(t, wW, 1)})
	require.NoError(t, err)

	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Zero(), "0"},
		{One(), "1"},
		{mustFin(t, 42), "42"},
		{w, "w"},
		{wp1, "w+1"},
		{wSqFive, "w^2*5"},
		{wW, "w^w"},
		{wWp1, "w^(w+1)*2"},
		{wWW, "w^(w^w)"},
		{Epsilon0{}, "e_0"},
		{Tower{Height: 4}, "w^^4"},
	} {
		assert.Equal(t, tc.want, tc.v.String())
	}
}

// TestString_IsCanonical verifies equal values render identically, so the
// string can key caches.
func TestString_IsCanonical(t *testing.T) {
	a, err := FromTerms([]Term{term(t, Zero(), 2), term(t, One(), 3)})
	require.NoError(t, err)
	b, err := FromTerms([]Term{term(t, One(), 1), term(t, One(), 2), term(t, Zero(), 2)})
	require.NoError(t, err)

	assert.Equal(t, 0, CompareCNF(a, b))
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "w*3+2", a.String())
}
