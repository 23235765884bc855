package budget

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMeter_WithinLimit tests normal operation within the budget.
func TestMeter_WithinLimit(t *testing.T) {
	m := NewMeter(10)

	for i := 0; i < 10; i++ {
		err := m.Consume(1)
		assert.NoError(t, err, "operation %d should be allowed", i+1)
	}

	assert.Equal(t, 10, m.Used())
	assert.Equal(t, 10, m.Limit())
}

// TestMeter_ExceedsLimit tests the budget-exceeded error.
func TestMeter_ExceedsLimit(t *testing.T) {
	m := NewMeter(5)

	for i := 0; i < 5; i++ {
		require.NoError(t, m.Consume(1))
	}

	err := m.Consume(1)
	require.Error(t, err)

	var be *ExceededError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 5, be.Limit)
	assert.Equal(t, 6, be.Used)
	assert.True(t, IsExceeded(err))
}

// TestMeter_BulkConsume tests charging several units at once.
func TestMeter_BulkConsume(t *testing.T) {
	m := NewMeter(10)

	require.NoError(t, m.Consume(7))
	assert.Equal(t, 7, m.Used())

	err := m.Consume(4)
	require.Error(t, err)
	assert.Equal(t, 11, m.Used())
}

// TestMeter_DefaultLimit tests the fallback for non-positive limits.
func TestMeter_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NewMeter(0).Limit())
	assert.Equal(t, DefaultLimit, NewMeter(-3).Limit())
}

// TestIsExceeded_Wrapped verifies matching through error wrapping.
func TestIsExceeded_Wrapped(t *testing.T) {
	m := NewMeter(1)
	require.NoError(t, m.Consume(1))
	err := m.Consume(1)
	require.Error(t, err)

	wrapped := fmt.Errorf("evaluating expression: %w", err)
	assert.True(t, IsExceeded(wrapped))
	assert.False(t, IsExceeded(fmt.Errorf("unrelated")))
}
