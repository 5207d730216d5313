package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemStore_FailureInjection verifies the injected failure switches.
func TestMemStore_FailureInjection(t *testing.T) {
	m := NewMemStore()
	require.NoError(t, m.Set("k", "v"))

	m.FailReads = true
	_, err := m.Get("k")
	assert.Error(t, err)
	m.FailReads = false

	m.FailWrites = true
	assert.Error(t, m.Set("k", "v2"))
	assert.Error(t, m.Delete("k"))
	m.FailWrites = false

	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got, "failed writes must not change state")
}
