package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()

	value, found, err := m.Get(context.Background(), "formSubmissions")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestMemorySetOverwrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "formSubmissions", "[]"))
	require.NoError(t, m.Set(ctx, "formSubmissions", `[{"id":1}]`))

	value, found, err := m.Get(ctx, "formSubmissions")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, value)
	assert.NoError(t, m.Close())
}
