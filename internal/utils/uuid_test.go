package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID_IsUUIDv7(t *testing.T) {
	id := NewTraceID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNewTraceID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := NewTraceID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace id %s", id)
		seen[id] = struct{}{}
	}
}
