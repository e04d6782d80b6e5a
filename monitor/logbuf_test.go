package monitor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBufferLevelFiltering(t *testing.T) {
	b := NewLogBuffer(8, LevelWarn)
	b.Debugf("dropped")
	b.Infof("dropped too")
	b.Warnf("kept %d", 1)
	b.Errorf("kept %d", 2)

	entries := b.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0].Level)
	assert.Equal(t, "kept 1", entries[0].Message)
	assert.Equal(t, "error", entries[1].Level)
	assert.Equal(t, "kept 2", entries[1].Message)
}

func TestLogBufferWrapsAtCapacity(t *testing.T) {
	b := NewLogBuffer(3, LevelDebug)
	for i := 1; i <= 5; i++ {
		b.Infof("entry %d", i)
	}

	entries := b.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("entry %d", i+3), e.Message, "oldest entries are evicted first")
	}
}

func TestLogBufferEmptyAndPartial(t *testing.T) {
	b := NewLogBuffer(4, LevelDebug)
	assert.Empty(t, b.Entries())

	b.Infof("one")
	b.Infof("two")
	entries := b.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Message)
	assert.Equal(t, "two", entries[1].Message)
}
