package message

import (
	"testing"
	"time"

	"github.com/c360/signalkit/typetag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pingTag = typetag.NewSub("Ping", RootTag)

type pingMsg struct {
	Base
	count int
}

func (m *pingMsg) Tag() *typetag.Tag {
	return pingTag
}

func TestNewBaseDefaults(t *testing.T) {
	before := time.Now()
	b := NewBase()
	after := time.Now()

	assert.NotEmpty(t, b.ID())
	assert.Empty(t, b.Source())
	assert.False(t, b.CreatedAt().Before(before))
	assert.False(t, b.CreatedAt().After(after))
}

func TestNewBaseOptions(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	b := NewBase(WithTime(ts), WithSource("ping"))

	assert.Equal(t, ts, b.CreatedAt())
	assert.Equal(t, "ping", b.Source())
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b := NewBase()
		id := b.ID()
		require.False(t, seen[id], "duplicate message ID %s", id)
		seen[id] = true
	}
}

func TestMostDerivedTagWins(t *testing.T) {
	msg := &pingMsg{Base: NewBase(), count: 1}

	// Through the interface the embedding type's Tag method is the one
	// that answers, not Base's.
	var m Message = msg
	assert.Same(t, pingTag, m.Tag())
	assert.True(t, RootTag.IsAssignableFrom(m.Tag()))
}

func TestBaseAloneReportsRootTag(t *testing.T) {
	b := NewBase()
	assert.Same(t, RootTag, b.Tag())
}
