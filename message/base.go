package message

import (
	"time"

	"github.com/c360/signalkit/typetag"
	"github.com/google/uuid"
)

// Base provides common message bookkeeping for concrete messages to embed:
// a unique instance ID, the originating component, and the creation time.
//
// Base itself reports RootTag; embedding types define their own Tag()
// method so the most-derived tag wins. A type that forgets to do so is
// treated as a plain untyped message, which the checked dispatch path
// accepts only on slots typed RootTag.
type Base struct {
	id        string
	source    string
	createdAt time.Time
}

// Option is a functional option for configuring Base construction.
type Option func(*Base)

// WithTime sets a specific creation timestamp instead of time.Now().
// Useful for historical data import or testing.
func WithTime(createdAt time.Time) Option {
	return func(b *Base) {
		b.createdAt = createdAt
	}
}

// WithSource records the identifier of the component creating the message.
func WithSource(source string) Option {
	return func(b *Base) {
		b.source = source
	}
}

// NewBase creates message bookkeeping with a fresh unique ID.
//
//	msg := &Ball{Base: message.NewBase(message.WithSource("ping"))}
func NewBase(opts ...Option) Base {
	b := Base{
		id:        uuid.New().String(),
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// ID returns the unique message instance identifier.
func (b *Base) ID() string {
	return b.id
}

// Source returns the identifier of the creating component, or "" if unset.
func (b *Base) Source() string {
	return b.source
}

// CreatedAt returns the message creation time.
func (b *Base) CreatedAt() time.Time {
	return b.createdAt
}

// Tag returns RootTag. Embedding types override this with their own tag.
func (b *Base) Tag() *typetag.Tag {
	return RootTag
}
