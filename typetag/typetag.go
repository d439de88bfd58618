// Package typetag implements a named type hierarchy for runtime "is-a"
// checks. Tags form a forest: each tag has a name and at most one parent,
// roots have none. Compatibility checks compare names along the parent
// chain rather than tag identity, so two independently constructed tags
// with equal name chains are interchangeable. This enables cross-module
// type matching at the cost of accidental collisions if unrelated
// hierarchies reuse a name.
//
// Tags are immutable after construction and are expected to live for the
// whole process, one per concrete message or endpoint class:
//
//	var (
//		baseTag = typetag.New("Telemetry")
//		gpsTag  = typetag.NewSub("GPSFix", baseTag)
//	)
package typetag

import "strings"

// Tag is a single node in a type hierarchy. The zero value is not usable;
// construct tags with New or NewSub.
type Tag struct {
	name   string
	parent *Tag
}

// New creates a root tag with the given name.
func New(name string) *Tag {
	return &Tag{name: name}
}

// NewSub creates a tag with the given name and parent. A nil parent is
// equivalent to New.
func NewSub(name string, parent *Tag) *Tag {
	return &Tag{name: name, parent: parent}
}

// Name returns the tag's own name.
func (t *Tag) Name() string {
	return t.name
}

// Parent returns the parent tag, or nil for a root.
func (t *Tag) Parent() *Tag {
	return t.parent
}

// IsAssignableFrom reports whether other is this tag or a descendant of it.
// It walks other's parent chain comparing names against t's name and
// returns true on the first match. Comparison is by name, not identity.
// A nil other is assignable from nothing.
func (t *Tag) IsAssignableFrom(other *Tag) bool {
	for ; other != nil; other = other.parent {
		if other.name == t.name {
			return true
		}
	}
	return false
}

// Key returns the dotted root-to-leaf notation for this tag,
// e.g. "Message.Telemetry.GPSFix".
func (t *Tag) Key() string {
	if t.parent == nil {
		return t.name
	}
	var parts []string
	for cur := t; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	// parts is leaf-to-root; reverse in place.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// String returns the same as Key().
func (t *Tag) String() string {
	return t.Key()
}

// Depth returns the number of ancestors above this tag. Roots have depth 0.
func (t *Tag) Depth() int {
	depth := 0
	for cur := t.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}
