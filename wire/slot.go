package wire

import (
	"time"

	"github.com/c360/signalkit/message"
	"github.com/c360/signalkit/metric"
	"github.com/c360/signalkit/typetag"
)

// Handler is the function a slot is bound to. The link argument is the
// connection the message travelled through, or nil for a direct Invoke;
// handlers may use it to reach the emitting side or to close the
// connection from within delivery.
type Handler func(msg message.Message, link *Link)

// DispatchFunc is a bound dispatch variant of a slot, as selected and held
// by a Link.
type DispatchFunc func(msg message.Message, link *Link)

// Slot is a typed receiver bound at construction to exactly one handler.
// It holds the set of links fanning into it and offers two dispatch
// variants:
//
//   - checked: tests the message's tag against the accepted tag at
//     delivery time and silently drops incompatible messages
//   - unchecked: forwards unconditionally
//
// The drop on the checked path is not an error: a slot may be wired, via a
// forced-unchecked or over-broad signal, to message families it only
// partially understands.
type Slot struct {
	hub     *Hub
	tag     *typetag.Tag
	name    string
	handler Handler
	links   map[*Link]struct{}
}

// Tag returns the message type tag this slot accepts.
func (s *Slot) Tag() *typetag.Tag {
	return s.tag
}

// Invoke calls the handler directly, without a connection, through the
// checked path: an incompatible message is silently dropped.
func (s *Slot) Invoke(msg message.Message) {
	s.dispatchChecked(msg, nil)
}

// CheckedDispatch returns the dispatch variant that verifies type
// compatibility at delivery time.
func (s *Slot) CheckedDispatch() DispatchFunc {
	return s.dispatchChecked
}

// UncheckedDispatch returns the dispatch variant that forwards every
// message unconditionally. Use only when the emitting side guarantees
// compatibility; this is what the connect-time selection rule decides.
func (s *Slot) UncheckedDispatch() DispatchFunc {
	return s.dispatchUnchecked
}

// SetName registers the slot in the hub's slot directory, with the same
// rules as Signal.SetName. The slot namespace is separate from the signal
// namespace.
func (s *Slot) SetName(name string) {
	if s.name != "" {
		s.hub.directory.unregisterSlot(s.name, s)
		s.name = ""
	}
	if name != "" {
		s.name = name
		s.hub.directory.registerSlot(name, s)
	}
}

// Name returns the registered name, or "" if unregistered.
func (s *Slot) Name() string {
	return s.name
}

// Links returns the connected links, in no particular order.
func (s *Slot) Links() []*Link {
	links := make([]*Link, 0, len(s.links))
	for link := range s.links {
		links = append(links, link)
	}
	return links
}

// Close destroys every link fanning into this slot and unregisters its
// name. The slot must not be used afterwards.
func (s *Slot) Close() {
	for len(s.links) > 0 {
		for link := range s.links {
			link.Close()
			break
		}
	}
	s.SetName("")
}

func (s *Slot) dispatchChecked(msg message.Message, link *Link) {
	if msg == nil {
		return
	}
	if !s.tag.IsAssignableFrom(msg.Tag()) {
		s.hub.metrics.RecordDropped()
		return
	}
	s.deliver(msg, link, metric.PathChecked)
}

func (s *Slot) dispatchUnchecked(msg message.Message, link *Link) {
	if msg == nil {
		return
	}
	s.deliver(msg, link, metric.PathUnchecked)
}

func (s *Slot) deliver(msg message.Message, link *Link, path string) {
	start := time.Now()
	s.handler(msg, link)
	s.hub.metrics.RecordDelivered(path, time.Since(start))
}

// attach registers a link; called only by Hub.Connect.
func (s *Slot) attach(link *Link) {
	s.links[link] = struct{}{}
}

// detach removes a link; called only by Link.Close.
func (s *Slot) detach(link *Link) {
	delete(s.links, link)
}
