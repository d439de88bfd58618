package wire

import (
	"slices"

	"github.com/c360/signalkit/message"
	"github.com/c360/signalkit/typetag"
)

// Signal is a typed emission point. One signal instance is statically
// bound to one message type tag, fixed at construction. It holds the set
// of links fanning out from it; emitting appends one queue entry per
// connected link.
//
// Signals are created through Hub.NewSignal and may be registered in the
// hub's directory under a qualified name for configuration-driven wiring.
type Signal struct {
	hub  *Hub
	tag  *typetag.Tag
	name string

	// links in creation order; bySlot indexes the same links for the
	// at-most-one-link-per-pair invariant.
	links  []*Link
	bySlot map[*Slot]*Link
}

// Tag returns the message type tag this signal emits. It never changes
// after construction.
func (s *Signal) Tag() *typetag.Tag {
	return s.tag
}

// Emit appends one queue entry per currently connected link, sharing the
// same message across the fan-out. Links receive entries in creation
// order; this order is part of the contract and tests depend on it.
// A signal with no links is a no-op.
//
// Emit snapshots the link set first, so links connected or destroyed by
// the queue notifier do not affect this emission.
func (s *Signal) Emit(msg message.Message) {
	if len(s.links) == 0 {
		return
	}
	for _, link := range slices.Clone(s.links) {
		s.hub.queue.enqueue(msg, link)
	}
}

// SetName registers the signal in the hub's signal directory under name,
// unregistering any previous name first. An empty name just unregisters.
// Registering a taken name overwrites the previous association.
func (s *Signal) SetName(name string) {
	if s.name != "" {
		s.hub.directory.unregisterSignal(s.name, s)
		s.name = ""
	}
	if name != "" {
		s.name = name
		s.hub.directory.registerSignal(name, s)
	}
}

// Name returns the registered name, or "" if unregistered.
func (s *Signal) Name() string {
	return s.name
}

// IsConnectedTo reports whether a link to the given slot exists.
func (s *Signal) IsConnectedTo(slot *Slot) bool {
	_, ok := s.bySlot[slot]
	return ok
}

// LinkTo returns the link to the given slot, or nil if not connected.
// The returned link may be closed by the caller to cancel the connection
// and purge its pending deliveries.
func (s *Signal) LinkTo(slot *Slot) *Link {
	return s.bySlot[slot]
}

// Links returns the connected links in creation order.
func (s *Signal) Links() []*Link {
	return slices.Clone(s.links)
}

// Close destroys every link fanning out from this signal and unregisters
// its name. The signal must not be used afterwards.
func (s *Signal) Close() {
	for len(s.links) > 0 {
		s.links[0].Close()
	}
	s.SetName("")
}

// attach registers a link; called only by Hub.Connect.
func (s *Signal) attach(slot *Slot, link *Link) {
	s.bySlot[slot] = link
	s.links = append(s.links, link)
}

// detach removes the link for the given slot; called only by Link.Close.
func (s *Signal) detach(slot *Slot) {
	link, ok := s.bySlot[slot]
	if !ok {
		return
	}
	delete(s.bySlot, slot)
	if i := slices.Index(s.links, link); i >= 0 {
		s.links = slices.Delete(s.links, i, i+1)
	}
}
