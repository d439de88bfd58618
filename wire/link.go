package wire

import (
	"github.com/c360/signalkit/message"
	"github.com/google/uuid"
)

// Link is the connection object binding exactly one signal to exactly one
// slot. It is created exclusively by Hub.Connect, which also decides, once,
// which of the slot's two dispatch variants the link forwards through.
//
// A link has two states: connected (from construction) and destroyed
// (after Close, terminal). A destroyed link cannot be reconnected; create
// a new one.
type Link struct {
	id        string
	signal    *Signal
	slot      *Slot
	dispatch  DispatchFunc
	unchecked bool
	closed    bool
}

// selectDispatch applies the connect-time strategy rule: unchecked when
// forced, or when the signal's declared tag is found walking up the slot's
// ancestor chain (the slot accepts the signal's type or a descendant of
// it). Everything else gets the checked path.
//
// This is the historical rule, preserved literally; do not invert it
// without product guidance. The truth table is pinned in link_test.go.
func selectDispatch(sig *Signal, slot *Slot, forceUnchecked bool) (DispatchFunc, bool) {
	if forceUnchecked || sig.tag.IsAssignableFrom(slot.tag) {
		return slot.UncheckedDispatch(), true
	}
	return slot.CheckedDispatch(), false
}

func newLink(sig *Signal, slot *Slot, forceUnchecked bool) *Link {
	l := &Link{
		id:     uuid.New().String(),
		signal: sig,
		slot:   slot,
	}
	l.dispatch, l.unchecked = selectDispatch(sig, slot, forceUnchecked)
	return l
}

// ID returns the unique link identifier.
func (l *Link) ID() string {
	return l.id
}

// Signal returns the emitting endpoint of the connection.
func (l *Link) Signal() *Signal {
	return l.signal
}

// Slot returns the receiving endpoint of the connection.
func (l *Link) Slot() *Slot {
	return l.slot
}

// Closed reports whether the link has been destroyed.
func (l *Link) Closed() bool {
	return l.closed
}

// Close destroys the link: every pending queue entry referencing it is
// purged (its deliveries are cancelled, never executed), then the link
// unregisters from the signal's link map and the slot's link set, in that
// order. Closing an already closed link is a no-op.
//
// This is the only sanctioned way to sever a single connection; closing a
// link before its queued entries are processed is the supported
// cancellation mechanism.
func (l *Link) Close() {
	if l.closed {
		return
	}
	l.closed = true

	// Purge first: a queue entry must never dispatch through a link that
	// has started tearing down.
	l.signal.hub.queue.purge(l)
	l.signal.detach(l.slot)
	l.slot.detach(l)
	l.signal.hub.metrics.RecordLinkClosed()
}

// forward hands a dequeued message to the slot through the dispatch
// variant chosen at connect time; called only by Queue.ProcessNext.
func (l *Link) forward(msg message.Message) {
	if l.closed {
		return
	}
	l.dispatch(msg, l)
}
