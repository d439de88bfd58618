package wire

import (
	"github.com/c360/signalkit/message"
	"github.com/c360/signalkit/metric"
)

// entry is one pending delivery: the shared message and the link it
// travels through. A nil link is legal (the entry is consumed and
// discarded without dispatch).
type entry struct {
	msg  message.Message
	link *Link
}

// Queue is the deferred delivery queue: a process-wide FIFO of pending
// (message, link) entries, drained by explicit ProcessNext calls.
//
// Entries are appended by Signal.Emit and consumed in insertion order.
// The queue holds the only reference the wiring layer keeps on a message;
// once an entry is delivered or purged that reference is released.
type Queue struct {
	entries []entry
	notify  func()
	metrics *metric.Metrics
}

func newQueue(metrics *metric.Metrics) *Queue {
	return &Queue{metrics: metrics}
}

// Empty reports whether no entries are pending.
func (q *Queue) Empty() bool {
	return len(q.entries) == 0
}

// Len returns the number of pending entries.
func (q *Queue) Len() int {
	return len(q.entries)
}

// SetNotifier installs a callback invoked synchronously after every
// enqueue, replacing any previous notifier; nil clears it. The notifier is
// meant to wake an external event loop and must not block or recurse into
// ProcessNext.
func (q *Queue) SetNotifier(fn func()) {
	q.notify = fn
}

// enqueue appends an entry at the tail and fires the notifier.
func (q *Queue) enqueue(msg message.Message, link *Link) {
	q.entries = append(q.entries, entry{msg: msg, link: link})
	q.metrics.RecordEnqueued()
	q.metrics.RecordQueueDepth(len(q.entries))
	if q.notify != nil {
		q.notify()
	}
}

// ProcessNext removes the oldest entry and, if its link is non-nil,
// invokes the link's dispatch with the message. It reports whether the
// queue is non-empty after the call, so a driver loop is:
//
//	for q.ProcessNext() {
//	}
//
// Calling ProcessNext on an empty queue is safe and returns false.
func (q *Queue) ProcessNext() bool {
	if len(q.entries) == 0 {
		return false
	}
	e := q.dequeue()
	if e.link != nil {
		e.link.forward(e.msg)
	}
	return len(q.entries) > 0
}

// dequeue removes and returns the head entry. Calling it on an empty
// queue is a programmer error and panics; ProcessNext checks emptiness
// first and is the only caller.
func (q *Queue) dequeue() entry {
	if len(q.entries) == 0 {
		panic("wire: dequeue called on empty message queue")
	}
	e := q.entries[0]
	q.entries[0] = entry{} // release the message reference
	q.entries = q.entries[1:]
	if len(q.entries) == 0 {
		q.entries = nil
	}
	q.metrics.RecordQueueDepth(len(q.entries))
	return e
}

// purge removes every pending entry referencing the given link. Link
// teardown calls it exactly once, before unregistering from the
// endpoints, so no entry can ever dispatch through a dead link.
func (q *Queue) purge(link *Link) {
	kept := q.entries[:0]
	purged := 0
	for _, e := range q.entries {
		if e.link == link {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	// Zero the tail so purged entries drop their message references.
	for i := len(kept); i < len(q.entries); i++ {
		q.entries[i] = entry{}
	}
	q.entries = kept
	if len(q.entries) == 0 {
		q.entries = nil
	}
	q.metrics.RecordPurged(purged)
	q.metrics.RecordQueueDepth(len(q.entries))
}
