package wire

import (
	"testing"

	"github.com/c360/signalkit/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFOAcrossSignals(t *testing.T) {
	hub := New()
	rec := &recorder{}
	slot := hub.NewSlot(eventTag, rec.handler)
	sigA := hub.NewSignal(eventTag)
	sigB := hub.NewSignal(eventTag)
	require.True(t, hub.Connect(sigA, slot))
	require.True(t, hub.Connect(sigB, slot))

	sigA.Emit(newTestMsg(eventTag, 1))
	sigB.Emit(newTestMsg(eventTag, 2))
	sigA.Emit(newTestMsg(eventTag, 3))

	hub.Drain()
	assert.Equal(t, []int{1, 2, 3}, rec.seqs(), "delivery follows enqueue order")
}

func TestProcessNextReturnValue(t *testing.T) {
	hub := New()
	rec := &recorder{}
	sig := hub.NewSignal(eventTag)
	require.True(t, hub.Connect(sig, hub.NewSlot(eventTag, rec.handler)))

	assert.False(t, hub.ProcessNext(), "empty queue is safe and reports empty")

	sig.Emit(newTestMsg(eventTag, 1))
	sig.Emit(newTestMsg(eventTag, 2))

	assert.True(t, hub.ProcessNext(), "one entry remains after the call")
	assert.False(t, hub.ProcessNext(), "queue empty after the call")
	assert.Len(t, rec.msgs, 2, "both entries were delivered")
	assert.False(t, hub.ProcessNext())
}

func TestDequeuePanicsOnEmptyQueue(t *testing.T) {
	hub := New()
	assert.Panics(t, func() {
		hub.Queue().dequeue()
	})
}

func TestNotifierFiresPerEnqueue(t *testing.T) {
	hub := New()
	var wakeups int
	hub.SetNotifier(func() { wakeups++ })

	rec := &recorder{}
	sig := hub.NewSignal(eventTag)
	require.True(t, hub.Connect(sig, hub.NewSlot(eventTag, rec.handler)))
	require.True(t, hub.Connect(sig, hub.NewSlot(eventTag, rec.handler)))

	sig.Emit(newTestMsg(eventTag, 1))
	assert.Equal(t, 2, wakeups, "one wakeup per enqueued entry")

	hub.SetNotifier(nil)
	sig.Emit(newTestMsg(eventTag, 2))
	assert.Equal(t, 2, wakeups, "cleared notifier stays silent")
}

func TestLinkClosePurgesPendingEntries(t *testing.T) {
	hub := New()
	kept := &recorder{}
	doomed := &recorder{}
	sig := hub.NewSignal(eventTag)
	keptSlot := hub.NewSlot(eventTag, kept.handler)
	doomedSlot := hub.NewSlot(eventTag, doomed.handler)
	require.True(t, hub.Connect(sig, keptSlot))
	require.True(t, hub.Connect(sig, doomedSlot))

	sig.Emit(newTestMsg(eventTag, 1))
	sig.Emit(newTestMsg(eventTag, 2))
	require.Equal(t, 4, hub.Queue().Len())

	link := sig.LinkTo(doomedSlot)
	require.NotNil(t, link)
	link.Close()
	assert.Equal(t, 2, hub.Queue().Len(), "doomed link's entries are gone")

	hub.Drain()
	assert.Equal(t, []int{1, 2}, kept.seqs())
	assert.Empty(t, doomed.msgs, "cancelled deliveries never execute")
}

func TestLinkCloseIsIdempotent(t *testing.T) {
	hub := New()
	rec := &recorder{}
	sig := hub.NewSignal(eventTag)
	slot := hub.NewSlot(eventTag, rec.handler)
	require.True(t, hub.Connect(sig, slot))

	link := sig.LinkTo(slot)
	link.Close()
	assert.NotPanics(t, func() { link.Close() })
	assert.True(t, link.Closed())
}

func TestCloseLinkFromWithinHandler(t *testing.T) {
	hub := New()
	var calls int
	sig := hub.NewSignal(eventTag)
	slot := hub.NewSlot(eventTag, func(_ message.Message, link *Link) {
		calls++
		link.Close()
	})
	require.True(t, hub.Connect(sig, slot))

	sig.Emit(newTestMsg(eventTag, 1))
	sig.Emit(newTestMsg(eventTag, 2))

	hub.Drain()
	assert.Equal(t, 1, calls, "first delivery severs the link and purges the second")
	assert.False(t, hub.IsConnected(sig, slot))
}

func TestHandlerEmitsDuringDrain(t *testing.T) {
	hub := New()
	rec := &recorder{}
	chain := hub.NewSignal(eventTag)
	require.True(t, hub.Connect(chain, hub.NewSlot(eventTag, rec.handler)))

	sig := hub.NewSignal(eventTag)
	relay := hub.NewSlot(eventTag, func(msg message.Message, _ *Link) {
		chain.Emit(msg)
	})
	require.True(t, hub.Connect(sig, relay))

	sig.Emit(newTestMsg(eventTag, 1))
	hub.Drain()
	assert.Equal(t, []int{1}, rec.seqs(), "re-emitted entries are drained too")
}
