package wire

import (
	"github.com/c360/signalkit/metric"
	"github.com/c360/signalkit/typetag"
)

// Hub owns one deferred delivery queue and one name directory, and is the
// factory for every signal, slot and link that uses them. Endpoints from
// different hubs cannot be connected.
//
// A Hub and everything created through it form one single-threaded
// confinement domain; see the package documentation for the concurrency
// contract.
type Hub struct {
	queue     *Queue
	directory *Directory
	metrics   *metric.Metrics
}

// Option configures a Hub at construction.
type Option func(*Hub)

// WithMetrics wires the hub's counters and gauges into the given metrics
// set. Without it the hub runs unmetered; all recording calls are nil-safe.
func WithMetrics(m *metric.Metrics) Option {
	return func(h *Hub) {
		h.metrics = m
	}
}

// WithNotifier installs the queue notifier at construction; equivalent to
// calling SetNotifier afterwards.
func WithNotifier(fn func()) Option {
	return func(h *Hub) {
		h.queue.SetNotifier(fn)
	}
}

// New creates an empty hub.
func New(opts ...Option) *Hub {
	h := &Hub{directory: newDirectory()}
	h.queue = newQueue(nil)
	for _, opt := range opts {
		opt(h)
	}
	h.queue.metrics = h.metrics
	return h
}

// Queue returns the hub's delivery queue.
func (h *Hub) Queue() *Queue {
	return h.queue
}

// Directory returns the hub's name directory.
func (h *Hub) Directory() *Directory {
	return h.directory
}

// ProcessNext delivers the oldest pending entry; see Queue.ProcessNext.
func (h *Hub) ProcessNext() bool {
	return h.queue.ProcessNext()
}

// Drain processes entries until the queue is empty, including entries
// enqueued by handlers during the drain.
func (h *Hub) Drain() {
	for h.queue.ProcessNext() {
	}
}

// SetNotifier installs the queue notifier; see Queue.SetNotifier.
func (h *Hub) SetNotifier(fn func()) {
	h.queue.SetNotifier(fn)
}

// NewSignal creates a signal emitting messages of the given tag.
func (h *Hub) NewSignal(tag *typetag.Tag) *Signal {
	return &Signal{
		hub:    h,
		tag:    tag,
		bySlot: make(map[*Slot]*Link),
	}
}

// NewSlot creates a slot accepting messages of the given tag, bound to
// handler for the slot's lifetime.
func (h *Hub) NewSlot(tag *typetag.Tag, handler Handler) *Slot {
	return &Slot{
		hub:     h,
		tag:     tag,
		handler: handler,
		links:   make(map[*Link]struct{}),
	}
}

// ConnectOption configures a single Connect call.
type ConnectOption func(*connectConfig)

type connectConfig struct {
	forceUnchecked bool
}

// Unchecked forces the unchecked dispatch path regardless of how the
// endpoint tags relate. The caller asserts that every message this signal
// emits is acceptable to the slot.
func Unchecked() ConnectOption {
	return func(c *connectConfig) {
		c.forceUnchecked = true
	}
}

// Connect creates a link from sig to slot and reports whether the two are
// connected after the call. Connecting an already connected pair is an
// idempotent no-op returning true; the existing link and its dispatch
// choice are kept. A nil endpoint, or endpoints from different hubs,
// yields false.
//
// The dispatch strategy is fixed at this point and never revisited; see
// selectDispatch.
func (h *Hub) Connect(sig *Signal, slot *Slot, opts ...ConnectOption) bool {
	if sig == nil || slot == nil {
		return false
	}
	if sig.hub != h || slot.hub != h {
		return false
	}
	if sig.IsConnectedTo(slot) {
		return true
	}

	var cfg connectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	link := newLink(sig, slot, cfg.forceUnchecked)
	sig.attach(slot, link)
	slot.attach(link)
	h.metrics.RecordLinkOpened()
	return true
}

// Disconnect destroys the link between sig and slot, purging its pending
// deliveries, and reports whether a link existed. Disconnecting a pair
// that is not connected is a no-op returning false.
func (h *Hub) Disconnect(sig *Signal, slot *Slot) bool {
	if sig == nil || slot == nil {
		return false
	}
	link := sig.LinkTo(slot)
	if link == nil {
		return false
	}
	link.Close()
	return true
}

// IsConnected reports whether a link between sig and slot exists.
func (h *Hub) IsConnected(sig *Signal, slot *Slot) bool {
	if sig == nil || slot == nil {
		return false
	}
	return sig.IsConnectedTo(slot)
}

// ConnectNamed resolves both endpoints in the directory and connects them.
// A missing name yields false.
func (h *Hub) ConnectNamed(signalName, slotName string, opts ...ConnectOption) bool {
	sig := h.directory.Signal(signalName)
	slot := h.directory.Slot(slotName)
	if sig == nil || slot == nil {
		return false
	}
	return h.Connect(sig, slot, opts...)
}

// DisconnectNamed resolves both endpoints in the directory and disconnects
// them. A missing name yields false.
func (h *Hub) DisconnectNamed(signalName, slotName string) bool {
	sig := h.directory.Signal(signalName)
	slot := h.directory.Slot(slotName)
	if sig == nil || slot == nil {
		return false
	}
	return h.Disconnect(sig, slot)
}

// IsConnectedNamed resolves both endpoints in the directory and reports
// whether they are connected. A missing name yields false.
func (h *Hub) IsConnectedNamed(signalName, slotName string) bool {
	sig := h.directory.Signal(signalName)
	slot := h.directory.Slot(slotName)
	if sig == nil || slot == nil {
		return false
	}
	return sig.IsConnectedTo(slot)
}
