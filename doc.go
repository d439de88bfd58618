// Package signalkit provides an in-process, single-threaded signal/slot
// wiring layer with deferred delivery: typed emission points (signals) are
// connected to typed receivers (slots) through revocable links, and every
// emission is queued rather than dispatched synchronously, so the caller
// decides when delivery work happens.
//
// # Architecture
//
// The module is layered bottom-up:
//
//	┌─────────────────────────────────────┐
//	│        action / config              │  Named owners, declarative
//	│  (ownership, qualified names)       │  wiring files
//	└─────────────────────────────────────┘
//	           ↓ registers and connects via
//	┌─────────────────────────────────────┐
//	│             wire                    │  Hub, Signal, Slot, Link,
//	│   (connect, emit, process)          │  deferred FIFO queue
//	└─────────────────────────────────────┘
//	           ↓ typed by
//	┌─────────────────────────────────────┐
//	│        typetag / message            │  Named type forest,
//	│     (runtime "is-a" checks)         │  message contracts
//	└─────────────────────────────────────┘
//
// Package wire is the core: a Hub owns the delivery queue and the name
// directories, creates signals and slots, and connects them. Emission
// fans one queue entry out per link; a driver loop drains the queue:
//
//	hub := wire.New()
//	sig := hub.NewSignal(eventTag)
//	slot := hub.NewSlot(eventTag, handle)
//	hub.Connect(sig, slot)
//
//	sig.Emit(msg)
//	for hub.ProcessNext() {
//	}
//
// Package typetag gives messages a runtime type hierarchy checked by name,
// package message defines the payload contract, package action groups
// endpoints under owner-qualified names, and package config wires named
// endpoints from declarative YAML/JSON files.
//
// # Concurrency
//
// The layer is deliberately single-threaded: one logical thread constructs
// the wiring, emits, and drains the queue. Nothing locks. Integrating with
// goroutines means confining the hub to one of them and using the queue
// notifier to wake it; cmd/signalkit-demo shows the pattern.
package signalkit
