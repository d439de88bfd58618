// Package wire implements the connection graph and dispatch engine:
// typed Signals (emission points) connected to typed Slots (receivers)
// through named, revocable Links, with delivery deferred through a FIFO
// queue rather than executed at emission time.
//
// # Model
//
// A Hub owns one deferred queue and one name directory. Signals and slots
// are created through the hub and carry a fixed type tag; a Link binds
// exactly one signal to exactly one slot and picks its dispatch strategy
// once, at connect time:
//
//   - unchecked: the slot handler runs for every forwarded message
//   - checked: the message's tag is tested against the slot's accepted tag
//     at delivery time and incompatible messages are silently dropped
//
// The unchecked path is selected when the signal's declared tag is found
// walking up the slot's ancestor chain (the slot's accepted type is the
// signal's type or a descendant of it), or when the connection forces it.
// This is the historical selection rule and existing wiring configurations
// depend on it; see the truth table pinned in the package tests.
//
// # Control flow
//
// Emit appends one queue entry per connected link and returns; nothing runs
// until the driver pumps the queue:
//
//	hub := wire.New()
//	sig := hub.NewSignal(tag)
//	slot := hub.NewSlot(tag, handle)
//	hub.Connect(sig, slot)
//
//	sig.Emit(msg)
//	for hub.ProcessNext() {
//	}
//
// Destroying a link before its entries are processed is the supported
// cancellation mechanism: pending entries for that link are purged, never
// delivered.
//
// # Concurrency contract
//
// None. The hub, queue, endpoints and links are defined for
// single-threaded cooperative use: one logical thread emits, connects and
// pumps. Callers that want cross-goroutine use must add their own mutual
// exclusion around every hub operation, including notifier invocation.
package wire
