// Package action is the named-owner layer above the wiring core: an Action
// aggregates a set of signals and slots under one owner name and registers
// them in the hub's directories as "<owner>::<endpoint>".
//
// The layer maintains its own uniqueness domain, distinct from the hub
// directories. Registering two actions (or two endpoints of one action)
// under the same name is an error here, while the hub directories silently
// overwrite. Configuration-driven wiring resolves the qualified names
// through the hub, so an action's endpoints are addressable without
// handing out object references.
package action

import (
	"github.com/c360/signalkit/errors"
	"github.com/c360/signalkit/message"
	"github.com/c360/signalkit/typetag"
	"github.com/c360/signalkit/wire"
)

// RootTag is the ancestor of every action type tag. Owner tags form their
// own hierarchy, parallel to the message hierarchy.
var RootTag = typetag.New("Action")

// Action is a named owner of signals and slots. Concrete owners embed it
// and add their endpoints at construction:
//
//	type Ping struct {
//		*action.Action
//	}
//
//	func NewPing(hub *wire.Hub) (*Ping, error) {
//		p := &Ping{Action: action.New("Ping", pingTag, hub)}
//		if err := p.AddSignal("send", hub.NewSignal(ballTag)); err != nil {
//			return nil, err
//		}
//		...
//	}
type Action struct {
	name    string
	tag     *typetag.Tag
	hub     *wire.Hub
	signals map[string]*wire.Signal
	slots   map[string]*wire.Slot
}

// New creates an owner with the given name and type tag. A nil tag gets
// RootTag.
func New(name string, tag *typetag.Tag, hub *wire.Hub) *Action {
	if tag == nil {
		tag = RootTag
	}
	return &Action{
		name:    name,
		tag:     tag,
		hub:     hub,
		signals: make(map[string]*wire.Signal),
		slots:   make(map[string]*wire.Slot),
	}
}

// Name returns the owner name.
func (a *Action) Name() string {
	return a.name
}

// Tag returns the owner's type tag.
func (a *Action) Tag() *typetag.Tag {
	return a.tag
}

// Hub returns the hub the owner's endpoints live in.
func (a *Action) Hub() *wire.Hub {
	return a.hub
}

// Qualify composes the owner name with a local endpoint name.
func (a *Action) Qualify(local string) string {
	return a.name + "::" + local
}

// AddSignal adopts a signal under the given local name and registers it in
// the hub's signal directory as "<owner>::<local>". A duplicate local name
// within this owner is an error; the first registration stands.
func (a *Action) AddSignal(local string, sig *wire.Signal) error {
	if _, taken := a.signals[local]; taken {
		return errors.WrapInvalid(errors.ErrDuplicateName, a.name, "AddSignal",
			"signal registration as "+a.Qualify(local))
	}
	a.signals[local] = sig
	sig.SetName(a.Qualify(local))
	return nil
}

// AddSlot adopts a slot under the given local name and registers it in the
// hub's slot directory as "<owner>::<local>". A duplicate local name within
// this owner is an error; the first registration stands.
func (a *Action) AddSlot(local string, slot *wire.Slot) error {
	if _, taken := a.slots[local]; taken {
		return errors.WrapInvalid(errors.ErrDuplicateName, a.name, "AddSlot",
			"slot registration as "+a.Qualify(local))
	}
	a.slots[local] = slot
	slot.SetName(a.Qualify(local))
	return nil
}

// Signal returns the signal registered under the local name, or nil.
func (a *Action) Signal(local string) *wire.Signal {
	return a.signals[local]
}

// Slot returns the slot registered under the local name, or nil.
func (a *Action) Slot(local string) *wire.Slot {
	return a.slots[local]
}

// SignalNames returns the local signal names, in no particular order.
func (a *Action) SignalNames() []string {
	names := make([]string, 0, len(a.signals))
	for name := range a.signals {
		names = append(names, name)
	}
	return names
}

// SlotNames returns the local slot names, in no particular order.
func (a *Action) SlotNames() []string {
	names := make([]string, 0, len(a.slots))
	for name := range a.slots {
		names = append(names, name)
	}
	return names
}

// Emit emits through the signal registered under the local name. A missing
// name is a silent no-op, matching the core's emit-without-links behaviour.
func (a *Action) Emit(local string, msg message.Message) {
	if sig := a.signals[local]; sig != nil {
		sig.Emit(msg)
	}
}

// Close destroys every owned endpoint, severing their links and purging
// their pending deliveries, and unregisters their qualified names.
func (a *Action) Close() {
	for local, sig := range a.signals {
		sig.Close()
		delete(a.signals, local)
	}
	for local, slot := range a.slots {
		slot.Close()
		delete(a.slots, local)
	}
}
