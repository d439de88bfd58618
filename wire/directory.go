package wire

// Directory maps qualified names to signals and slots in two separate
// namespaces. It replaces the process-wide static maps of earlier designs
// with an explicitly owned object, so tests and embedded uses can run with
// isolated directories.
//
// Registration is last-writer-wins: registering a name that is already
// taken silently replaces the previous association. Loud duplicate
// detection is the named-owner layer's job (package action), which manages
// its own uniqueness domain.
type Directory struct {
	signals map[string]*Signal
	slots   map[string]*Slot
}

func newDirectory() *Directory {
	return &Directory{
		signals: make(map[string]*Signal),
		slots:   make(map[string]*Slot),
	}
}

// Signal returns the signal registered under name, or nil if none.
func (d *Directory) Signal(name string) *Signal {
	return d.signals[name]
}

// Slot returns the slot registered under name, or nil if none.
func (d *Directory) Slot(name string) *Slot {
	return d.slots[name]
}

// SignalNames returns the registered signal names, in no particular order.
func (d *Directory) SignalNames() []string {
	names := make([]string, 0, len(d.signals))
	for name := range d.signals {
		names = append(names, name)
	}
	return names
}

// SlotNames returns the registered slot names, in no particular order.
func (d *Directory) SlotNames() []string {
	names := make([]string, 0, len(d.slots))
	for name := range d.slots {
		names = append(names, name)
	}
	return names
}

func (d *Directory) registerSignal(name string, s *Signal) {
	d.signals[name] = s
}

// unregisterSignal removes the association only if it still points at s,
// so an endpoint overwritten by a later registration cannot evict its
// replacement when it unregisters.
func (d *Directory) unregisterSignal(name string, s *Signal) {
	if d.signals[name] == s {
		delete(d.signals, name)
	}
}

func (d *Directory) registerSlot(name string, s *Slot) {
	d.slots[name] = s
}

func (d *Directory) unregisterSlot(name string, s *Slot) {
	if d.slots[name] == s {
		delete(d.slots, name)
	}
}
