package action

import (
	"sort"

	"github.com/c360/signalkit/errors"
)

// Registry is the owner directory. Unlike the hub's endpoint directories,
// registration here fails loudly on a duplicate name: two owners sharing a
// name would silently cross-wire their endpoints through the qualified
// namespace, so the collision must surface at construction time.
type Registry struct {
	actions map[string]*Action
}

// NewRegistry creates an empty owner directory.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]*Action)}
}

// Register adds an owner under its name. A taken name is an error and the
// existing registration stands.
func (r *Registry) Register(a *Action) error {
	if a == nil {
		return errors.WrapInvalid(errors.ErrInvalidData, "Registry", "Register",
			"nil action registration")
	}
	if _, taken := r.actions[a.Name()]; taken {
		return errors.WrapInvalid(errors.ErrDuplicateName, "Registry", "Register",
			"action registration as "+a.Name())
	}
	r.actions[a.Name()] = a
	return nil
}

// Get returns the owner registered under name, or nil.
func (r *Registry) Get(name string) *Action {
	return r.actions[name]
}

// Names returns the registered owner names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove unregisters the owner without closing its endpoints.
func (r *Registry) Remove(name string) {
	delete(r.actions, name)
}

// Clear closes every registered owner and empties the directory.
func (r *Registry) Clear() {
	for name, a := range r.actions {
		a.Close()
		delete(r.actions, name)
	}
}
