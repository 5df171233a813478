package keymap

import (
	"slices"

	"github.com/samber/lo"
)

// Resolver maps pressed keys to actions for one set of bindings.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver indexes bindings. When two bindings claim the same key the
// later one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action, len(bindings)),
		keys:    make(map[Action][]string, len(bindings)),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
		}
		r.keys[b.Action] = lo.Uniq(append(r.keys[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action bound to key, or "" when none is.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// Bound reports whether key triggers any action.
func (r *Resolver) Bound(key string) bool {
	_, ok := r.actions[key]
	return ok
}

// KeysFor lists the keys of action in binding order, for help and hints.
func (r *Resolver) KeysFor(action Action) []string {
	return slices.Clone(r.keys[action])
}
