package keymap

// Resolver looks up the action bound to a key.
type Resolver struct {
	actions map[string]Action
}

// NewResolver indexes bindings by key. A key bound more than once resolves
// to its last binding, so later contexts override earlier ones.
func NewResolver(bindings []Binding) *Resolver {
	actions := make(map[string]Action, 2*len(bindings))
	for _, b := range bindings {
		for _, k := range b.Keys {
			actions[k] = b.Action
		}
	}
	return &Resolver{actions: actions}
}

// Resolve returns the action bound to key, or "" when there is none.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}
