package sexpr

import "github.com/pkg/errors"

const initialBindingsCap = 16

type binding struct {
	inUse bool
	name  string
	val   Value
}

// Bindings maps names to values within a single scope. Scopes hold only a
// handful of names, so lookups are a linear scan over the slots.
type Bindings struct {
	size    int
	entries []binding
}

func NewBindings() *Bindings {
	return &Bindings{entries: make([]binding, initialBindingsCap)}
}

func (b *Bindings) Len() int { return b.size }

func (b *Bindings) Cap() int { return len(b.entries) }

func (b *Bindings) ensure(minCap int) {
	if len(b.entries) >= minCap {
		return
	}
	grown := make([]binding, len(b.entries)*2)
	copy(grown, b.entries)
	b.entries = grown
}

// Insert binds name to val, overwriting an existing binding of the same name.
func (b *Bindings) Insert(name string, val Value) error {
	b.ensure(b.size + 1)

	free := -1
	for i := range b.entries {
		e := &b.entries[i]
		if !e.inUse {
			if free < 0 {
				free = i
			}
			continue
		}
		if e.name == name {
			e.val = val
			return nil
		}
	}

	if free < 0 {
		return errors.Errorf("could not insert key '%s' into bindings", name)
	}
	b.entries[free] = binding{inUse: true, name: name, val: val}
	b.size++
	return nil
}

func (b *Bindings) Lookup(name string) (Value, bool) {
	for _, e := range b.entries {
		if e.inUse && e.name == name {
			return e.val, true
		}
	}
	return nil, false
}

// Env is a lexical scope. The parent is only consulted for lookups.
type Env struct {
	parent   *Env
	bindings *Bindings
}

func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, bindings: NewBindings()}
}

func ChildEnv(parent *Env) *Env {
	return NewEnv(parent)
}

func (e *Env) Parent() *Env { return e.parent }

// Find resolves name innermost scope first.
func (e *Env) Find(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if val, ok := env.bindings.Lookup(name); ok {
			return val, true
		}
	}
	return nil, false
}

func (e *Env) Define(name string, val Value) error {
	return e.bindings.Insert(name, val)
}
