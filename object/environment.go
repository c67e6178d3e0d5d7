package object

// Environment stores variable bindings for the tree-walking evaluator.
// Each value (Object) is associated with a name, the Identifier it was
// originally bound to.
type Environment struct {
	store map[string]Object

	// outer is the environment this one extends, or nil for the root environment.
	outer *Environment
}

// NewEnvironment creates a new, empty top-level Environment.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a new Environment nested inside outer.
// Lookups that miss in the new environment fall through to outer, while
// bindings made in the new environment never leak back into it.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get looks up name in the environment, falling through to outer environments
// (closest first) until it is found or the chain is exhausted.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment, overwriting any existing binding.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
