package value

// Environment is the single global identifier -> Binding map an interpreter
// instance owns (spec §3). There are no nested scopes; ForEach's loop
// variable is rebound in this same map on every iteration and is left
// bound after the loop (spec §4.5, §9 open question 5).
type Environment struct {
	bindings map[string]Binding
}

// NewEnvironment constructs an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Binding)}
}

// Get looks up a binding by name.
func (e *Environment) Get(name string) (Binding, bool) {
	b, ok := e.bindings[name]
	return b, ok
}

// Set stores or overwrites a binding.
func (e *Environment) Set(name string, b Binding) {
	e.bindings[name] = b
}

// Declare stores a new binding with an explicit declared type
// (VariableDeclaration, spec §4.3).
func (e *Environment) Declare(name, declaredType string, v Value) {
	e.Set(name, NewBinding(declaredType, v))
}

// Assign updates a binding's value, creating an Inferred-typed binding if
// the name is unknown (Assignment, spec §4.3).
func (e *Environment) Assign(name string, v Value) {
	if existing, ok := e.bindings[name]; ok {
		existing.Value = v
		e.bindings[name] = existing
		return
	}
	e.Declare(name, string(Inferred), v)
}
