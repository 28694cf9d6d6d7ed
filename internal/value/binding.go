package value

// DeclaredType records the DSL-level type annotation a VariableDeclaration
// carried, or Inferred when the binding was created by a bare Assignment
// (spec §3, §4.3).
type DeclaredType string

const Inferred DeclaredType = "INFERRED"

// Binding pairs a value with its declared type. DeclaredType is advisory
// only: operations dispatch on the Value's own Kind, never on DeclaredType
// (spec §9 "Dynamic typing").
type Binding struct {
	DeclaredType DeclaredType
	Value        Value
}

// NewBinding constructs a Binding, defaulting DeclaredType to Inferred when
// empty.
func NewBinding(declaredType string, v Value) Binding {
	dt := DeclaredType(declaredType)
	if dt == "" {
		dt = Inferred
	}
	return Binding{DeclaredType: dt, Value: v}
}
