package ir

// Namespace separates value names from type names.
type Namespace int

const (
	ValueNamespace Namespace = iota
	TypeNamespace
)

// Identifier is a resolved name. Two identifiers are equal when both the
// namespace and the name match.
type Identifier struct {
	Namespace Namespace
	Name      string
}

func ValueIdent(name string) Identifier { return Identifier{Namespace: ValueNamespace, Name: name} }
func TypeIdent(name string) Identifier  { return Identifier{Namespace: TypeNamespace, Name: name} }

func (id Identifier) Compile() string { return id.Name }

func (Identifier) isValue() {}

// Symbol is a typed function parameter.
type Symbol struct {
	Name Identifier
	Type Identifier
}

func (s Symbol) Compile() string { return s.Type.Compile() + " " + s.Name.Compile() }
