package ir

import "strings"

// StaticBind is a top-level program member: a ValueBind or a FunctionBind.
type StaticBind interface {
	Node
	isStatic()
}

// ValueBind is a named constant.
type ValueBind struct {
	Name  Identifier
	Value Literal
}

func (s ValueBind) Compile() string {
	return "const " + s.Value.TypeName() + " " + s.Name.Compile() + " = " + s.Value.Compile() + ";"
}

// FunctionBind is a function definition.
type FunctionBind struct {
	Header FunctionHeader
	Body   Scope
}

// Compile renders the header directly followed by the body block.
func (s FunctionBind) Compile() string { return s.Header.Compile() + s.Body.Compile() }

func (ValueBind) isStatic()    {}
func (FunctionBind) isStatic() {}

// FunctionHeader is a function's signature.
type FunctionHeader struct {
	Name    Identifier
	Params  []Symbol
	Returns Identifier
}

func (h FunctionHeader) Compile() string {
	params := "void"
	if len(h.Params) > 0 {
		parts := make([]string, len(h.Params))
		for i, p := range h.Params {
			parts[i] = p.Compile()
		}
		params = strings.Join(parts, ", ")
	}
	return h.Returns.Compile() + " " + h.Name.Compile() + "(" + params + ")"
}

// MustFunction returns s as a FunctionBind. It panics with an
// *InvalidVariantError for any other variant.
func MustFunction(s StaticBind) FunctionBind {
	switch s := s.(type) {
	case FunctionBind:
		return s
	case *FunctionBind:
		if s != nil {
			return *s
		}
	}
	panic(invalidVariant("static binding", "function", s))
}
