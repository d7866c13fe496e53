package ir

import "strings"

// Value is the payload of an expression: a Literal, Atom, Identifier, Call
// or Scope.
type Value interface {
	Node
	isValue()
}

// Expr is a value tagged with its declared type. Only Bind reads the type;
// the expression itself renders as its value.
type Expr struct {
	Type  Identifier
	Value Value
}

func (e Expr) Compile() string { return e.Value.Compile() }

// Call invokes Func with Args, which are evaluated in the order given.
type Call struct {
	Func Identifier
	Args []Value
}

func (c Call) Compile() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.Compile()
	}
	return c.Func.Compile() + "(" + strings.Join(args, ", ") + ")"
}

func (Call) isValue() {}

// Scope is a lexical block.
type Scope []Statement

func (s Scope) Compile() string {
	if len(s) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, st := range s {
		b.WriteByte('\t')
		// nested blocks move one level right
		b.WriteString(strings.ReplaceAll(st.Compile(), "\n", "\n\t"))
		b.WriteString(";\n")
	}
	b.WriteByte('}')
	return b.String()
}

func (Scope) isValue() {}
