package ir

// Statement is an ExprStmt, a Bind or a Return.
type Statement interface {
	Node
	isStatement()
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	Expr Expr
}

func (s ExprStmt) Compile() string { return s.Expr.Compile() }

// Bind introduces a local name. Type overrides the initializer's declared
// type when set.
type Bind struct {
	Name Identifier
	Type *Identifier
	Expr Expr
}

func (s Bind) Compile() string {
	typ := s.Expr.Type
	if s.Type != nil {
		typ = *s.Type
	}
	return typ.Compile() + " " + s.Name.Compile() + " = " + s.Expr.Compile()
}

// Return leaves the enclosing function. A nil Value is a bare return.
type Return struct {
	Value Value
}

func (s Return) Compile() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.Compile()
}

func (ExprStmt) isStatement() {}
func (Bind) isStatement()     {}
func (Return) isStatement()   {}
