package irdoc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calumari/aurac/internal/ir"
	"gopkg.in/yaml.v3"
)

var ErrInvalidDocument = errors.New("invalid IR document")

// Load reads the IR document at path.
func Load(path string) (*ir.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode reads one IR document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*ir.Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc programDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return build(&doc)
}

// builder converts a decoded document into ir nodes. Atoms referenced by
// values are appended to the table after the declared ones.
type builder struct {
	atoms *ir.AtomTable
}

func build(doc *programDoc) (*ir.Program, error) {
	b := &builder{atoms: &ir.AtomTable{}}
	for i, id := range doc.Atoms {
		if _, err := b.atoms.Add(id); err != nil {
			return nil, fmt.Errorf("atoms[%d]: %w", i, err)
		}
	}
	p := &ir.Program{Includes: doc.Includes, Atoms: b.atoms}
	for i, sd := range doc.Statics {
		s, err := b.static(sd)
		if err != nil {
			return nil, fmt.Errorf("statics[%d]%w", i, err)
		}
		p.Statics = append(p.Statics, s)
	}
	if doc.Entry == nil {
		return nil, fmt.Errorf("%w: missing entry", ErrInvalidDocument)
	}
	entry, err := b.function(doc.Entry)
	if err != nil {
		return nil, fmt.Errorf("entry%w", err)
	}
	p.Entry = entry
	return p, nil
}

// Path errors are built inside out: each level prefixes ".field" or "[i]"
// to the error it returns and the caller adds the root name.

func (b *builder) static(sd staticDoc) (ir.StaticBind, error) {
	switch {
	case sd.Const != nil && sd.Function != nil:
		return nil, invalid("", "static must be either const or function")
	case sd.Const != nil:
		if err := checkName(sd.Const.Name); err != nil {
			return nil, fmt.Errorf(".const%w", err)
		}
		lit, n := sd.Const.literal.build()
		if n != 1 {
			return nil, invalid(".const", "want exactly one literal, got %d", n)
		}
		return ir.ValueBind{Name: ir.ValueIdent(sd.Const.Name), Value: lit}, nil
	case sd.Function != nil:
		f, err := b.function(sd.Function)
		if err != nil {
			return nil, fmt.Errorf(".function%w", err)
		}
		return f, nil
	}
	return nil, invalid("", "static must be either const or function")
}

func (b *builder) function(fd *funcDoc) (ir.FunctionBind, error) {
	if err := checkName(fd.Name); err != nil {
		return ir.FunctionBind{}, err
	}
	if fd.Returns == "" {
		return ir.FunctionBind{}, invalid("", "missing return type")
	}
	h := ir.FunctionHeader{Name: ir.ValueIdent(fd.Name), Returns: ir.TypeIdent(fd.Returns)}
	for i, pd := range fd.Params {
		if pd.Name == "" || pd.Type == "" {
			return ir.FunctionBind{}, invalid(fmt.Sprintf(".params[%d]", i), "parameter needs name and type")
		}
		if err := checkName(pd.Name); err != nil {
			return ir.FunctionBind{}, fmt.Errorf(".params[%d]%w", i, err)
		}
		h.Params = append(h.Params, ir.Symbol{Name: ir.ValueIdent(pd.Name), Type: ir.TypeIdent(pd.Type)})
	}
	body, err := b.scope(fd.Body)
	if err != nil {
		return ir.FunctionBind{}, fmt.Errorf(".body%w", err)
	}
	return ir.FunctionBind{Header: h, Body: body}, nil
}

func (b *builder) scope(stmts []stmtDoc) (ir.Scope, error) {
	s := make(ir.Scope, 0, len(stmts))
	for i, sd := range stmts {
		st, err := b.statement(sd)
		if err != nil {
			return nil, fmt.Errorf("[%d]%w", i, err)
		}
		s = append(s, st)
	}
	return s, nil
}

func (b *builder) statement(sd stmtDoc) (ir.Statement, error) {
	n := 0
	for _, set := range []bool{sd.Expr != nil, sd.Bind != nil, sd.Return != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return nil, invalid("", "statement must be exactly one of expr, bind or return")
	}
	switch {
	case sd.Expr != nil:
		e, err := b.expr(sd.Expr)
		if err != nil {
			return nil, fmt.Errorf(".expr%w", err)
		}
		return ir.ExprStmt{Expr: e}, nil
	case sd.Bind != nil:
		if err := checkName(sd.Bind.Name); err != nil {
			return nil, fmt.Errorf(".bind%w", err)
		}
		if sd.Bind.Value == nil {
			return nil, invalid(".bind", "missing value")
		}
		e, err := b.expr(sd.Bind.Value)
		if err != nil {
			return nil, fmt.Errorf(".bind.value%w", err)
		}
		bind := ir.Bind{Name: ir.ValueIdent(sd.Bind.Name), Expr: e}
		if sd.Bind.Type != "" {
			typ := ir.TypeIdent(sd.Bind.Type)
			bind.Type = &typ
		}
		return bind, nil
	}
	if sd.Return.empty() {
		return ir.Return{}, nil
	}
	v, err := b.value(*sd.Return)
	if err != nil {
		return nil, fmt.Errorf(".return%w", err)
	}
	return ir.Return{Value: v}, nil
}

func (b *builder) expr(ed *exprDoc) (ir.Expr, error) {
	if ed.Type == "" {
		return ir.Expr{}, invalid("", "missing type")
	}
	v, err := b.value(ed.valueDoc)
	if err != nil {
		return ir.Expr{}, err
	}
	return ir.Expr{Type: ir.TypeIdent(ed.Type), Value: v}, nil
}

func (b *builder) value(vd valueDoc) (ir.Value, error) {
	lit, n := vd.literal.build()
	for _, set := range []bool{vd.Atom != nil, vd.Ident != nil, vd.Call != nil, vd.Scope != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return nil, invalid("", "value must be exactly one of int, float, string, bool, atom, ident, call or scope")
	}
	switch {
	case lit != nil:
		return lit, nil
	case vd.Atom != nil:
		a, err := ir.NewAtom(*vd.Atom)
		if err != nil {
			return nil, fmt.Errorf(".atom: %w", err)
		}
		b.atoms.Intern(a)
		return a, nil
	case vd.Ident != nil:
		if err := checkName(*vd.Ident); err != nil {
			return nil, fmt.Errorf(".ident%w", err)
		}
		return ir.ValueIdent(*vd.Ident), nil
	case vd.Call != nil:
		if err := checkName(vd.Call.Func); err != nil {
			return nil, fmt.Errorf(".call.func%w", err)
		}
		c := ir.Call{Func: ir.ValueIdent(vd.Call.Func)}
		for i, ad := range vd.Call.Args {
			v, err := b.value(ad)
			if err != nil {
				return nil, fmt.Errorf(".call.args[%d]%w", i, err)
			}
			c.Args = append(c.Args, v)
		}
		return c, nil
	}
	s, err := b.scope(*vd.Scope)
	if err != nil {
		return nil, fmt.Errorf(".scope%w", err)
	}
	return s, nil
}

// build returns the literal that is set and how many are set.
func (l literal) build() (ir.Literal, int) {
	var (
		lit ir.Literal
		n   int
	)
	if l.Int != nil {
		lit, n = ir.Int(*l.Int), n+1
	}
	if l.Float != nil {
		lit, n = ir.Float(*l.Float), n+1
	}
	if l.String != nil {
		lit, n = ir.String(*l.String), n+1
	}
	if l.Bool != nil {
		lit, n = ir.Bool(*l.Bool), n+1
	}
	return lit, n
}

func (vd *valueDoc) empty() bool {
	_, n := vd.literal.build()
	return n == 0 && vd.Atom == nil && vd.Ident == nil && vd.Call == nil && vd.Scope == nil
}

// checkName rejects names that cannot be a C identifier.
func checkName(name string) error {
	if name == "" {
		return invalid("", "missing name")
	}
	for i, c := range name {
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (i > 0 && c >= '0' && c <= '9') {
			continue
		}
		return invalid("", "name %q is not a C identifier", name)
	}
	if strings.HasPrefix(name, "__Atom_") {
		return invalid("", "name %q uses the reserved atom prefix", name)
	}
	return nil
}

func invalid(path, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", path, ErrInvalidDocument, fmt.Sprintf(format, args...))
}
