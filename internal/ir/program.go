package ir

import (
	"io"
	"strings"
)

// Program is a whole C translation unit. It owns every node beneath it.
type Program struct {
	// Includes are header paths in directive order. A path written as
	// "<stdio.h>" is emitted verbatim, any other path is quoted.
	Includes []string
	// Atoms numbers every atom of the program; nil means no atoms.
	Atoms *AtomTable
	// Statics are emitted in order after every function is declared.
	Statics []StaticBind
	// Entry must be a function binding; it is emitted last.
	Entry StaticBind
}

// RenderOptions adjust the text surrounding a rendered unit.
type RenderOptions struct {
	// Banner is written as a leading line comment when non-empty.
	Banner string
}

// unitModel is the root template model for a rendered unit. Every field is
// final C text so node rendering happens outside the template engine.
type unitModel struct {
	Banner       string
	Preamble     string
	Includes     []string
	Atoms        []atomModel
	Declarations []string
	Definitions  []string
	Entry        string
}

type atomModel struct {
	Name  string
	Index int
}

// Compile renders the unit without a banner.
func (p *Program) Compile() string {
	var b strings.Builder
	if err := p.Render(&b, RenderOptions{}); err != nil {
		panic(err)
	}
	return b.String()
}

// Render writes the unit to w. Sections are emitted in a fixed order:
// preamble, includes, atom defines, forward declarations, static
// definitions and the entry function.
func (p *Program) Render(w io.Writer, opts RenderOptions) error {
	if err := ensureTemplates(); err != nil {
		return err
	}
	return unitTmpl.ExecuteTemplate(w, tmplUnit, p.model(opts))
}

func (p *Program) model(opts RenderOptions) unitModel {
	entry := MustFunction(p.Entry)
	m := unitModel{
		Banner:   opts.Banner,
		Preamble: preamble,
		Entry:    entry.Compile(),
	}
	for _, inc := range p.Includes {
		m.Includes = append(m.Includes, includePath(inc))
	}
	for i, a := range p.Atoms.All() {
		m.Atoms = append(m.Atoms, atomModel{Name: a.Compile(), Index: i})
	}
	// Declare every function before any body can refer to it.
	for _, s := range p.Statics {
		switch s := s.(type) {
		case FunctionBind:
			m.Declarations = append(m.Declarations, s.Header.Compile())
		case *FunctionBind:
			if s == nil {
				panic(invalidVariant("static binding", "value or function", s))
			}
			m.Declarations = append(m.Declarations, s.Header.Compile())
		case ValueBind:
		case *ValueBind:
			if s == nil {
				panic(invalidVariant("static binding", "value or function", s))
			}
		default:
			panic(invalidVariant("static binding", "value or function", s))
		}
	}
	m.Declarations = append(m.Declarations, entry.Header.Compile())
	for _, s := range p.Statics {
		m.Definitions = append(m.Definitions, s.Compile())
	}
	return m
}

func includePath(path string) string {
	if strings.HasPrefix(path, "<") && strings.HasSuffix(path, ">") {
		return path
	}
	return `"` + path + `"`
}
