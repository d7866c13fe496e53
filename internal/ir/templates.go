package ir

import (
	"embed"
	"fmt"
	"sync"
	"text/template"
)

const (
	tmplUnit         = "unit"
	tmplBanner       = "banner"
	tmplIncludes     = "includes"
	tmplAtoms        = "atoms"
	tmplDeclarations = "declarations"
	tmplStatics      = "statics"
	tmplEntry        = "entry"
)

const templatePattern = "templates/*.gtpl"

//go:embed templates/*.gtpl templates/core.h
var templatesFS embed.FS

var (
	unitTmpl     *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
	preamble     string
)

// validateTemplates ensures all required templates are defined.
func validateTemplates() error {
	requiredTemplates := []string{
		tmplUnit,
		tmplBanner,
		tmplIncludes,
		tmplAtoms,
		tmplDeclarations,
		tmplStatics,
		tmplEntry,
	}
	for _, name := range requiredTemplates {
		if unitTmpl.Lookup(name) == nil {
			return fmt.Errorf("required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var core []byte
		core, tmplInitErr = templatesFS.ReadFile("templates/core.h")
		if tmplInitErr != nil {
			return
		}
		preamble = string(core)
		var t *template.Template
		t, tmplInitErr = template.New(tmplUnit).ParseFS(templatesFS, templatePattern)
		if tmplInitErr != nil {
			return
		}
		unitTmpl = t
		tmplInitErr = validateTemplates()
	})
	return tmplInitErr
}

// Preamble returns the C declarations every unit starts with.
func Preamble() string {
	if err := ensureTemplates(); err != nil {
		panic(err)
	}
	return preamble
}
