// Package irdoc loads IR programs from YAML documents. It stands in for the
// front end: documents describe an already checked program and are mapped
// one to one onto ir nodes.
//
// A document looks like:
//
//	includes: [stdio.h]
//	atoms: [ok, not-found]
//	statics:
//	  - const: {name: answer, int: 42}
//	  - function:
//	      name: greet
//	      returns: Void
//	      params: [{name: who, type: String}]
//	      body:
//	        - expr: {type: Void, call: {func: print, args: [{ident: who}]}}
//	entry:
//	  name: main
//	  returns: Int
//	  body:
//	    - expr: {type: Void, call: {func: greet, args: [{string: "world"}]}}
//	    - return: {int: 0}
//
// A value is a mapping with exactly one of int, float, string, bool, atom,
// ident, call or scope. A bare return is written "return: {}".
package irdoc

// programDoc is the root of an IR document.
type programDoc struct {
	Includes []string    `yaml:"includes"`
	Atoms    []string    `yaml:"atoms"`
	Statics  []staticDoc `yaml:"statics"`
	Entry    *funcDoc    `yaml:"entry"`
}

// staticDoc holds exactly one of Const or Function.
type staticDoc struct {
	Const    *constDoc `yaml:"const"`
	Function *funcDoc  `yaml:"function"`
}

// constDoc is a named literal; exactly one literal field is set.
type constDoc struct {
	Name    string `yaml:"name"`
	literal `yaml:",inline"`
}

type funcDoc struct {
	Name    string      `yaml:"name"`
	Params  []symbolDoc `yaml:"params"`
	Returns string      `yaml:"returns"`
	Body    []stmtDoc   `yaml:"body"`
}

type symbolDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// stmtDoc holds exactly one of Expr, Bind or Return.
type stmtDoc struct {
	Expr   *exprDoc  `yaml:"expr"`
	Bind   *bindDoc  `yaml:"bind"`
	Return *valueDoc `yaml:"return"`
}

// exprDoc is a value tagged with its declared type.
type exprDoc struct {
	Type     string `yaml:"type"`
	valueDoc `yaml:",inline"`
}

type bindDoc struct {
	Name  string   `yaml:"name"`
	Type  string   `yaml:"type"` // optional override
	Value *exprDoc `yaml:"value"`
}

type literal struct {
	Int    *int64   `yaml:"int"`
	Float  *float64 `yaml:"float"`
	String *string  `yaml:"string"`
	Bool   *bool    `yaml:"bool"`
}

// valueDoc holds exactly one value kind.
type valueDoc struct {
	literal `yaml:",inline"`
	Atom    *string    `yaml:"atom"`
	Ident   *string    `yaml:"ident"`
	Call    *callDoc   `yaml:"call"`
	Scope   *[]stmtDoc `yaml:"scope"`
}

type callDoc struct {
	Func string     `yaml:"func"`
	Args []valueDoc `yaml:"args"`
}
