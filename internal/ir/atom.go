package ir

import (
	"errors"
	"fmt"
	"strings"
)

// atomPrefix marks every atom macro so it cannot collide with user names.
const atomPrefix = "__Atom_"

var (
	ErrInvalidIdentifier     = errors.New("invalid atom identifier")
	ErrInvalidRepresentation = errors.New("invalid atom representation")
)

// Atom is a symbolic constant. Its C form is a macro whose value is the
// atom's index in the program's AtomTable.
type Atom struct {
	repr string
}

// NewAtom builds the atom for a canonical identifier such as "not-found".
func NewAtom(identifier string) (Atom, error) {
	repr, err := EncodeAtom(identifier)
	if err != nil {
		return Atom{}, err
	}
	return Atom{repr: repr}, nil
}

// MustAtom is like NewAtom but panics on an invalid identifier.
func MustAtom(identifier string) Atom {
	a, err := NewAtom(identifier)
	if err != nil {
		panic(err)
	}
	return a
}

// Identifier returns the canonical identifier the atom was built from.
func (a Atom) Identifier() string {
	id, err := DecodeAtom(a.repr)
	if err != nil {
		// only reachable for the zero Atom
		return ""
	}
	return id
}

func (a Atom) Compile() string { return a.repr }

func (Atom) isValue() {}

// EncodeAtom maps a canonical identifier to its C macro name.
//
// Identifiers are non-empty and made of lowercase ASCII letters, digits and
// hyphens. Uppercase letters and underscores are rejected: either would let
// two identifiers share a representation.
func EncodeAtom(identifier string) (string, error) {
	if identifier == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}
	for i := 0; i < len(identifier); i++ {
		c := identifier[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			continue
		}
		return "", fmt.Errorf("%w %q: unexpected character %q at offset %d", ErrInvalidIdentifier, identifier, c, i)
	}
	return atomPrefix + strings.ReplaceAll(strings.ToUpper(identifier), "-", "_"), nil
}

// DecodeAtom is the inverse of EncodeAtom. It is only guaranteed to be
// correct for representations produced by EncodeAtom.
func DecodeAtom(repr string) (string, error) {
	body, ok := strings.CutPrefix(repr, atomPrefix)
	if !ok || body == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidRepresentation, repr)
	}
	return strings.ReplaceAll(strings.ToLower(body), "_", "-"), nil
}
