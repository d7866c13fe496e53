// Package ir defines the C intermediate representation of an Aura program
// and lowers it to C source.
//
// A tree handed to this package is assumed to be correct: typed, scoped and
// resolved by the front end. Nodes are never mutated after construction, so
// rendering is safe to run concurrently on the same or distinct trees.
package ir

import "fmt"

// Node is implemented by every IR node.
type Node interface {
	// Compile renders the node as C source.
	Compile() string
}

// InvalidVariantError reports that a sum-typed node was used as a variant it
// is not. It signals a bug in the caller and is raised with panic.
type InvalidVariantError struct {
	Node string // node family, e.g. "static binding"
	Want string
	Got  any
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("ir: invalid %s variant: want %s, got %T", e.Node, e.Want, e.Got)
}

func invalidVariant(node, want string, got any) *InvalidVariantError {
	return &InvalidVariantError{Node: node, Want: want, Got: got}
}
