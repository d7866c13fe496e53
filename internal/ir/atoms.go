package ir

import "iter"

// AtomTable is the program-wide, append-only list of atoms. An atom's
// position in the table is its runtime value.
type AtomTable struct {
	atoms []Atom
	index map[string]int // repr -> position
}

// NewAtomTable returns a table holding the given identifiers in order.
func NewAtomTable(identifiers ...string) (*AtomTable, error) {
	t := &AtomTable{}
	for _, id := range identifiers {
		if _, err := t.Add(id); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add appends the atom for identifier and returns its index. An atom that
// is already present keeps its original index.
func (t *AtomTable) Add(identifier string) (int, error) {
	a, err := NewAtom(identifier)
	if err != nil {
		return 0, err
	}
	return t.Intern(a), nil
}

// Intern is Add for an already encoded atom.
func (t *AtomTable) Intern(a Atom) int {
	if i, ok := t.index[a.repr]; ok {
		return i
	}
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.atoms = append(t.atoms, a)
	t.index[a.repr] = len(t.atoms) - 1
	return len(t.atoms) - 1
}

// Index reports the position of a in the table.
func (t *AtomTable) Index(a Atom) (int, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := t.index[a.repr]
	return i, ok
}

func (t *AtomTable) At(i int) Atom { return t.atoms[i] }

func (t *AtomTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.atoms)
}

// All yields every atom with its index, in table order.
func (t *AtomTable) All() iter.Seq2[int, Atom] {
	return func(yield func(int, Atom) bool) {
		if t == nil {
			return
		}
		for i, a := range t.atoms {
			if !yield(i, a) {
				return
			}
		}
	}
}
