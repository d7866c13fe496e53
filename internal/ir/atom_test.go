package ir_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/calumari/aurac/internal/ir"
	"github.com/stretchr/testify/require"
)

const atomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"

func randomIdentifier(r *rand.Rand) string {
	b := make([]byte, 1+r.IntN(12))
	for i := range b {
		b[i] = atomAlphabet[r.IntN(len(atomAlphabet))]
	}
	return string(b)
}

func TestAtomCodec(t *testing.T) {
	t.Run("identifier encodes to prefixed uppercase macro", func(t *testing.T) {
		repr, err := ir.EncodeAtom("not-found")
		require.NoError(t, err)
		require.Equal(t, "__Atom_NOT_FOUND", repr)
	})

	t.Run("decode inverts encode", func(t *testing.T) {
		r := rand.New(rand.NewPCG(1, 2))
		for range 500 {
			id := randomIdentifier(r)
			repr, err := ir.EncodeAtom(id)
			require.NoError(t, err)
			back, err := ir.DecodeAtom(repr)
			require.NoError(t, err)
			require.Equal(t, id, back)
		}
	})

	t.Run("distinct identifiers never share a representation", func(t *testing.T) {
		r := rand.New(rand.NewPCG(3, 4))
		seen := map[string]string{}
		for range 2000 {
			id := randomIdentifier(r)
			repr, err := ir.EncodeAtom(id)
			require.NoError(t, err)
			if prev, ok := seen[repr]; ok {
				require.Equal(t, prev, id, "collision on %s", repr)
			}
			seen[repr] = id
		}
	})

	t.Run("invalid identifiers are rejected", func(t *testing.T) {
		for _, id := range []string{"", "Hello", "snake_case", "sp ace", "dot.ted", "ünï"} {
			_, err := ir.EncodeAtom(id)
			require.ErrorIs(t, err, ir.ErrInvalidIdentifier, "identifier %q", id)
			_, err = ir.NewAtom(id)
			require.ErrorIs(t, err, ir.ErrInvalidIdentifier, "identifier %q", id)
		}
	})

	t.Run("representation without marker is rejected", func(t *testing.T) {
		for _, repr := range []string{"", "FOO", "__Atom_", "__atom_FOO"} {
			_, err := ir.DecodeAtom(repr)
			require.ErrorIs(t, err, ir.ErrInvalidRepresentation, "representation %q", repr)
		}
	})

	t.Run("atom renders its macro and keeps its identifier", func(t *testing.T) {
		a := ir.MustAtom("hello-world")
		require.Equal(t, "__Atom_HELLO_WORLD", a.Compile())
		require.Equal(t, "hello-world", a.Identifier())
	})

	t.Run("must atom panics on invalid identifier", func(t *testing.T) {
		require.Panics(t, func() { ir.MustAtom("Bad") })
	})
}

func TestAtomTable(t *testing.T) {
	t.Run("indices follow insertion order", func(t *testing.T) {
		tbl, err := ir.NewAtomTable("a", "b", "c")
		require.NoError(t, err)
		require.Equal(t, 3, tbl.Len())
		for i, id := range []string{"a", "b", "c"} {
			got, ok := tbl.Index(ir.MustAtom(id))
			require.True(t, ok)
			require.Equal(t, i, got)
			require.Equal(t, id, tbl.At(i).Identifier())
		}
	})

	t.Run("appending keeps earlier indices stable", func(t *testing.T) {
		tbl := &ir.AtomTable{}
		for k := range 50 {
			idx, err := tbl.Add(fmt.Sprintf("atom-%d", k))
			require.NoError(t, err)
			require.Equal(t, k, idx)
			for j := 0; j <= k; j++ {
				got, ok := tbl.Index(ir.MustAtom(fmt.Sprintf("atom-%d", j)))
				require.True(t, ok)
				require.Equal(t, j, got)
			}
		}
	})

	t.Run("re-adding an atom returns its existing index", func(t *testing.T) {
		tbl, err := ir.NewAtomTable("ok", "error")
		require.NoError(t, err)
		idx, err := tbl.Add("ok")
		require.NoError(t, err)
		require.Zero(t, idx)
		require.Equal(t, 2, tbl.Len())
	})

	t.Run("invalid identifier leaves the table untouched", func(t *testing.T) {
		tbl, err := ir.NewAtomTable("ok")
		require.NoError(t, err)
		_, err = tbl.Add("NOPE")
		require.ErrorIs(t, err, ir.ErrInvalidIdentifier)
		require.Equal(t, 1, tbl.Len())
	})

	t.Run("nil table is empty", func(t *testing.T) {
		var tbl *ir.AtomTable
		require.Zero(t, tbl.Len())
		_, ok := tbl.Index(ir.MustAtom("a"))
		require.False(t, ok)
		for range tbl.All() {
			t.Fatal("unexpected atom")
		}
	})
}
