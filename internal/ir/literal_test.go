package ir_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/calumari/aurac/internal/ir"
	"github.com/stretchr/testify/require"
)

// unquoteC parses the subset of C string literal syntax the renderer emits.
func unquoteC(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("not a string literal: %s", s)
	}
	s = s[1 : len(s)-1]
	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			return "", fmt.Errorf("unescaped quote at %d", i)
		}
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("dangling backslash")
		}
		switch s[i] {
		case '"', '\\', '?':
			out = append(out, s[i])
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '0', '1', '2', '3':
			if i+2 >= len(s) {
				return "", fmt.Errorf("short octal escape")
			}
			v, err := strconv.ParseUint(s[i:i+3], 8, 8)
			if err != nil {
				return "", err
			}
			out = append(out, byte(v))
			i += 2
		default:
			return "", fmt.Errorf("unknown escape \\%c", s[i])
		}
	}
	return string(out), nil
}

func TestLiteralCompile(t *testing.T) {
	t.Run("scalars render as C literals", func(t *testing.T) {
		require.Equal(t, "42", ir.Int(42).Compile())
		require.Equal(t, "-7", ir.Int(-7).Compile())
		require.Equal(t, "3.14", ir.Float(3.14).Compile())
		require.Equal(t, "5.0", ir.Float(5).Compile())
		require.Equal(t, "-0.0", ir.Float(math.Copysign(0, -1)).Compile())
		require.Equal(t, "1e+21", ir.Float(1e21).Compile())
		require.Equal(t, `"hello"`, ir.String("hello").Compile())
		require.Equal(t, "true", ir.Bool(true).Compile())
		require.Equal(t, "false", ir.Bool(false).Compile())
	})

	t.Run("values without a C spelling use header constants", func(t *testing.T) {
		require.Equal(t, "INT64_MIN", ir.Int(math.MinInt64).Compile())
		require.Equal(t, "NAN", ir.Float(math.NaN()).Compile())
		require.Equal(t, "INFINITY", ir.Float(math.Inf(1)).Compile())
		require.Equal(t, "-INFINITY", ir.Float(math.Inf(-1)).Compile())
	})

	t.Run("strings are escaped", func(t *testing.T) {
		require.Equal(t, `"say \"hi\"\n"`, ir.String("say \"hi\"\n").Compile())
		require.Equal(t, `"C:\\dir\t"`, ir.String("C:\\dir\t").Compile())
		require.Equal(t, `"\000\033\177"`, ir.String("\x00\x1b\x7f").Compile())
		require.Equal(t, `"what?\?!"`, ir.String("what??!").Compile())
		require.Equal(t, `"héllo"`, ir.String("héllo").Compile())
	})

	t.Run("kinds map to aura type names", func(t *testing.T) {
		require.Equal(t, "Int", ir.Int(0).TypeName())
		require.Equal(t, "Float", ir.Float(0).TypeName())
		require.Equal(t, "String", ir.String("").TypeName())
		require.Equal(t, "Bool", ir.Bool(false).TypeName())
	})
}

func TestLiteralRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	t.Run("integers parse back to the same value", func(t *testing.T) {
		values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64 + 1}
		for range 200 {
			values = append(values, int64(r.Uint64()))
		}
		for _, v := range values {
			got, err := strconv.ParseInt(ir.Int(v).Compile(), 10, 64)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	})

	t.Run("floats parse back to the same value", func(t *testing.T) {
		values := []float64{0, 1, -2.5, math.MaxFloat64, math.SmallestNonzeroFloat64, 1e-7, 123456789}
		for range 200 {
			values = append(values, math.Float64frombits(r.Uint64()))
		}
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			got, err := strconv.ParseFloat(ir.Float(v).Compile(), 64)
			require.NoError(t, err)
			require.Equal(t, math.Float64bits(v), math.Float64bits(got))
		}
	})

	t.Run("strings parse back to the same bytes", func(t *testing.T) {
		for range 300 {
			b := make([]byte, r.IntN(32))
			for i := range b {
				b[i] = byte(r.UintN(256))
			}
			got, err := unquoteC(ir.String(b).Compile())
			require.NoError(t, err)
			require.Equal(t, string(b), got)
		}
	})

	t.Run("booleans parse back to the same value", func(t *testing.T) {
		for _, v := range []bool{true, false} {
			got, err := strconv.ParseBool(ir.Bool(v).Compile())
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	})
}
