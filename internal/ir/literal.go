package ir

import (
	"math"
	"strconv"
	"strings"
)

// Literal is a primitive scalar: Int, Float, String or Bool.
type Literal interface {
	Value
	// TypeName is the Aura type of the literal's kind.
	TypeName() string
}

type (
	Int    int64
	Float  float64
	String string
	Bool   bool
)

func (i Int) Compile() string {
	if i == math.MinInt64 {
		// -9223372036854775808 is a negated out-of-range constant in C.
		return "INT64_MIN"
	}
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) Compile() string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "NAN"
	case math.IsInf(v, 1):
		return "INFINITY"
	case math.IsInf(v, -1):
		return "-INFINITY"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func (s String) Compile() string { return quoteC(string(s)) }

func (b Bool) Compile() string { return strconv.FormatBool(bool(b)) }

func (Int) TypeName() string    { return "Int" }
func (Float) TypeName() string  { return "Float" }
func (String) TypeName() string { return "String" }
func (Bool) TypeName() string   { return "Bool" }

func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (Bool) isValue()   {}

// quoteC renders s as a C string literal. Bytes >= 0x80 are copied as is so
// UTF-8 text survives.
func quoteC(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '?':
			// "??x" is a trigraph in older C dialects
			if i > 0 && s[i-1] == '?' {
				b.WriteString(`\?`)
			} else {
				b.WriteByte(c)
			}
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteByte('\\')
				b.WriteByte('0' + c>>6)
				b.WriteByte('0' + (c>>3)&7)
				b.WriteByte('0' + c&7)
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
