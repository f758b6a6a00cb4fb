package script

import (
	"strconv"
	"strings"
)

// Prologue renders the local bindings that precede a buffer-mode script:
// one "local <name> = <literal>" line per argument, in argument order.
func Prologue(args []Arg) string {
	var b strings.Builder
	for _, arg := range args {
		b.WriteString("local ")
		b.WriteString(arg.Name)
		b.WriteString(" = ")
		writeLiteral(&b, arg.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// Literal renders a single value as Lua source
func Literal(v Value) string {
	var b strings.Builder
	writeLiteral(&b, v)
	return b.String()
}

func writeLiteral(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case nil, Nil:
		b.WriteString("nil")
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case Int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Handle:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case String:
		writeQuoted(b, string(v))
	case Table:
		b.WriteByte('{')
		for i, f := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Key)
			b.WriteString(" = ")
			writeLiteral(b, f.Value)
		}
		b.WriteByte('}')
	case List:
		b.WriteByte('{')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLiteral(b, item)
		}
		b.WriteByte('}')
	default:
		panic("script: unknown value type")
	}
}

// writeQuoted emits a Lua 5.2 string literal. Control bytes use decimal
// escapes; Go's strconv.Quote would emit \u sequences that Lua 5.2 rejects.
func writeQuoted(b *strings.Builder, s string) {
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
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteByte('\\')
				// three digits so a following digit is not read as part of the escape
				b.WriteString(leftPad3(strconv.Itoa(int(c))))
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

func leftPad3(s string) string {
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
