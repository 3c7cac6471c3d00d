package lexer

import (
	"strings"

	"github.com/marc9622/mylangc/lang/token"
)

// String renders every token from the current position to EOF, indented by
// '{'/'}' nesting depth and with a newline after ';' and after each brace.
// It only ever peeks, so it never consumes a token; repeated calls (or a
// subsequent Next/Peek) see the same tokens.
func (t *Tokenizer) String() string {
	var out strings.Builder
	indent := 0
	newLine := true

	writeIndent := func() {
		if newLine {
			for i := 0; i < indent; i++ {
				out.WriteString("    ")
			}
		}
	}

	for i := 0; ; i++ {
		tok := t.Peek(i)
		switch tok.Kind {
		case token.EOF:
			return out.String()
		case token.OPEN_BRACKET:
			writeIndent()
			out.WriteString("{\n")
			indent++
			newLine = true
		case token.CLOSE_BRACKET:
			indent--
			writeIndent()
			out.WriteString("}\n")
			newLine = true
		case token.SEMICOLON:
			writeIndent()
			out.WriteString(";\n")
			newLine = true
		default:
			writeIndent()
			out.WriteString(tok.Text())
			out.WriteByte(' ')
			newLine = false
		}
	}
}
