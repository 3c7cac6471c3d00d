// Package lexer turns a byte stream into a sequence of lang/token.Tokens.
//
// The scanner is written in the spirit of go/scanner, with one scan function
// per token class standing in for the tokenizer states IsEmpty (scan,
// skipTrivia), IsId (scanWord), IsType (scanType), IsString (scanString),
// IsNumber and IsDecimal (scanNumber), IsOperator (scanOperator) and
// IsComment (skipLineComment, skipBlockComment). It looks at most two bytes
// ahead of what it has consumed: the second byte is needed to tell "3.5"
// from "3." and to stop an operator run before "//", "/*" or "->". There is
// no error recovery: a malformed construct becomes an INVALID token and is
// left for the parser to reject.
package lexer

import (
	"bufio"
	"io"

	"github.com/marc9622/mylangc/lang/token"
)

const operatorSymbols = "+-*/<>="

func isOperatorSymbol(b byte) bool {
	for i := 0; i < len(operatorSymbols); i++ {
		if operatorSymbols[i] == b {
			return true
		}
	}
	return false
}

func isDelimiter(b byte) bool {
	switch b {
	case ',', ':', ';', '(', ')', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}

func delimiterKind(b byte) token.Kind {
	switch b {
	case ',':
		return token.COMMA
	case ':':
		return token.COLON
	case ';':
		return token.SEMICOLON
	case '(':
		return token.OPEN_PAREN
	case ')':
		return token.CLOSE_PAREN
	case '[':
		return token.OPEN_SQUARE
	case ']':
		return token.CLOSE_SQUARE
	case '{':
		return token.OPEN_BRACKET
	case '}':
		return token.CLOSE_BRACKET
	default:
		panic("lexer: not a delimiter")
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

func isAlnum(b byte) bool { return isDigit(b) || isUpper(b) || isLower(b) }

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Tokenizer wraps a buffered byte source and produces tokens on demand. The
// zero value is not usable; construct one with New.
type Tokenizer struct {
	r       *bufio.Reader
	tracker token.Tracker
	peeked  []token.Token
}

// New wraps src in a Tokenizer. src is read lazily, one token at a time.
func New(src io.Reader) *Tokenizer {
	// Column increments precede reads, so the tracker starts at line 1,
	// column 0 (the state IncLine leaves behind) and the first byte read
	// lands on column 1, just like the first byte of every later line.
	var tracker token.Tracker
	tracker.IncLine()
	return &Tokenizer{
		r:       bufio.NewReader(src),
		tracker: tracker,
	}
}

// Next returns and consumes the next token. Once the source is exhausted it
// returns EOF repeatedly.
func (t *Tokenizer) Next() token.Token {
	if len(t.peeked) > 0 {
		tok := t.peeked[0]
		t.peeked = t.peeked[1:]
		return tok
	}
	return t.scan()
}

// Peek returns the token that would be produced by the (n+1)-th successive
// call to Next, without consuming any tokens. Peeked tokens are buffered and
// reused by subsequent calls to Next or Peek.
func (t *Tokenizer) Peek(n int) token.Token {
	for len(t.peeked) <= n {
		t.peeked = append(t.peeked, t.scan())
	}
	return t.peeked[n]
}

// ConsumePeeked drops the oldest buffered peeked token, as if it had been
// returned by Next. It panics if no token is currently buffered; callers use
// it only after a matching Peek confirmed a token is there to commit to.
func (t *Tokenizer) ConsumePeeked() {
	if len(t.peeked) == 0 {
		panic("lexer: ConsumePeeked with no buffered token")
	}
	t.peeked = t.peeked[1:]
}

func (t *Tokenizer) readByte() (byte, bool) {
	b, err := t.r.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

func (t *Tokenizer) peekByte() (byte, bool) {
	b, err := t.r.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func (t *Tokenizer) unreadByte() {
	_ = t.r.UnreadByte()
}

func (t *Tokenizer) make(kind token.Kind, pos token.Pos, value token.Value) token.Token {
	return token.Token{Kind: kind, Value: value, Pos: pos}
}

// scan produces exactly one token, skipping whitespace and comments first.
func (t *Tokenizer) scan() token.Token {
	if !t.skipTrivia() {
		return t.make(token.EOF, t.tracker.Pos(), token.Value{})
	}

	c, ok := t.readByte()
	if !ok {
		return t.make(token.EOF, t.tracker.Pos(), token.Value{})
	}
	t.tracker.IncChar(1)
	pos := t.tracker.Pos()

	switch {
	case c == '"':
		return t.scanString(pos)
	case c == '-':
		if n, ok := t.peekByte(); ok && n == '>' {
			t.readByte()
			t.tracker.IncChar(1)
			return t.make(token.ARROW, pos, token.Value{})
		}
		return t.scanOperator(pos, c)
	case c == '=':
		if n, ok := t.peekByte(); ok && isOperatorSymbol(n) {
			return t.scanOperator(pos, c)
		}
		return t.make(token.EQUAL, pos, token.Value{})
	case c == '.':
		return t.make(token.DOT, pos, token.Value{})
	case isDigit(c):
		return t.scanNumber(pos, c)
	case isOperatorSymbol(c) || c == '#':
		return t.scanOperator(pos, c)
	case isDelimiter(c):
		return t.make(delimiterKind(c), pos, token.Value{})
	case isUpper(c):
		return t.scanType(pos, c)
	case isLower(c) || c == '_':
		return t.scanWord(pos, c)
	default:
		return t.make(token.INVALID, pos, token.Value{Raw: string(c)})
	}
}

// skipTrivia consumes whitespace and line/block comments until either a
// significant byte is available (returns true) or the source is exhausted
// (returns false).
func (t *Tokenizer) skipTrivia() bool {
	for {
		c, ok := t.peekByte()
		if !ok {
			return false
		}

		switch {
		case c == '\n':
			t.readByte()
			t.tracker.IncLine()
		case isWhitespace(c):
			t.readByte()
			t.tracker.IncChar(1)
		default:
			if !t.maybeSkipComment() {
				return true
			}
		}
	}
}

// maybeSkipComment consumes a line or block comment starting at the current
// position, if there is one, and reports whether it did.
func (t *Tokenizer) maybeSkipComment() bool {
	c, _ := t.peekByte()
	if c != '/' {
		return false
	}

	// one byte of lookahead past the leading '/' is needed to decide.
	t.readByte()
	n, ok := t.peekByte()
	if !ok || (n != '/' && n != '*') {
		t.unreadByte()
		return false
	}
	t.readByte()
	t.tracker.IncChar(2)

	if n == '/' {
		t.skipLineComment()
	} else {
		t.skipBlockComment(1)
	}
	return true
}

// skipLineComment consumes bytes up to and including the next newline, or to
// EOF. depth is always preserved by the caller for nested block comments.
func (t *Tokenizer) skipLineComment() {
	for {
		c, ok := t.peekByte()
		if !ok {
			return
		}
		t.readByte()
		if c == '\n' {
			t.tracker.IncLine()
			return
		}
		t.tracker.IncChar(1)
	}
}

// skipBlockComment consumes a block comment body after the opening "/*",
// nesting to the given depth. A line comment ("//") inside a block comment
// ends at the next newline without closing the block.
func (t *Tokenizer) skipBlockComment(depth int) {
	for depth > 0 {
		c, ok := t.peekByte()
		if !ok {
			return
		}

		switch c {
		case '\n':
			t.readByte()
			t.tracker.IncLine()
		case '/':
			t.readByte()
			if n, ok := t.peekByte(); ok && n == '/' {
				t.readByte()
				t.tracker.IncChar(2)
				t.skipLineComment()
			} else if ok && n == '*' {
				t.readByte()
				t.tracker.IncChar(2)
				depth++
			} else {
				t.tracker.IncChar(1)
			}
		case '*':
			t.readByte()
			if n, ok := t.peekByte(); ok && n == '/' {
				t.readByte()
				t.tracker.IncChar(2)
				depth--
			} else {
				t.tracker.IncChar(1)
			}
		default:
			t.readByte()
			t.tracker.IncChar(1)
		}
	}
}

// scanString scans the body of a "..." literal, having already consumed the
// opening quote at pos.
func (t *Tokenizer) scanString(pos token.Pos) token.Token {
	var word []byte
	for {
		c, ok := t.readByte()
		if !ok {
			return t.make(token.INVALID, pos, token.Value{Raw: string(word)})
		}
		if c == '\n' {
			t.tracker.IncLine()
			return t.make(token.INVALID, pos, token.Value{Raw: string(word)})
		}
		if c == '"' {
			t.tracker.IncChar(1)
			return t.make(token.STR, pos, token.Value{Raw: string(word)})
		}
		t.tracker.IncChar(1)
		word = append(word, c)
	}
}

// scanNumber scans an Int, possibly absorbing a '.' and following digits to
// become a Dec. first is the already-consumed leading digit.
func (t *Tokenizer) scanNumber(pos token.Pos, first byte) token.Token {
	word := []byte{first}
	isDec := false

	for {
		c, ok := t.peekByte()
		if !ok {
			break
		}
		if isDigit(c) {
			t.readByte()
			t.tracker.IncChar(1)
			word = append(word, c)
			continue
		}
		if !isDec && c == '.' {
			// only absorb the dot if followed by a digit.
			if !t.hasSecondByteDigit() {
				break
			}
			t.readByte() // '.'
			d, _ := t.readByte()
			t.tracker.IncChar(2)
			word = append(word, '.', d)
			isDec = true
			continue
		}
		break
	}

	kind := token.INT
	if isDec {
		kind = token.DEC
	}
	return t.make(kind, pos, token.Value{Raw: string(word)})
}

// hasSecondByteDigit reports whether the byte after the next one (i.e. the
// byte following a '.' that hasn't been consumed yet) is a digit, without
// consuming anything.
func (t *Tokenizer) hasSecondByteDigit() bool {
	b, err := t.r.Peek(2)
	if err != nil || len(b) < 2 {
		return false
	}
	return isDigit(b[1])
}

// scanOperator scans a run of operator symbols (or a lone '#' followed by a
// run of operator symbols), having already consumed first at pos.
func (t *Tokenizer) scanOperator(pos token.Pos, first byte) token.Token {
	word := []byte{first}
	for {
		c, ok := t.peekByte()
		if !ok {
			break
		}
		if !isOperatorSymbol(c) {
			break
		}
		if n, ok2 := t.secondPeekByte(); ok2 {
			if c == '/' && (n == '/' || n == '*') {
				break
			}
			if c == '-' && n == '>' {
				break
			}
		}
		t.readByte()
		t.tracker.IncChar(1)
		word = append(word, c)
	}
	return t.make(token.OP, pos, token.Value{Raw: string(word)})
}

func (t *Tokenizer) secondPeekByte() (byte, bool) {
	b, err := t.r.Peek(2)
	if err != nil || len(b) < 2 {
		return 0, false
	}
	return b[1], true
}

// scanWord scans an Id or a keyword, having already consumed first at pos.
func (t *Tokenizer) scanWord(pos token.Pos, first byte) token.Token {
	word := []byte{first}
	for {
		c, ok := t.peekByte()
		if !ok || !(isAlnum(c) || c == '_') {
			break
		}
		t.readByte()
		t.tracker.IncChar(1)
		word = append(word, c)
	}

	lit := string(word)
	kind := token.LookupWord(lit)
	if kind == token.BOOL {
		return t.make(token.BOOL, pos, token.Value{Bool: lit == "true"})
	}
	if kind != token.ID {
		return t.make(kind, pos, token.Value{})
	}
	return t.make(token.ID, pos, token.Value{Raw: lit})
}

// scanType scans a Type identifier, having already consumed first at pos.
// Unlike Id, Type continuation does not accept '_'.
func (t *Tokenizer) scanType(pos token.Pos, first byte) token.Token {
	word := []byte{first}
	for {
		c, ok := t.peekByte()
		if !ok || !isAlnum(c) {
			break
		}
		t.readByte()
		t.tracker.IncChar(1)
		word = append(word, c)
	}
	return t.make(token.TYPE, pos, token.Value{Raw: string(word)})
}
