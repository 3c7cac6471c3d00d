package token

// Kind identifies the variant of a Token.
type Kind uint8

//nolint:revive
const (
	// Literals carrying a string payload.
	INVALID Kind = iota // malformed string or unrecognized byte, payload is the partial text
	ID                  // lowercase-initial identifier
	TYPE                // uppercase-initial identifier
	INT                 // run of ASCII digits
	DEC                 // run of digits, a dot, and more digits
	STR                 // "..."
	OP                  // run of operator symbols, or a lone '#...'
	BOOL                // true | false

	// Fixed punctuation.
	ARROW // ->
	EQUAL // =
	DOT
	COMMA
	COLON
	SEMICOLON
	OPEN_PAREN
	CLOSE_PAREN
	OPEN_SQUARE
	CLOSE_SQUARE
	OPEN_BRACKET
	CLOSE_BRACKET

	// Keywords.
	PUB
	ALIAS
	NEWTYPE
	STRUCT
	UNION
	ENUM
	TRAIT
	IMPL
	OF
	FOR
	VAR
	LET
	DEF
	VIRT
	PURE
	MACRO
	EXTERN
	RETURN
	BREAK
	CONTINUE
	DO

	EOF

	maxKind
)

var kindNames = [...]string{
	INVALID:       "invalid token",
	ID:            "identifier",
	TYPE:          "type identifier",
	INT:           "int literal",
	DEC:           "decimal literal",
	STR:           "string literal",
	OP:            "operator",
	BOOL:          "bool literal",
	ARROW:         "->",
	EQUAL:         "=",
	DOT:           ".",
	COMMA:         ",",
	COLON:         ":",
	SEMICOLON:     ";",
	OPEN_PAREN:    "(",
	CLOSE_PAREN:   ")",
	OPEN_SQUARE:   "[",
	CLOSE_SQUARE:  "]",
	OPEN_BRACKET:  "{",
	CLOSE_BRACKET: "}",
	PUB:           "pub",
	ALIAS:         "alias",
	NEWTYPE:       "newtype",
	STRUCT:        "struct",
	UNION:         "union",
	ENUM:          "enum",
	TRAIT:         "trait",
	IMPL:          "impl",
	OF:            "of",
	FOR:           "for",
	VAR:           "var",
	LET:           "let",
	DEF:           "def",
	VIRT:          "virt",
	PURE:          "pure",
	MACRO:         "macro",
	EXTERN:        "extern",
	RETURN:        "return",
	BREAK:         "break",
	CONTINUE:      "continue",
	DO:            "do",
	EOF:           "<EOF>",
}

// keywords maps the exact spelling of a lowercase word to its keyword kind.
// Words not present here that start with a lowercase letter or '_' are ID.
var keywords = map[string]Kind{
	"true":     BOOL,
	"false":    BOOL,
	"pub":      PUB,
	"alias":    ALIAS,
	"newtype":  NEWTYPE,
	"struct":   STRUCT,
	"union":    UNION,
	"enum":     ENUM,
	"trait":    TRAIT,
	"impl":     IMPL,
	"of":       OF,
	"for":      FOR,
	"var":      VAR,
	"let":      LET,
	"def":      DEF,
	"virt":     VIRT,
	"pure":     PURE,
	"macro":    MACRO,
	"extern":   EXTERN,
	"return":   RETURN,
	"break":    BREAK,
	"continue": CONTINUE,
	"do":       DO,
}

// LookupWord returns the keyword Kind for word, or ID if word is not a
// keyword. "true" and "false" map to BOOL.
func LookupWord(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return ID
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown token"
}

// GoString quotes punctuation and keyword kinds, for use in
// fmt.Sprintf("%#v", kind)-style diagnostics.
func (k Kind) GoString() string {
	switch {
	case k >= ARROW && k <= CLOSE_BRACKET, k >= PUB && k <= DO:
		return "`" + k.String() + "`"
	default:
		return k.String()
	}
}

// Value carries the string payload of the literal-kind tokens (Invalid, Id,
// Type, Int, Dec, Str, Op) and the bool payload of Bool.
type Value struct {
	Raw  string
	Bool bool
}

// Token is a single lexical token: its kind, payload (if any) and the
// position of its first byte.
type Token struct {
	Kind  Kind
	Value Value
	Pos   Pos
}

// Text returns the token's textual representation: the payload for
// literal-carrying kinds, the fixed spelling otherwise.
func (t Token) Text() string {
	switch t.Kind {
	case INVALID, ID, TYPE, INT, DEC, STR, OP:
		return t.Value.Raw
	case BOOL:
		if t.Value.Bool {
			return "true"
		}
		return "false"
	default:
		return t.Kind.String()
	}
}
