package asn1schema

/*
lexer.go implements the tokenizer for ASN.1 schema text (§4.3 of
SPEC_FULL.md). It is a character-by-character hand-written scanner in
the same recursive-descent spirit as the oba package's LDAP schema
tokenizer (internal/schema/parser.go's tokenize), extended with
line/column tracking because ParseError must carry both (an LDAP
schema description is always a single line and has no need for it).
*/

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokSym // ::=  {  }  (  )  [  ]  ,  ..
)

type token struct {
	Kind   tokenKind
	Text   string
	Line   int
	Column int
}

type lexer struct {
	src    string
	pos    int
	line   int
	column int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, pos: 0, line: 1, column: 1}
}

func (l *lexer) peekByte() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) advance() (byte, bool) {
	c, ok := l.peekByte()
	if !ok {
		return 0, false
	}
	l.pos++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c, true
}

// skipInsignificant consumes whitespace and "--"-to-end-of-line
// comments between tokens.
func (l *lexer) skipInsignificant() {
	for {
		c, ok := l.peekByte()
		if !ok {
			return
		}
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			l.advance()
			continue
		}
		if c == '-' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '-' {
			for {
				c, ok := l.peekByte()
				if !ok || c == '\n' {
					break
				}
				l.advance()
			}
			continue
		}
		return
	}
}

// next returns the next token in the input, or a tokEOF token once
// the input is exhausted.
func (l *lexer) next() (token, error) {
	l.skipInsignificant()

	line, col := l.line, l.column
	c, ok := l.peekByte()
	if !ok {
		return token{Kind: tokEOF, Line: line, Column: col}, nil
	}

	switch {
	case isIdentStart(c):
		start := l.pos
		for {
			c, ok := l.peekByte()
			if !ok || !isIdentPart(c) {
				break
			}
			l.advance()
		}
		return token{Kind: tokIdent, Text: l.src[start:l.pos], Line: line, Column: col}, nil

	case isASCIIDigit(c) || (c == '-' && l.pos+1 < len(l.src) && isASCIIDigit(l.src[l.pos+1])):
		start := l.pos
		l.advance() // first digit or '-'
		for {
			c, ok := l.peekByte()
			if !ok || !isASCIIDigit(c) {
				break
			}
			l.advance()
		}
		return token{Kind: tokNumber, Text: l.src[start:l.pos], Line: line, Column: col}, nil

	case c == '"':
		l.advance()
		start := l.pos
		for {
			c, ok := l.peekByte()
			if !ok {
				return token{}, newParseError(line, col, "unterminated string literal")
			}
			if c == '"' {
				break
			}
			l.advance()
		}
		text := l.src[start:l.pos]
		l.advance() // closing quote
		return token{Kind: tokString, Text: text, Line: line, Column: col}, nil

	case c == ':':
		if l.pos+2 < len(l.src) && l.src[l.pos+1] == ':' && l.src[l.pos+2] == '=' {
			l.advance()
			l.advance()
			l.advance()
			return token{Kind: tokSym, Text: "::=", Line: line, Column: col}, nil
		}
		return token{}, newParseError(line, col, "unexpected character %q", c)

	case c == '.':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '.' {
			l.advance()
			l.advance()
			return token{Kind: tokSym, Text: "..", Line: line, Column: col}, nil
		}
		return token{}, newParseError(line, col, "unexpected character %q", c)

	case c == '{' || c == '}' || c == '(' || c == ')' || c == '[' || c == ']' || c == ',':
		l.advance()
		return token{Kind: tokSym, Text: string(c), Line: line, Column: col}, nil

	default:
		return token{}, newParseError(line, col, "unexpected character %q", c)
	}
}
