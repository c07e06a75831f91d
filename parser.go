package asn1schema

/*
parser.go implements the recursive-descent parser over the token
stream lexer.go produces, following the grammar in §4.3 of
SPEC_FULL.md. The parser accepts a schema file as a sequence of zero
or more "module DEFINITIONS ::= BEGIN ... END" blocks (an expansion
of the single-module grammar production, exercised by the compiler's
per-module/global registry split).
*/

type parser struct {
	lex  *lexer
	cur  token
	peek *token // one token of lookahead, filled lazily
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	if p.peek != nil {
		p.cur = *p.peek
		p.peek = nil
		return nil
	}
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) lookahead() (token, error) {
	if p.peek == nil {
		t, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.peek = &t
	}
	return *p.peek, nil
}

func (p *parser) atEOF() bool { return p.cur.Kind == tokEOF }

func (p *parser) isIdent(text string) bool {
	return p.cur.Kind == tokIdent && uc(p.cur.Text) == text
}

func (p *parser) isSym(text string) bool {
	return p.cur.Kind == tokSym && p.cur.Text == text
}

func (p *parser) expectSym(text string) error {
	if !p.isSym(text) {
		return newParseError(p.cur.Line, p.cur.Column, "expected %q, got %q", text, p.cur.Text)
	}
	return p.advance()
}

func (p *parser) expectIdentKeyword(text string) error {
	if !p.isIdent(text) {
		return newParseError(p.cur.Line, p.cur.Column, "expected %q, got %q", text, p.cur.Text)
	}
	return p.advance()
}

func (p *parser) expectIdent() (string, error) {
	if p.cur.Kind != tokIdent {
		return "", newParseError(p.cur.Line, p.cur.Column, "expected identifier, got %q", p.cur.Text)
	}
	name := p.cur.Text
	return name, p.advance()
}

func (p *parser) expectNumber() (int, error) {
	if p.cur.Kind != tokNumber {
		return 0, newParseError(p.cur.Line, p.cur.Column, "expected number, got %q", p.cur.Text)
	}
	n, err := atoi(p.cur.Text)
	if err != nil {
		return 0, newParseError(p.cur.Line, p.cur.Column, "invalid number %q", p.cur.Text)
	}
	return n, p.advance()
}

// parseSchema parses the entire input as a sequence of modules.
func parseSchema(src string) (map[string]*ParsedModule, []string, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, nil, err
	}

	modules := make(map[string]*ParsedModule)
	var order []string

	for !p.atEOF() {
		mod, err := p.parseModule()
		if err != nil {
			return nil, nil, err
		}
		if _, exists := modules[mod.Name]; !exists {
			order = append(order, mod.Name)
		}
		modules[mod.Name] = mod
	}

	return modules, order, nil
}

func (p *parser) parseModule() (*ParsedModule, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectIdentKeyword("DEFINITIONS"); err != nil {
		return nil, err
	}
	if err := p.expectSym("::="); err != nil {
		return nil, err
	}
	if err := p.expectIdentKeyword("BEGIN"); err != nil {
		return nil, err
	}

	mod := newParsedModule(name)

	for !p.isIdent("END") {
		if p.atEOF() {
			return nil, newParseError(p.cur.Line, p.cur.Column, "unexpected end of input, expected END")
		}
		typeName, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectSym("::="); err != nil {
			return nil, err
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		mod.define(typeName, t)
	}
	if err := p.expectIdentKeyword("END"); err != nil {
		return nil, err
	}

	return mod, nil
}

func (p *parser) parseType() (*ParsedType, error) {
	switch {
	case p.isIdent("INTEGER"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		t := &ParsedType{Kind: KindInteger}
		c, err := p.parseOptionalConstraint()
		if err != nil {
			return nil, err
		}
		t.Constraints = c
		return t, nil

	case p.isIdent("BOOLEAN"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		t := &ParsedType{Kind: KindBoolean}
		c, err := p.parseOptionalConstraint()
		if err != nil {
			return nil, err
		}
		t.Constraints = c
		return t, nil

	case p.isIdent("OCTET"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectIdentKeyword("STRING"); err != nil {
			return nil, err
		}
		t := &ParsedType{Kind: KindOctetString}
		c, err := p.parseOptionalConstraint()
		if err != nil {
			return nil, err
		}
		t.Constraints = c
		return t, nil

	case p.isIdent("NULL"):
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ParsedType{Kind: KindNull}, nil

	case p.isIdent("SEQUENCE"):
		return p.parseSequenceOrSequenceOf()

	case p.isIdent("CHOICE"):
		return p.parseChoice()

	case p.isIdent("ENUMERATED"):
		return p.parseEnumerated()

	case p.cur.Kind == tokIdent:
		name := p.cur.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ParsedType{Kind: KindDefined, ReferencedName: name}, nil

	default:
		return nil, newParseError(p.cur.Line, p.cur.Column, "expected a type, got %q", p.cur.Text)
	}
}

func (p *parser) parseSequenceOrSequenceOf() (*ParsedType, error) {
	if err := p.advance(); err != nil { // consume SEQUENCE
		return nil, err
	}

	// Admit SEQUENCE followed by a size constraint before OF, per the
	// optional grammar extension noted in spec.md §4.3.
	if p.isSym("(") {
		if _, err := p.parseConstraintBody(); err != nil {
			return nil, err
		}
	}

	if p.isIdent("OF") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ParsedType{Kind: KindSequenceOf, Element: elem}, nil
	}

	if err := p.expectSym("{"); err != nil {
		return nil, err
	}

	var members []ParsedMember
	for !p.isSym("}") {
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
		if p.isSym(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectSym("}"); err != nil {
		return nil, err
	}

	return &ParsedType{Kind: KindSequence, Members: members}, nil
}

func (p *parser) parseMember() (ParsedMember, error) {
	name, err := p.expectIdent()
	if err != nil {
		return ParsedMember{}, err
	}

	tag, err := p.parseOptionalTag()
	if err != nil {
		return ParsedMember{}, err
	}

	typ, err := p.parseType()
	if err != nil {
		return ParsedMember{}, err
	}

	m := ParsedMember{Name: name, Type: typ, Tag: tag}

	if p.isIdent("OPTIONAL") {
		m.Optional = true
		if err := p.advance(); err != nil {
			return ParsedMember{}, err
		}
	} else if p.isIdent("DEFAULT") {
		if err := p.advance(); err != nil {
			return ParsedMember{}, err
		}
		v, err := p.parseValue()
		if err != nil {
			return ParsedMember{}, err
		}
		m.HasDefault = true
		m.DefaultValue = v
	}

	return m, nil
}

func (p *parser) parseChoice() (*ParsedType, error) {
	if err := p.advance(); err != nil { // consume CHOICE
		return nil, err
	}
	if err := p.expectSym("{"); err != nil {
		return nil, err
	}

	var alts []ParsedAlternative
	for !p.isSym("}") {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		tag, err := p.parseOptionalTag()
		if err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		alts = append(alts, ParsedAlternative{Name: name, Type: typ, Tag: tag})

		if p.isSym(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectSym("}"); err != nil {
		return nil, err
	}

	return &ParsedType{Kind: KindChoice, Alternatives: alts}, nil
}

func (p *parser) parseEnumerated() (*ParsedType, error) {
	if err := p.advance(); err != nil { // consume ENUMERATED
		return nil, err
	}
	if err := p.expectSym("{"); err != nil {
		return nil, err
	}

	var values []EnumValue
	next := 0
	for !p.isSym("}") {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		num := next
		if p.isSym("(") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			num, err = p.expectNumber()
			if err != nil {
				return nil, err
			}
			if err := p.expectSym(")"); err != nil {
				return nil, err
			}
		}
		values = append(values, EnumValue{Name: name, Number: num})
		next = num + 1

		if p.isSym(",") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectSym("}"); err != nil {
		return nil, err
	}

	return &ParsedType{Kind: KindEnumerated, EnumValues: values}, nil
}

func (p *parser) parseOptionalTag() (*int, error) {
	if !p.isSym("[") {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.expectNumber()
	if err != nil {
		return nil, err
	}
	if err := p.expectSym("]"); err != nil {
		return nil, err
	}
	return &n, nil
}

// parseOptionalConstraint parses "(" ... ")" if present, tolerating
// whitespace before the opening parenthesis (the lexer already skips
// that); constraints are attached to the type token that precedes
// them.
func (p *parser) parseOptionalConstraint() (Constraints, error) {
	if !p.isSym("(") {
		return Constraints{}, nil
	}
	return p.parseConstraintBody()
}

func (p *parser) parseConstraintBody() (Constraints, error) {
	if err := p.expectSym("("); err != nil {
		return Constraints{}, err
	}

	var c Constraints
	if p.isIdent("SIZE") {
		if err := p.advance(); err != nil {
			return Constraints{}, err
		}
		if err := p.expectSym("("); err != nil {
			return Constraints{}, err
		}
		n, err := p.expectNumber()
		if err != nil {
			return Constraints{}, err
		}
		if err := p.expectSym(")"); err != nil {
			return Constraints{}, err
		}
		c.HasSize = true
		c.SizeExact = n
	} else {
		lo, err := p.expectNumber()
		if err != nil {
			return Constraints{}, err
		}
		hi := lo
		if p.isSym("..") {
			if err := p.advance(); err != nil {
				return Constraints{}, err
			}
			hi, err = p.expectNumber()
			if err != nil {
				return Constraints{}, err
			}
		}
		c.HasRange = true
		c.RangeMin = lo
		c.RangeMax = hi
	}

	if err := p.expectSym(")"); err != nil {
		return Constraints{}, err
	}
	return c, nil
}

// parseValue parses a DEFAULT value literal (§4.3). The returned
// value uses the same dynamic shapes encode() accepts for the
// corresponding type, so default substitution requires no further
// translation in the SEQUENCE codec.
func (p *parser) parseValue() (any, error) {
	switch {
	case p.cur.Kind == tokNumber:
		n, err := p.expectNumber()
		return n, err
	case p.isIdent("TRUE"):
		return true, p.advance()
	case p.isIdent("FALSE"):
		return false, p.advance()
	case p.isIdent("NULL"):
		return nil, p.advance()
	case p.cur.Kind == tokString:
		s := p.cur.Text
		return s, p.advance()
	case p.cur.Kind == tokIdent:
		s := p.cur.Text
		return s, p.advance()
	default:
		return nil, newParseError(p.cur.Line, p.cur.Column, "expected a value, got %q", p.cur.Text)
	}
}
