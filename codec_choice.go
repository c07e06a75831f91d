package asn1schema

/*
codec_choice.go implements the CHOICE codec (§4.2 of SPEC_FULL.md).
CHOICE has no intrinsic tag. A tagged alternative is wrapped with an
outer constructed context-specific tag on encode (EXPLICIT-style, per
the teacher's tagging-mode note in spec.md §9) and unwrapped on
decode; an untagged alternative is encoded/decoded directly using its
own codec's intrinsic tag.
*/

type choiceAlternativeCodec struct {
	alt   ParsedAlternative
	codec Codec
}

type choiceCodec struct {
	alternatives []choiceAlternativeCodec
	// byUntaggedTag dispatches on an alternative's own intrinsic tag.
	byUntaggedTag map[decodedTagKey]int
	// byExplicitTag dispatches on the outer context-specific tag this
	// codec itself wraps tagged alternatives with.
	byExplicitTag map[int]int
}

type decodedTagKey struct {
	Class int
	Tag   int
}

func newChoiceCodec(alts []choiceAlternativeCodec) (*choiceCodec, error) {
	c := &choiceCodec{
		alternatives:  alts,
		byUntaggedTag: make(map[decodedTagKey]int),
		byExplicitTag: make(map[int]int),
	}

	for i, a := range alts {
		if a.alt.Tag != nil {
			if _, dup := c.byExplicitTag[*a.alt.Tag]; dup {
				return nil, newCompileError("duplicate CHOICE alternative tag [%d]", *a.alt.Tag)
			}
			c.byExplicitTag[*a.alt.Tag] = i
			continue
		}

		tc, ok := a.codec.(taggedCodec)
		if !ok {
			return nil, newCompileError("CHOICE alternative %q has no intrinsic tag and none was declared", a.alt.Name)
		}
		key := decodedTagKey{Class: tc.class(), Tag: tc.tagNumber()}
		if _, dup := c.byUntaggedTag[key]; dup {
			return nil, newCompileError("duplicate CHOICE alternative tag for %q", a.alt.Name)
		}
		c.byUntaggedTag[key] = i
	}

	return c, nil
}

func (*choiceCodec) kind() Kind { return KindChoice }

func (c *choiceCodec) encode(value any) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok || len(m) != 1 {
		return nil, newEncodeError("CHOICE value must be a single-entry mapping, got %T", value)
	}

	var name string
	var v any
	for k, val := range m {
		name, v = k, val
	}

	for _, a := range c.alternatives {
		if a.alt.Name != name {
			continue
		}
		inner, err := a.codec.encode(v)
		if err != nil {
			return nil, wrapEncodeError(err, "CHOICE alternative %q", name)
		}
		if a.alt.Tag == nil {
			return inner, nil
		}
		return frame(classContextSpecific, true, *a.alt.Tag, inner)
	}

	return nil, newEncodeError("unknown CHOICE alternative %q", name)
}

func (c *choiceCodec) decode(data []byte, offset int) (any, int, error) {
	dt, err := peekTag(data, offset)
	if err != nil {
		return nil, 0, err
	}

	if dt.Class == classContextSpecific {
		if idx, ok := c.byExplicitTag[dt.Number]; ok {
			a := c.alternatives[idx]
			content, consumed, err := readFrame(data, offset, classContextSpecific, *a.alt.Tag)
			if err != nil {
				return nil, 0, err
			}
			v, _, err := a.codec.decode(content, 0)
			if err != nil {
				return nil, 0, wrapDecodeError(err, offset, "CHOICE alternative %q", a.alt.Name)
			}
			return map[string]any{a.alt.Name: v}, consumed, nil
		}
	}

	key := decodedTagKey{Class: dt.Class, Tag: dt.Number}
	if idx, ok := c.byUntaggedTag[key]; ok {
		a := c.alternatives[idx]
		v, consumed, err := a.codec.decode(data, offset)
		if err != nil {
			return nil, 0, wrapDecodeError(err, offset, "CHOICE alternative %q", a.alt.Name)
		}
		return map[string]any{a.alt.Name: v}, consumed, nil
	}

	return nil, 0, newDecodeError(offset, "no choice found for tag %d", dt.Number)
}
