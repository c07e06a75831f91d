package asn1schema

/*
codec_sequence.go implements the SEQUENCE codec (§4.2 of
SPEC_FULL.md). Values cross the API as an unordered mapping keyed by
member name; encoding walks members in declared order, and decoding
recovers from an optional/default member's decode failure by
retrying at the same offset against the next member.

SEQUENCE member tagging (spec.md §9(a)), resolved as an Open Question
in DESIGN.md: a member's context-specific tag is applied on both
encode and decode, by wrapping the member's own encoding in an outer
constructed context-specific TLV, the same EXPLICIT-style wrapping the
CHOICE codec uses for tagged alternatives.
*/

type sequenceMemberCodec struct {
	member ParsedMember
	codec  Codec
}

type sequenceCodec struct {
	members []sequenceMemberCodec
}

func newSequenceCodec(members []sequenceMemberCodec) *sequenceCodec {
	return &sequenceCodec{members: members}
}

func (*sequenceCodec) kind() Kind        { return KindSequence }
func (*sequenceCodec) class() int        { return classUniversal }
func (*sequenceCodec) tagNumber() int    { return tagSequence }
func (*sequenceCodec) constructed() bool { return true }

func (c *sequenceCodec) encode(value any) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, newEncodeError("unsupported value of type %T for SEQUENCE", value)
	}

	var content []byte
	for _, mc := range c.members {
		v, present := m[mc.member.Name]
		switch {
		case present:
			enc, err := encodeMember(mc, v)
			if err != nil {
				return nil, wrapEncodeError(err, "SEQUENCE member %q", mc.member.Name)
			}
			content = append(content, enc...)
		case mc.member.Optional:
			continue
		case mc.member.HasDefault:
			enc, err := encodeMember(mc, mc.member.DefaultValue)
			if err != nil {
				return nil, wrapEncodeError(err, "SEQUENCE member %q default value", mc.member.Name)
			}
			content = append(content, enc...)
		default:
			return nil, newEncodeError("missing required member %q", mc.member.Name)
		}
	}

	return frame(c.class(), c.constructed(), c.tagNumber(), content)
}

// encodeMember applies the member's context-specific tag override, if
// any, by re-wrapping the member codec's natural encoding with an
// outer constructed context-specific TLV (mirroring how CHOICE
// alternative tagging is applied).
func encodeMember(mc sequenceMemberCodec, value any) ([]byte, error) {
	inner, err := mc.codec.encode(value)
	if err != nil {
		return nil, err
	}
	if mc.member.Tag == nil {
		return inner, nil
	}
	return frame(classContextSpecific, true, *mc.member.Tag, inner)
}

func decodeMember(mc sequenceMemberCodec, data []byte, offset int) (any, int, error) {
	if mc.member.Tag == nil {
		return mc.codec.decode(data, offset)
	}

	content, consumed, err := readFrame(data, offset, classContextSpecific, *mc.member.Tag)
	if err != nil {
		return nil, 0, err
	}
	v, _, err := mc.codec.decode(content, 0)
	if err != nil {
		return nil, 0, err
	}
	return v, consumed, nil
}

func (c *sequenceCodec) decode(data []byte, offset int) (any, int, error) {
	content, consumed, err := readFrame(data, offset, c.class(), c.tagNumber())
	if err != nil {
		return nil, 0, err
	}

	result := make(map[string]any, len(c.members))
	pos := 0

	for _, mc := range c.members {
		if pos >= len(content) {
			if mc.member.Optional {
				continue
			}
			if mc.member.HasDefault {
				result[mc.member.Name] = mc.member.DefaultValue
				continue
			}
			return nil, 0, newDecodeError(offset+pos, "missing required member %q", mc.member.Name)
		}

		v, n, err := decodeMember(mc, content, pos)
		if err != nil {
			if mc.member.Optional {
				continue
			}
			if mc.member.HasDefault {
				result[mc.member.Name] = mc.member.DefaultValue
				continue
			}
			return nil, 0, wrapDecodeError(err, offset+pos, "SEQUENCE member %q", mc.member.Name)
		}

		result[mc.member.Name] = v
		pos += n
	}

	// Trailing bytes inside the SEQUENCE's length window belong to the
	// enclosing frame's slack, per spec.md §4.2, and are ignored.
	return result, consumed, nil
}
