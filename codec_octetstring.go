package asn1schema

/*
codec_octetstring.go implements the OCTET STRING codec. Encode input
may be a byte buffer, a sequence of byte-range integers, or a
hexadecimal text string; decode output is always a byte buffer (§6 of
SPEC_FULL.md). Size constraints are recorded on the ParsedType but
never enforced here.
*/

type octetStringCodec struct{}

func (octetStringCodec) kind() Kind        { return KindOctetString }
func (octetStringCodec) class() int        { return classUniversal }
func (octetStringCodec) tagNumber() int    { return tagOctetString }
func (octetStringCodec) constructed() bool { return false }

func (c octetStringCodec) encode(value any) ([]byte, error) {
	content, err := toOctets(value)
	if err != nil {
		return nil, err
	}
	return frame(c.class(), c.constructed(), c.tagNumber(), content)
}

func (c octetStringCodec) decode(data []byte, offset int) (any, int, error) {
	content, consumed, err := readFrame(data, offset, c.class(), c.tagNumber())
	if err != nil {
		return nil, 0, err
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, consumed, nil
}

func toOctets(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return hexToBytes(v)
	case []int:
		out := make([]byte, len(v))
		for i, n := range v {
			if n < 0 || n > 255 {
				return nil, newEncodeError("byte-integer sequence value %d out of range for OCTET STRING", n)
			}
			out[i] = byte(n)
		}
		return out, nil
	default:
		return nil, newEncodeError("unsupported value of type %T for OCTET STRING", value)
	}
}
