package asn1schema

/*
codec.go defines the Codec interface compiled types implement and the
small amount of shared tag/length framing every codec uses to wrap
its content octets, grounded on the teacher package's per-type files
(int.go, bool.go et al.) which likewise separate "write the content"
from "frame it with a tag and length".
*/

// Codec is the compiled, immutable form of a ParsedType. encode and
// decode are the only operations the specification facade needs;
// codecs hold no per-message state and are safe to share across
// concurrent calls (§5 of SPEC_FULL.md).
type Codec interface {
	// encode returns the BER encoding of value.
	encode(value any) ([]byte, error)

	// decode reads one value starting at data[offset] and returns the
	// decoded value along with the number of bytes consumed.
	decode(data []byte, offset int) (value any, consumed int, err error)

	// kind reports which ParsedType variant this codec implements.
	kind() Kind
}

// taggedCodec is implemented by codecs with an intrinsic universal
// tag (everything except CHOICE, which has none of its own).
type taggedCodec interface {
	Codec
	class() int
	tagNumber() int
	constructed() bool
}

// frame wraps content with class/tag/length and returns the full TLV
// encoding.
func frame(class int, constructed bool, tagNum int, content []byte) ([]byte, error) {
	out := encodeTag(nil, class, constructed, tagNum)
	out, err := encodeLength(out, len(content))
	if err != nil {
		return nil, err
	}
	return append(out, content...), nil
}

// readFrame reads one TLV starting at data[offset], verifying the
// identifier matches (wantClass, wantTag) exactly. It returns the
// content slice, the total number of bytes the TLV occupied, and an
// error.
func readFrame(data []byte, offset int, wantClass, wantTag int) (content []byte, consumed int, err error) {
	dt, err := decodeTag(data, offset)
	if err != nil {
		return nil, 0, err
	}
	if dt.Class != wantClass || dt.Number != wantTag {
		return nil, 0, newDecodeError(offset, "tag mismatch: got class %d tag %d, want class %d tag %d",
			dt.Class, dt.Number, wantClass, wantTag)
	}

	lenOffset := offset + dt.Len
	length, lenLen, err := decodeLength(data, lenOffset)
	if err != nil {
		return nil, 0, err
	}

	contentStart := lenOffset + lenLen
	contentEnd := contentStart + length
	if contentEnd > len(data) {
		return nil, 0, newDecodeError(offset, "unexpected end of data: need %d bytes, have %d", contentEnd, len(data))
	}

	return data[contentStart:contentEnd], contentEnd - offset, nil
}

// peekTag reads just the identifier octet(s) at offset without
// consuming content, used by the CHOICE codec to dispatch on the
// next tag before committing to an alternative.
func peekTag(data []byte, offset int) (decodedTag, error) {
	return decodeTag(data, offset)
}
