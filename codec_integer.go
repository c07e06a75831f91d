package asn1schema

/*
codec_integer.go implements the INTEGER codec (§4.2 of
SPEC_FULL.md), grounded on the teacher package's int.go for the
native/arbitrary-precision duality but built against *big.Int
directly rather than a custom Integer wrapper type, since values
cross this package's API as plain Go values (int64 or *big.Int), not
as a dedicated ASN.1 value type.
*/

import "math/big"

type integerCodec struct{}

func (integerCodec) kind() Kind        { return KindInteger }
func (integerCodec) class() int        { return classUniversal }
func (integerCodec) tagNumber() int    { return tagInteger }
func (integerCodec) constructed() bool { return false }

func (c integerCodec) encode(value any) ([]byte, error) {
	big, err := toBigInt(value)
	if err != nil {
		return nil, err
	}
	content := encodeSignedBigInt(big)
	return frame(c.class(), c.constructed(), c.tagNumber(), content)
}

func (c integerCodec) decode(data []byte, offset int) (any, int, error) {
	content, consumed, err := readFrame(data, offset, c.class(), c.tagNumber())
	if err != nil {
		return nil, 0, err
	}
	if len(content) == 0 {
		return nil, 0, newDecodeError(offset, "INTEGER content is empty")
	}

	v, err := decodeSignedBigInt(content)
	if err != nil {
		return nil, 0, wrapDecodeError(err, offset, "invalid INTEGER content")
	}

	if n, ok := narrowBigInt[int64](v); ok {
		return n, consumed, nil
	}
	return v, consumed, nil
}

// toBigInt accepts the shapes the specification requires INTEGER
// encode to accept: a native integer or an arbitrary-precision one.
func toBigInt(value any) (*big.Int, error) {
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return big.NewInt(int64(v)), nil
	case uint16:
		return big.NewInt(int64(v)), nil
	case uint32:
		return big.NewInt(int64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case *big.Int:
		if v == nil {
			return nil, newEncodeError("nil *big.Int value for INTEGER")
		}
		return v, nil
	case big.Int:
		return &v, nil
	default:
		return nil, newEncodeError("unsupported value of type %T for INTEGER", value)
	}
}
