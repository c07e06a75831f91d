package asn1schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceOfCodecEncodeDecode(t *testing.T) {
	c := newSequenceOfCodec(integerCodec{})
	enc, err := c.encode([]any{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, byte(0x30), enc[0])

	v, n, err := c.decode(enc, 0)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
	require.Equal(t, []any{int64(1), int64(2), int64(3)}, v)
}

func TestSequenceOfCodecEmpty(t *testing.T) {
	c := newSequenceOfCodec(integerCodec{})
	enc, err := c.encode([]any{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x30, 0x00}, enc)

	v, _, err := c.decode(enc, 0)
	require.NoError(t, err)
	require.Len(t, v, 0)
}

func TestSequenceOfCodecNilEncodesEmpty(t *testing.T) {
	c := newSequenceOfCodec(integerCodec{})
	enc, err := c.encode(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x30, 0x00}, enc)
}

func TestSequenceOfCodecOfSequences(t *testing.T) {
	inner := newSequenceCodec([]sequenceMemberCodec{
		{member: ParsedMember{Name: "n"}, codec: integerCodec{}},
	})
	c := newSequenceOfCodec(inner)

	enc, err := c.encode([]any{
		map[string]any{"n": 1},
		map[string]any{"n": 2},
	})
	require.NoError(t, err)

	v, _, err := c.decode(enc, 0)
	require.NoError(t, err)
	require.Equal(t, []any{
		map[string]any{"n": int64(1)},
		map[string]any{"n": int64(2)},
	}, v)
}
