package asn1schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullCodecEncodeDecode(t *testing.T) {
	c := nullCodec{}

	enc, err := c.encode(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x05, 0x00}, enc)

	enc2, err := c.encode("absent")
	require.NoError(t, err)
	require.Equal(t, enc, enc2)

	v, n, err := c.decode(enc, 0)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
	require.Nil(t, v)
}

func TestNullCodecRejectsOtherString(t *testing.T) {
	c := nullCodec{}
	_, err := c.encode("present")
	require.Error(t, err)
}

func TestNullCodecRejectsNonEmptyContent(t *testing.T) {
	c := nullCodec{}
	_, _, err := c.decode([]byte{0x05, 0x01, 0x00}, 0)
	require.Error(t, err)
}
