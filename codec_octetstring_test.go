package asn1schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOctetStringCodecSeedScenario(t *testing.T) {
	c := octetStringCodec{}
	enc, err := c.encode("01020304")
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x04, 0x01, 0x02, 0x03, 0x04}, enc)
}

func TestOctetStringCodecAcceptsByteBuffer(t *testing.T) {
	c := octetStringCodec{}
	enc, err := c.encode([]byte{0xAB, 0xCD})
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x02, 0xAB, 0xCD}, enc)
}

func TestOctetStringCodecAcceptsByteIntegerSequence(t *testing.T) {
	c := octetStringCodec{}
	enc, err := c.encode([]int{1, 2, 255})
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x03, 0x01, 0x02, 0xFF}, enc)
}

func TestOctetStringCodecRejectsOutOfRangeByteInteger(t *testing.T) {
	c := octetStringCodec{}
	_, err := c.encode([]int{256})
	require.Error(t, err)
}

func TestOctetStringCodecRejectsOddHex(t *testing.T) {
	c := octetStringCodec{}
	_, err := c.encode("abc")
	require.Error(t, err)
}

func TestOctetStringCodecDecodeAlwaysYieldsByteBuffer(t *testing.T) {
	c := octetStringCodec{}
	enc, err := c.encode([]byte{1, 2, 3})
	require.NoError(t, err)
	v, n, err := c.decode(enc, 0)
	require.NoError(t, err)
	require.Equal(t, len(enc), n)
	require.IsType(t, []byte(nil), v)
	require.Equal(t, []byte{1, 2, 3}, v)
}

func TestOctetStringCodecLargeBuffersRoundTrip(t *testing.T) {
	c := octetStringCodec{}
	identifier := make([]byte, 20)
	for i := range identifier {
		identifier[i] = byte(i*7 + 1)
	}
	checksum := make([]byte, 32)
	for i := range checksum {
		checksum[i] = byte(i*13 + 3)
	}

	for _, buf := range [][]byte{identifier, checksum} {
		enc, err := c.encode(buf)
		require.NoError(t, err)
		v, _, err := c.decode(enc, 0)
		require.NoError(t, err)
		require.Equal(t, buf, v)
	}
}
