package asn1schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexToBytesBasic(t *testing.T) {
	got, err := hexToBytes("01020304")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, got)
}

func TestHexToBytesStripsNonHex(t *testing.T) {
	got, err := hexToBytes("01:02 03-04")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, got)
}

func TestHexToBytesOddLength(t *testing.T) {
	_, err := hexToBytes("010")
	require.Error(t, err)
}

func TestBytesToHexLowercase(t *testing.T) {
	require.Equal(t, "01020304", bytesToHex([]byte{0x01, 0x02, 0x03, 0x04}))
	require.Equal(t, "ff", bytesToHex([]byte{0xFF}))
}

func TestHexRoundTrip(t *testing.T) {
	b := []byte{0x97, 0x35, 0x00, 0xAB, 0xE3, 0x9A}
	require.Equal(t, b, mustHex(t, bytesToHex(b)))
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hexToBytes(s)
	require.NoError(t, err)
	return b
}
