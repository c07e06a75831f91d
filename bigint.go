package asn1schema

/*
bigint.go implements BER's minimal two's-complement signed-integer
framing, grounded on the teacher package's int.go
(encodeIntegerContent/decodeIntegerContent), generalized to operate
on *big.Int unconditionally so arbitrary-precision values round-trip
losslessly (§9 of SPEC_FULL.md), narrowing to a native integer only
when the value fits the safe-integer envelope.

narrowBigInt is written against golang.org/x/exp/constraints.Integer,
the one real third-party runtime dependency this package shares with
the teacher (constr_on.go's Enumeration/Unsigned constraint helpers).
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// encodeSignedBigInt returns the minimal two's-complement big-endian
// encoding of v. Zero encodes as a single 0x00 octet.
func encodeSignedBigInt(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}

	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	abs := new(big.Int).Abs(v)
	n := (abs.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if v.Cmp(min) < 0 {
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	twos := new(big.Int).Add(mod, v)
	b := twos.Bytes()
	for len(b) < n {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// decodeSignedBigInt is the inverse of encodeSignedBigInt: if the
// first octet's high bit is set the value is negative.
func decodeSignedBigInt(content []byte) (*big.Int, error) {
	if len(content) == 0 {
		return nil, newDecodeError(-1, "INTEGER content is empty")
	}

	val := new(big.Int).SetBytes(content)
	if content[0]&0x80 != 0 {
		bitLen := uint(len(content) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		val.Sub(val, twoPow)
	}
	return val, nil
}

// narrowBigInt converts v to T if it fits both T's own range and the
// safe-integer envelope named by the specification; ok is false
// otherwise, signaling the caller to keep the arbitrary-precision
// form.
func narrowBigInt[T constraints.Integer](v *big.Int) (out T, ok bool) {
	if !fitsSafeInt(v) || !v.IsInt64() {
		return out, false
	}
	n := v.Int64()
	out = T(n)
	if int64(out) != n {
		return out, false
	}
	return out, true
}
