package asn1schema

/*
common.go contains aliases and small helpers shared by every file in
this package, grounded on the same "official import aliases" idiom
used by the teacher package's common.go.
*/

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

var (
	atoi    func(string) (int, error)   = strconv.Atoi
	uc      func(string) string         = strings.ToUpper
	newBig  func(int64) *big.Int        = big.NewInt
	sprintf func(string, ...any) string = fmt.Sprintf
)

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return isASCIILetter(c)
}

func isIdentPart(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-'
}

// safeIntMin and safeIntMax bound the "safe integer" range named by
// the specification: values whose native int64 representation can be
// produced without loss, mirroring IEEE-754 double precision's safe
// integer envelope (the spec is language-neutral and chooses this
// bound so a JavaScript peer can always hold the value losslessly).
var (
	safeIntMax = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 53), big.NewInt(1))
	safeIntMin = new(big.Int).Neg(safeIntMax)
)

func fitsSafeInt(b *big.Int) bool {
	return b.Cmp(safeIntMin) >= 0 && b.Cmp(safeIntMax) <= 0
}
