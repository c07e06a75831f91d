package asn1schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindStringCoversEveryVariant(t *testing.T) {
	cases := map[Kind]string{
		KindInteger:     "INTEGER",
		KindBoolean:     "BOOLEAN",
		KindOctetString: "OCTET STRING",
		KindNull:        "NULL",
		KindEnumerated:  "ENUMERATED",
		KindSequence:    "SEQUENCE",
		KindSequenceOf:  "SEQUENCE OF",
		KindChoice:      "CHOICE",
		KindDefined:     "DEFINED",
	}
	for k, want := range cases {
		require.Equal(t, want, k.String())
	}
	require.Equal(t, "UNKNOWN", Kind(99).String())
}

func TestParsedModuleDefinePreservesOrderAndOverwrite(t *testing.T) {
	m := newParsedModule("M")
	m.define("A", &ParsedType{Kind: KindInteger})
	m.define("B", &ParsedType{Kind: KindBoolean})
	m.define("A", &ParsedType{Kind: KindNull})

	require.Equal(t, []string{"A", "B"}, m.TypeOrder)
	require.Equal(t, KindNull, m.Types["A"].Kind)
}
