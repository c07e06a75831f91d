package asn1schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const dataRequestSchema = `
Data DEFINITIONS ::= BEGIN
	LONG ::= INTEGER
	DataRequest ::= SEQUENCE {
		messageId LONG,
		version LONG,
		category LONG,
		size LONG,
		identifier OCTET STRING,
		checksum OCTET STRING
	}
END
`

func TestSpecificationDataRequestRoundTrip(t *testing.T) {
	spec, err := Compile(dataRequestSchema)
	require.NoError(t, err)

	identifier := make([]byte, 20)
	for i := range identifier {
		identifier[i] = byte(0x97 + i)
	}
	checksum := make([]byte, 32)
	for i := range checksum {
		checksum[i] = byte(0x2c + i)
	}

	value := map[string]any{
		"messageId":  124,
		"version":    0,
		"category":   1,
		"size":       1000,
		"identifier": identifier,
		"checksum":   checksum,
	}

	enc, err := spec.Encode("DataRequest", value)
	require.NoError(t, err)

	decoded, err := spec.Decode("DataRequest", enc)
	require.NoError(t, err)

	m, ok := decoded.(map[string]any)
	require.True(t, ok)
	require.Equal(t, int64(124), m["messageId"])
	require.Equal(t, int64(0), m["version"])
	require.Equal(t, int64(1), m["category"])
	require.Equal(t, int64(1000), m["size"])
	require.Equal(t, identifier, m["identifier"])
	require.Equal(t, checksum, m["checksum"])
}

func TestSpecificationPingRequestSeedScenario(t *testing.T) {
	spec, err := Compile(`
Ping DEFINITIONS ::= BEGIN
	LONG ::= INTEGER
	PingRequest ::= SEQUENCE { messageId LONG }
END
`)
	require.NoError(t, err)

	enc, err := spec.Encode("PingRequest", map[string]any{"messageId": 123})
	require.NoError(t, err)
	require.Equal(t, byte(0x30), enc[0])

	v, err := spec.Decode("PingRequest", enc)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"messageId": int64(123)}, v)
}

func TestSpecificationChoiceSeedScenario(t *testing.T) {
	spec, err := Compile(`
Ping DEFINITIONS ::= BEGIN
	LONG ::= INTEGER
	PingRequest ::= SEQUENCE { messageId LONG }
	RequestMessage ::= CHOICE {
		systemInfoRequest [4] PingRequest
	}
END
`)
	require.NoError(t, err)

	enc, err := spec.Encode("RequestMessage", map[string]any{
		"systemInfoRequest": map[string]any{"messageId": 123},
	})
	require.NoError(t, err)

	dt, err := decodeTag(enc, 0)
	require.NoError(t, err)
	require.Equal(t, classContextSpecific, dt.Class)
	require.Equal(t, 4, dt.Number)

	v, err := spec.Decode("RequestMessage", enc)
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	require.Len(t, m, 1)
	inner := m["systemInfoRequest"].(map[string]any)
	require.Equal(t, int64(123), inner["messageId"])
}

func TestSpecificationEncodeUnknownTypeIsError(t *testing.T) {
	spec, err := Compile(`M DEFINITIONS ::= BEGIN A ::= INTEGER END`)
	require.NoError(t, err)
	_, err = spec.Encode("NoSuchType", 1)
	require.Error(t, err)
}

func TestSpecificationListModuleNamesAndTypes(t *testing.T) {
	spec, err := Compile(`
A DEFINITIONS ::= BEGIN
	X ::= INTEGER
	Y ::= BOOLEAN
END
B DEFINITIONS ::= BEGIN
	Z ::= NULL
END
`)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, spec.ListModuleNames())

	types, ok := spec.ListModuleTypes("A")
	require.True(t, ok)
	require.Equal(t, []string{"X", "Y"}, types)

	_, ok = spec.ListModuleTypes("NoSuchModule")
	require.False(t, ok)
}

func TestSpecificationTypeConstraints(t *testing.T) {
	spec, err := Compile(`M DEFINITIONS ::= BEGIN T ::= INTEGER (-1..1) END`)
	require.NoError(t, err)
	c, ok := spec.TypeConstraints("T")
	require.True(t, ok)
	require.True(t, c.HasRange)
	require.Equal(t, -1, c.RangeMin)
	require.Equal(t, 1, c.RangeMax)

	_, ok = spec.TypeConstraints("NoSuchType")
	require.False(t, ok)
}

func TestSpecificationWhitespaceToleranceProducesIdenticalEncodings(t *testing.T) {
	s1, err := Compile(`M DEFINITIONS ::= BEGIN T ::= INTEGER(-1..1) END`)
	require.NoError(t, err)
	s2, err := Compile(`M DEFINITIONS ::= BEGIN T ::= INTEGER   (   -1   ..   1   ) END`)
	require.NoError(t, err)

	enc1, err := s1.Encode("T", -1)
	require.NoError(t, err)
	enc2, err := s2.Encode("T", -1)
	require.NoError(t, err)
	require.Equal(t, enc1, enc2)
}

func TestSpecificationTracerReceivesEvents(t *testing.T) {
	var events []EventType
	tracer := tracerFunc(func(evt EventType, _ string) {
		events = append(events, evt)
	})

	spec, err := Compile(`M DEFINITIONS ::= BEGIN A ::= INTEGER END`, WithTracer(tracer, EventAll))
	require.NoError(t, err)
	_, err = spec.Encode("A", 1)
	require.NoError(t, err)

	require.Contains(t, events, EventCompile)
	require.Contains(t, events, EventEncode)
}

type tracerFunc func(EventType, string)

func (f tracerFunc) Trace(evt EventType, msg string) { f(evt, msg) }
