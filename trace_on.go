//go:build asn1schema_debug

package asn1schema

import "os"

/*
trace_on.go is grounded on the teacher package's trc_on.go: in builds
tagged asn1schema_debug, an environment variable sets the initial
trace event mask of every Compile call. No events are delivered
unless a Tracer is also supplied with WithTracer, and WithTracer
replaces that mask with its own.
*/

// EnvDebugVar names the environment variable which, when set to any
// non-empty value in an asn1schema_debug build, makes EventAll the
// initial event mask of a Compile call's configuration.
const EnvDebugVar = "ASN1SCHEMA_DEBUG"

func envDebugMask() EventType {
	if os.Getenv(EnvDebugVar) != "" {
		return EventAll
	}
	return EventNone
}
