//go:build !asn1schema_debug

package asn1schema

// envDebugMask is a no-op outside of asn1schema_debug builds, so a
// production build carries no environment-variable lookup or
// tracing overhead at all.
func envDebugMask() EventType { return EventNone }
