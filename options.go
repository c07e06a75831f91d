package asn1schema

/*
options.go implements a small functional-options layer modeled on
the teacher package's opts.go, used to opt into tracing and to reserve
the context-specific tagging-mode configuration point spec.md §9
calls for (EXPLICIT-style wrapping is the only mode this package
implements; TaggingMode exists so a future IMPLICIT mode has
somewhere to attach without an API break).
*/

// TaggingMode selects how a tagged CHOICE alternative or SEQUENCE
// member is framed. Only TaggingExplicit is implemented; spec.md §9
// notes that peers assuming IMPLICIT tagging are not interoperable
// with this package's output.
type TaggingMode int

const (
	TaggingExplicit TaggingMode = iota
)

type compileConfig struct {
	tracer  Tracer
	mask    EventType
	tagging TaggingMode
}

func newCompileConfig(opts []CompileOption) *compileConfig {
	cfg := &compileConfig{mask: envDebugMask(), tagging: TaggingExplicit}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *compileConfig) tracef(evt EventType, format string, args ...any) {
	if c.tracer == nil || c.mask&evt == 0 {
		return
	}
	c.tracer.Trace(evt, sprintf(format, args...))
}

// CompileOption configures a Compile call.
type CompileOption func(*compileConfig)

// WithTracer routes diagnostic messages for the given event mask to
// tracer. Passing EventNone disables tracing even if the
// ASN1SCHEMA_DEBUG environment variable is set.
func WithTracer(tracer Tracer, mask EventType) CompileOption {
	return func(c *compileConfig) {
		c.tracer = tracer
		c.mask = mask
	}
}

// WithTaggingMode reserves the configuration point named in spec.md
// §9. Only TaggingExplicit is currently implemented; any other value
// is accepted but has no effect.
func WithTaggingMode(mode TaggingMode) CompileOption {
	return func(c *compileConfig) {
		c.tagging = mode
	}
}
