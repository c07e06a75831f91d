package asn1schema

import "sort"

/*
specification.go implements the public facade (§4.5 of
SPEC_FULL.md): Compile produces a *Specification; Encode/Decode look
a type up by name and drive its compiled Codec.
*/

// Module is the public, read-only view of one compiled module's type
// names, exposed through Specification.ListModuleTypes.
type Module struct {
	Name      string
	TypeOrder []string
}

// Specification is the compiled form of one or more parsed ASN.1
// modules: a registry of codecs shared between per-module and global
// name tables. It is immutable after Compile returns and safe to use
// concurrently from multiple goroutines (§5 of SPEC_FULL.md).
type Specification struct {
	codecs      []Codec
	constraints []Constraints

	modules  map[string]*compiledModule
	global   map[string]int
	collided map[string]struct{}

	cfg *compileConfig
}

func newSpecification(cfg *compileConfig) *Specification {
	return &Specification{
		modules:  make(map[string]*compiledModule),
		global:   make(map[string]int),
		collided: make(map[string]struct{}),
		cfg:      cfg,
	}
}

func (s *Specification) addCodec(c Codec, constraints Constraints) int {
	s.codecs = append(s.codecs, c)
	s.constraints = append(s.constraints, constraints)
	return len(s.codecs) - 1
}

// registerGlobal implements the collision-removal rule of §3: a type
// name defined in more than one module is permanently absent from
// the global table once the collision is observed.
func (s *Specification) registerGlobal(name string, idx int) {
	if _, blocked := s.collided[name]; blocked {
		return
	}
	if _, exists := s.global[name]; exists {
		delete(s.global, name)
		s.collided[name] = struct{}{}
		return
	}
	s.global[name] = idx
}

func (s *Specification) lookupGlobal(typeName string) (Codec, bool) {
	idx, ok := s.global[typeName]
	if !ok {
		return nil, false
	}
	return s.codecs[idx], true
}

// Encode looks typeName up in the global type table and encodes value
// with its codec.
func (s *Specification) Encode(typeName string, value any) ([]byte, error) {
	s.cfg.tracef(EventEncode, "encoding %s", typeName)
	codec, ok := s.lookupGlobal(typeName)
	if !ok {
		return nil, newCompileError("type %q not found", typeName)
	}
	return codec.encode(value)
}

// Decode looks typeName up in the global type table and decodes a
// value from the start of data. Trailing bytes beyond the decoded
// length are ignored.
func (s *Specification) Decode(typeName string, data []byte) (any, error) {
	s.cfg.tracef(EventDecode, "decoding %s", typeName)
	codec, ok := s.lookupGlobal(typeName)
	if !ok {
		return nil, newCompileError("type %q not found", typeName)
	}
	v, _, err := codec.decode(data, 0)
	return v, err
}

// EncodeIn is the module-qualified counterpart to Encode, used to
// reach a type name that collided across modules and is therefore
// absent from the flat global table (§9(c)).
func (s *Specification) EncodeIn(moduleName, typeName string, value any) ([]byte, error) {
	cm, ok := s.modules[moduleName]
	if !ok {
		return nil, newCompileError("module %q not found", moduleName)
	}
	idx, ok := cm.Types[typeName]
	if !ok {
		return nil, newCompileError("type %q not found in module %q", typeName, moduleName)
	}
	return s.codecs[idx].encode(value)
}

// DecodeIn is the module-qualified counterpart to Decode.
func (s *Specification) DecodeIn(moduleName, typeName string, data []byte) (any, error) {
	cm, ok := s.modules[moduleName]
	if !ok {
		return nil, newCompileError("module %q not found", moduleName)
	}
	idx, ok := cm.Types[typeName]
	if !ok {
		return nil, newCompileError("type %q not found in module %q", typeName, moduleName)
	}
	v, _, err := s.codecs[idx].decode(data, 0)
	return v, err
}

// ListTypeNames returns the names reachable through the flat global
// table, sorted for deterministic output.
func (s *Specification) ListTypeNames() []string {
	names := make([]string, 0, len(s.global))
	for name := range s.global {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListModuleNames returns every compiled module's name, sorted.
func (s *Specification) ListModuleNames() []string {
	names := make([]string, 0, len(s.modules))
	for name := range s.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListModuleTypes returns the type names declared in moduleName, in
// declaration order, or false if no such module was compiled.
func (s *Specification) ListModuleTypes(moduleName string) ([]string, bool) {
	cm, ok := s.modules[moduleName]
	if !ok {
		return nil, false
	}
	out := make([]string, len(cm.TypeOrder))
	copy(out, cm.TypeOrder)
	return out, true
}

// TypeConstraints returns the range/size constraint bag recorded for
// typeName (ENUMERATED values are not part of it), exposed so callers can apply their own
// validation on top of this library's BER framing (§4.5 of
// SPEC_FULL.md); this library itself never enforces them.
func (s *Specification) TypeConstraints(typeName string) (Constraints, bool) {
	idx, ok := s.global[typeName]
	if !ok {
		return Constraints{}, false
	}
	return s.constraints[idx], true
}
