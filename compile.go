package asn1schema

/*
compile.go implements the two-pass type compiler (§4.4 of
SPEC_FULL.md): pass 1 is performed by the parser itself, which
records every declared type name per module before any codec is
built; pass 2, here, walks each ParsedType in declaration order and
emits a Codec, resolving DEFINED references against the current
module's already-compiled types and then the global table.

Forward references (to a type declared later in the same module) are
a known limitation preserved from the specification (§9(b)): they
surface as a CompileError rather than being silently resolved.
Self-reference during a type's own compilation is rejected as a
cycle, satisfying the "every compiled type has a finite definition"
invariant (§3).
*/

// compiledModule is the per-module registry: type name to codec-table
// index, in declaration order.
type compiledModule struct {
	Name      string
	TypeOrder []string
	Types     map[string]int
}

func newCompiledModule(name string) *compiledModule {
	return &compiledModule{Name: name, Types: make(map[string]int)}
}

func (m *compiledModule) define(name string, idx int) {
	if _, exists := m.Types[name]; !exists {
		m.TypeOrder = append(m.TypeOrder, name)
	}
	m.Types[name] = idx
}

type compiler struct {
	spec       *Specification
	inProgress map[string]struct{} // keyed "module.name"
}

// Compile parses schema text and compiles every module it declares
// into a *Specification.
func Compile(text string, opts ...CompileOption) (*Specification, error) {
	cfg := newCompileConfig(opts)

	parsedModules, order, err := parseSchema(text)
	if err != nil {
		return nil, err
	}

	spec := newSpecification(cfg)
	c := &compiler{
		spec:       spec,
		inProgress: make(map[string]struct{}),
	}

	for _, modName := range order {
		mod := parsedModules[modName]
		cfg.tracef(EventCompile, "compiling module %s", modName)
		if err := c.compileModule(mod); err != nil {
			return nil, err
		}
	}

	return spec, nil
}

func (c *compiler) compileModule(mod *ParsedModule) error {
	cm := newCompiledModule(mod.Name)
	c.spec.modules[mod.Name] = cm

	for _, name := range mod.TypeOrder {
		if _, already := cm.Types[name]; already {
			continue
		}
		idx, err := c.compileNamedType(mod, cm, name)
		if err != nil {
			return err
		}
		cm.define(name, idx)
		c.spec.registerGlobal(name, idx)
	}

	return nil
}

func (c *compiler) compileNamedType(mod *ParsedModule, cm *compiledModule, name string) (int, error) {
	key := mod.Name + "." + name
	if _, cyc := c.inProgress[key]; cyc {
		return 0, newCompileError("cycle detected while compiling type %q in module %q", name, mod.Name)
	}

	pt, ok := mod.Types[name]
	if !ok {
		return 0, newCompileError("type %q not found in module %q", name, mod.Name)
	}

	c.inProgress[key] = struct{}{}
	defer delete(c.inProgress, key)

	codec, err := c.compileType(mod, cm, pt)
	if err != nil {
		return 0, err
	}

	return c.spec.addCodec(codec, pt.Constraints), nil
}

// resolveDefined resolves a DEFINED{name} reference: first against
// types already compiled in the current module (in declaration
// order, which is why a later-declared type is not yet visible),
// then against the global table.
func (c *compiler) resolveDefined(mod *ParsedModule, cm *compiledModule, name string) (int, error) {
	key := mod.Name + "." + name
	if _, cyc := c.inProgress[key]; cyc {
		return 0, newCompileError("cycle detected while compiling type %q in module %q", name, mod.Name)
	}

	if idx, ok := cm.Types[name]; ok {
		return idx, nil
	}
	if idx, ok := c.spec.global[name]; ok {
		return idx, nil
	}

	if _, declaredLater := mod.Types[name]; declaredLater {
		return 0, newCompileError(
			"forward reference to type %q declared later in module %q is not supported", name, mod.Name)
	}

	return 0, newCompileError("unresolved reference to type %q", name)
}

func (c *compiler) compileType(mod *ParsedModule, cm *compiledModule, pt *ParsedType) (Codec, error) {
	switch pt.Kind {
	case KindInteger:
		return integerCodec{}, nil

	case KindBoolean:
		return booleanCodec{}, nil

	case KindOctetString:
		return octetStringCodec{}, nil

	case KindNull:
		return nullCodec{}, nil

	case KindEnumerated:
		if len(pt.EnumValues) == 0 {
			return nil, newCompileError("ENUMERATED declaration has no values")
		}
		return newEnumeratedCodec(pt.EnumValues), nil

	case KindSequence:
		members := make([]sequenceMemberCodec, 0, len(pt.Members))
		for _, m := range pt.Members {
			mc, err := c.compileType(mod, cm, m.Type)
			if err != nil {
				return nil, wrapCompileError(err, "SEQUENCE member %q", m.Name)
			}
			members = append(members, sequenceMemberCodec{member: m, codec: mc})
		}
		return newSequenceCodec(members), nil

	case KindSequenceOf:
		elem, err := c.compileType(mod, cm, pt.Element)
		if err != nil {
			return nil, wrapCompileError(err, "SEQUENCE OF element")
		}
		return newSequenceOfCodec(elem), nil

	case KindChoice:
		if len(pt.Alternatives) == 0 {
			return nil, newCompileError("CHOICE declaration has no alternatives")
		}
		alts := make([]choiceAlternativeCodec, 0, len(pt.Alternatives))
		for _, a := range pt.Alternatives {
			ac, err := c.compileType(mod, cm, a.Type)
			if err != nil {
				return nil, wrapCompileError(err, "CHOICE alternative %q", a.Name)
			}
			alts = append(alts, choiceAlternativeCodec{alt: a, codec: ac})
		}
		return newChoiceCodec(alts)

	case KindDefined:
		idx, err := c.resolveDefined(mod, cm, pt.ReferencedName)
		if err != nil {
			return nil, err
		}
		return c.spec.codecs[idx], nil

	default:
		return nil, newCompileError("unsupported parsed type kind %v", pt.Kind)
	}
}
