package node

import (
	"field-processor/internal/match"
	"field-processor/kind"
	"field-processor/options"
	"field-processor/utils"
	"fmt"
	"reflect"
	"strings"
)

// fieldDesc describes one addressable field of a struct type.
type fieldDesc struct {
	Name     string // Go field name
	TagName  string // `field:"name"`
	JSONName string // `json:"name"`
	Index    []int
	Kind     kind.KindEnum
}

type structTarget struct {
	v      reflect.Value
	typ    reflect.Type
	match  options.MatchEnum
	fields []fieldDesc
}

func newStructTarget(v reflect.Value, typ reflect.Type, mode options.MatchEnum) *structTarget {
	return &structTarget{v: v, typ: typ, match: mode, fields: collectFields(v.Type())}
}

func (t *structTarget) Shape() TargetEnum { return TargetStruct }
func (t *structTarget) Type() string      { return typeStr(t.typ) }

// Names returns the name each field resolves by first: its tag name, its json name or its Go name.
func (t *structTarget) Names() []string {
	names := make([]string, 0, len(t.fields))
	for _, f := range t.fields {
		names = append(names, t.declaredName(f))
	}

	return names
}

func (t *structTarget) declaredName(f fieldDesc) string {
	switch {
	case f.TagName != "" && t.match.Has(options.MatchTag):
		return f.TagName
	case f.JSONName != "" && t.match.Has(options.MatchJSON):
		return f.JSONName
	default:
		return f.Name
	}
}

// Resolve finds a field by name. A dotted name follows struct references one segment at a time.
func (t *structTarget) Resolve(name string) (Field, error) {
	if desc, ok := t.lookup(name); ok {
		return t.field(name, []fieldDesc{desc}), nil
	}

	if !strings.Contains(name, ".") {
		return Field{}, t.unknown(name, name)
	}

	segments, err := ParsePath(name)
	if err != nil {
		return Field{}, t.unknown(name, name)
	}

	return t.resolvePath(name, segments)
}

// resolvePath checks every segment against the current state of t and returns a Field
// that walks the same segments again from t on each access.
func (t *structTarget) resolvePath(name string, segments []string) (Field, error) {
	chain := make([]fieldDesc, 0, len(segments))
	cur := t

	for i, segment := range segments {
		desc, ok := cur.lookup(segment)
		if !ok {
			return Field{}, cur.unknown(name, segment)
		}
		chain = append(chain, desc)

		if i == len(segments)-1 {
			break
		}

		fv := cur.v.FieldByIndex(desc.Index)
		if base(fv.Type()).Kind() != reflect.Struct {
			return Field{}, cur.unknown(name, strings.Join(segments[i+1:], "."))
		}

		next := indirect(fv)
		if !next.IsValid() {
			return Field{}, fmt.Errorf("%w: %q stops at %q on %s", ErrNilReference, name, segment, t.Type())
		}

		cur = newStructTarget(next, fv.Type(), t.match)
	}

	return t.field(name, chain), nil
}

func (t *structTarget) unknown(name, segment string) *UnknownNameError {
	err := &UnknownNameError{Name: name, Target: t.Type()}
	if suggestion, ok := match.Suggest(segment, t.Names()); ok {
		err.Suggestion = suggestion
	}

	return err
}

// field binds the descriptor chain to t. Every access walks the chain from t, so a
// reference reset earlier in the same call is seen: the value reads as invalid and
// a reset does nothing.
func (t *structTarget) field(name string, chain []fieldDesc) Field {
	last := chain[len(chain)-1]

	locate := func() (reflect.Value, bool) {
		v := t.v
		for _, desc := range chain[:len(chain)-1] {
			if v = indirect(v.FieldByIndex(desc.Index)); !v.IsValid() {
				return reflect.Value{}, false
			}
		}

		return v.FieldByIndex(last.Index), true
	}

	f := Field{
		Name: name,
		Kind: last.Kind,
		get: func() reflect.Value {
			fv, _ := locate()
			return fv
		},
	}

	if fv, _ := locate(); fv.CanSet() {
		f.reset = func() error {
			if fv, ok := locate(); ok {
				fv.Set(last.Kind.Zero(fv.Type()))
			}
			return nil
		}
	}

	return f
}

// lookup tries the enabled strategies in priority order: tag, json tag, exact name,
// case-insensitive name, normalized name.
func (t *structTarget) lookup(name string) (fieldDesc, bool) {
	strategies := []options.MatchEnum{
		options.MatchTag,
		options.MatchJSON,
		options.MatchExact,
		options.MatchFold,
		options.MatchNormalized,
	}

	for _, strategy := range strategies {
		if !t.match.Has(strategy) {
			continue
		}

		for _, f := range t.fields {
			if f.matches(strategy, name) {
				return f, true
			}
		}
	}

	return fieldDesc{}, false
}

func (f fieldDesc) matches(strategy options.MatchEnum, name string) bool {
	switch strategy {
	case options.MatchTag:
		return f.TagName != "" && f.TagName == name
	case options.MatchJSON:
		return f.JSONName != "" && f.JSONName == name
	case options.MatchExact:
		return f.Name == name
	case options.MatchFold:
		return strings.EqualFold(f.Name, name)
	case options.MatchNormalized:
		return name != "" && match.SameIdent(f.Name, name)
	default:
		return false
	}
}

// collectFields gathers the exported fields of rtype and the fields promoted from embedded
// value structs, shallowest first. As in Go selectors, a shallower name hides deeper ones
// and a name declared twice at the same depth is ambiguous and promoted from neither.
// Hidden fields still take their name.
func collectFields(rtype reflect.Type) []fieldDesc {
	type embedded struct {
		typ   reflect.Type
		index []int
	}

	type candidate struct {
		desc   fieldDesc
		hidden bool
	}

	var out []fieldDesc
	taken := make(map[string]struct{})

	for level := []embedded{{typ: rtype}}; len(level) > 0; {
		var next []embedded
		var order []string
		found := make(map[string][]candidate)

		for _, e := range level {
			for i := range e.typ.NumField() {
				sf := e.typ.Field(i)
				tag := parseFieldTag(sf.Tag.Get("field"))
				index := append(append([]int(nil), e.index...), i)

				if sf.Anonymous && sf.Type.Kind() == reflect.Struct && tag.name == "" {
					next = append(next, embedded{typ: sf.Type, index: index})
				}

				if !sf.IsExported() {
					continue
				}

				if _, ok := taken[sf.Name]; ok {
					continue
				}

				k := kind.FromReflectType(sf.Type)
				if tag.char && kind.CanBeChar(sf.Type) {
					k = kind.KindChar
				}

				if _, ok := found[sf.Name]; !ok {
					order = append(order, sf.Name)
				}
				found[sf.Name] = append(found[sf.Name], candidate{
					desc: fieldDesc{
						Name:     sf.Name,
						TagName:  tag.name,
						JSONName: jsonTagName(sf),
						Index:    index,
						Kind:     k,
					},
					hidden: tag.name == "-",
				})
			}
		}

		for _, name := range order {
			taken[name] = struct{}{}
			if c := found[name]; len(c) == 1 && !c[0].hidden {
				out = append(out, c[0].desc)
			}
		}

		level = next
	}

	return out
}

type fieldTag struct {
	name string
	char bool
}

// parseFieldTag parses `field:"name,opt1,opt2"`.
func parseFieldTag(tag string) fieldTag {
	name, rest := utils.Unpack2(strings.SplitN(tag, ",", 2))

	res := fieldTag{name: name}
	for _, opt := range strings.Split(rest, ",") {
		if opt == "char" {
			res.char = true
		}
	}

	return res
}

func jsonTagName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
