package node

import (
	"field-processor/internal/match"
	"field-processor/kind"
	"reflect"
	"sort"
)

// mapTarget addresses the keys of a map with a string kinded key.
// Resetting a key removes it, which is how a map expresses an absent value.
type mapTarget struct {
	v   reflect.Value
	typ reflect.Type
}

func newMapTarget(v reflect.Value, typ reflect.Type) *mapTarget {
	return &mapTarget{v: v, typ: typ}
}

func (t *mapTarget) Shape() TargetEnum { return TargetMap }
func (t *mapTarget) Type() string      { return typeStr(t.typ) }

// Names returns the present keys in sorted order.
func (t *mapTarget) Names() []string {
	names := make([]string, 0, t.v.Len())
	for _, key := range t.v.MapKeys() {
		names = append(names, key.String())
	}
	sort.Strings(names)

	return names
}

func (t *mapTarget) Resolve(name string) (Field, error) {
	key := reflect.ValueOf(name).Convert(t.v.Type().Key())
	if !t.v.MapIndex(key).IsValid() {
		err := &UnknownNameError{Name: name, Target: t.Type()}
		if suggestion, ok := match.Suggest(name, t.Names()); ok {
			err.Suggestion = suggestion
		}

		return Field{}, err
	}

	return Field{
		Name: name,
		Kind: kind.FromReflectType(t.v.Type().Elem()),
		get:  func() reflect.Value { return t.v.MapIndex(key) },
		reset: func() error {
			t.v.SetMapIndex(key, reflect.Value{})
			return nil
		},
	}, nil
}
