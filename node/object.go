package node

import (
	"field-processor/internal/match"
	"field-processor/kind"
	"reflect"
)

// Object is implemented by values that expose their fields through an explicit table
// instead of being reflected. Values given to SetField come from kind.KindEnum.Default,
// so reference and composite kinds receive nil.
type Object interface {
	FieldNames() []string
	FieldKind(name string) (kind.KindEnum, bool)
	Field(name string) any
	SetField(name string, value any)
}

type objectTarget struct {
	obj Object
	typ reflect.Type
}

func newObjectTarget(obj Object, typ reflect.Type) *objectTarget {
	return &objectTarget{obj: obj, typ: typ}
}

func (t *objectTarget) Shape() TargetEnum { return TargetObject }
func (t *objectTarget) Type() string      { return typeStr(t.typ) }
func (t *objectTarget) Names() []string   { return t.obj.FieldNames() }

func (t *objectTarget) Resolve(name string) (Field, error) {
	k, ok := t.obj.FieldKind(name)
	if !ok {
		err := &UnknownNameError{Name: name, Target: t.Type()}
		if suggestion, ok := match.Suggest(name, t.Names()); ok {
			err.Suggestion = suggestion
		}

		return Field{}, err
	}

	return Field{
		Name: name,
		Kind: k,
		get:  func() reflect.Value { return reflect.ValueOf(t.obj.Field(name)) },
		reset: func() error {
			t.obj.SetField(name, k.Default())
			return nil
		},
	}, nil
}

// Accessor reads and writes one field of T.
type Accessor[T any] struct {
	Kind kind.KindEnum
	Get  func(*T) any
	Set  func(*T, any)
}

// Table is a per-type registry of named accessors. Bind turns it into an Object for one value.
type Table[T any] struct {
	names     []string
	accessors map[string]Accessor[T]
}

// NewTable creates an empty Table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{accessors: make(map[string]Accessor[T])}
}

// Add registers an accessor under name. A later Add with the same name replaces the accessor.
func (t *Table[T]) Add(name string, acc Accessor[T]) *Table[T] {
	if _, ok := t.accessors[name]; !ok {
		t.names = append(t.names, name)
	}
	t.accessors[name] = acc

	return t
}

// Bind returns an Object backed by obj.
func (t *Table[T]) Bind(obj *T) Object {
	return boundTable[T]{table: t, obj: obj}
}

type boundTable[T any] struct {
	table *Table[T]
	obj   *T
}

func (b boundTable[T]) FieldNames() []string {
	return append([]string(nil), b.table.names...)
}

func (b boundTable[T]) FieldKind(name string) (kind.KindEnum, bool) {
	acc, ok := b.table.accessors[name]
	return acc.Kind, ok
}

func (b boundTable[T]) Field(name string) any {
	return b.table.accessors[name].Get(b.obj)
}

func (b boundTable[T]) SetField(name string, value any) {
	b.table.accessors[name].Set(b.obj, value)
}
