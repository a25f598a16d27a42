package node

import (
	"field-processor/options"
	"reflect"
)

// Target is a classified value whose fields or keys can be addressed by name.
type Target interface {
	// Shape returns the classification of the value.
	Shape() TargetEnum
	// Type returns the type name of the value, for diagnostics.
	Type() string
	// Names enumerates the declared names.
	Names() []string
	// Resolve finds the field or key addressed by name.
	Resolve(name string) (Field, error)
}

var objectType = reflect.TypeFor[Object]()

// Dispatch classifies v. Pointers and interfaces are followed down to the value they hold,
// except that an Object is recognised before any dereference.
func Dispatch(v reflect.Value) TargetEnum {
	if !v.IsValid() {
		return TargetUnknown
	}

	if v.Type().Implements(objectType) && v.CanInterface() && indirect(v).IsValid() {
		return TargetObject
	}

	base := indirect(v)
	if !base.IsValid() {
		return TargetUnknown
	}

	switch base.Kind() {
	case reflect.Struct:
		return TargetStruct
	case reflect.Map:
		if base.Type().Key().Kind() == reflect.String {
			return TargetMap
		}
	}

	return TargetUnknown
}

// New classifies target and returns the view used to resolve names on it.
// Unsupported shapes yield a Target that declares no names.
func New(target any, match options.MatchEnum) (Target, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() || !indirect(v).IsValid() {
		return nil, ErrNilTarget
	}

	switch Dispatch(v) {
	case TargetObject:
		return newObjectTarget(v.Interface().(Object), v.Type()), nil
	case TargetStruct:
		return newStructTarget(indirect(v), v.Type(), match), nil
	case TargetMap:
		return newMapTarget(indirect(v), v.Type()), nil
	default:
		return unknownTarget{typ: v.Type()}, nil
	}
}

type unknownTarget struct {
	typ reflect.Type
}

func (unknownTarget) Shape() TargetEnum { return TargetUnknown }
func (t unknownTarget) Type() string    { return typeStr(t.typ) }
func (unknownTarget) Names() []string   { return nil }

func (t unknownTarget) Resolve(name string) (Field, error) {
	return Field{}, &UnknownNameError{Name: name, Target: t.Type()}
}

// indirect follows pointers and interfaces. It returns the zero Value when it meets a nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

// base returns the type behind any number of pointers.
func base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
