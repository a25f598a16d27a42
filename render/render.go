// Package render converts resolved field values to text.
//
// Structured values are rendered through their own fmt.Stringer, so a linked node
// prints whatever its String method prints, including any nodes it chains to.
package render

import (
	"field-processor/kind"
	"field-processor/options"
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Nil is the rendering of an absent value.
const Nil = "<nil>"

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

// Value renders v. k refines the rendering of values whose Go type is ambiguous,
// such as characters stored in an int32.
func Value(v reflect.Value, k kind.KindEnum, mode options.RenderEnum) string {
	if !v.IsValid() || isNil(v) {
		return Nil
	}

	if !v.CanInterface() {
		return fmt.Sprint(v)
	}

	switch mode {
	case options.RenderDump:
		return strings.TrimSuffix(dumper.Sdump(v.Interface()), "\n")
	default:
		return plain(v, k)
	}
}

func plain(v reflect.Value, k kind.KindEnum) string {
	if isNil(v) {
		return Nil
	}

	if k == kind.KindChar {
		return charOf(v)
	}

	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}

	if v.CanAddr() && v.Addr().Type().Implements(stringerType) {
		return v.Addr().Interface().(fmt.Stringer).String()
	}

	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		elem := v.Elem()
		return plain(elem, kind.FromReflectType(elem.Type()))
	}

	return fmt.Sprint(v.Interface())
}

func charOf(v reflect.Value) string {
	switch {
	case v.CanInt():
		return string(rune(v.Int()))
	case v.CanUint():
		return string(rune(v.Uint()))
	default:
		return fmt.Sprint(v.Interface())
	}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	default:
		return false
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
}
