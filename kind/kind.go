package kind

import (
	"math"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBool
	KindChar
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindReference // pointer, interface, map, slice, func or chan: nil is its absence
	KindComposite // struct or array held by value

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

type WidthEnum int

const (
	WidthNone WidthEnum = iota
	WidthNarrow
	WidthShort
	WidthInteger
	WidthWide
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsAbsent reports whether the default of the kind means "no value" rather than a zero.
func (k KindEnum) IsAbsent() bool {
	return k == KindReference
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindChar:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// Width groups integer kinds into narrow, short, integer and wide classes.
func (k KindEnum) Width() WidthEnum {
	switch k {
	default:
		return WidthNone
	case KindInt8, KindUint8:
		return WidthNarrow
	case KindInt16, KindUint16:
		return WidthShort
	case KindInt, KindInt32, KindUint, KindUint32:
		return WidthInteger
	case KindInt64, KindUint64:
		return WidthWide
	}
}

// Default returns the canonical empty value of the kind.
// Reference and composite kinds have no typed constant and return nil,
// Zero turns that into the zero value of the concrete type.
func (k KindEnum) Default() any {
	switch k {
	default:
		panic("default requested for invalid kind: " + k.String())
	case KindBool:
		return false
	case KindChar:
		return rune(0)
	case KindInt:
		return int(0)
	case KindInt8:
		return int8(0)
	case KindInt16:
		return int16(0)
	case KindInt32:
		return int32(0)
	case KindInt64:
		return int64(0)
	case KindUint:
		return uint(0)
	case KindUint8:
		return uint8(0)
	case KindUint16:
		return uint16(0)
	case KindUint32:
		return uint32(0)
	case KindUint64:
		return uint64(0)
	case KindFloat32:
		return float32(0)
	case KindFloat64:
		return float64(0)
	case KindString:
		return ""
	case KindReference, KindComposite:
		return nil
	}
}

// Zero materialises Default for the concrete type rtype, keeping named types intact.
func (k KindEnum) Zero(rtype reflect.Type) reflect.Value {
	def := k.Default()
	if def == nil {
		return reflect.Zero(rtype)
	}

	return reflect.ValueOf(def).Convert(rtype)
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64, reflect.Uintptr:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.String:
		return KindString
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return KindReference
	case reflect.Struct, reflect.Array, reflect.Complex64, reflect.Complex128:
		return KindComposite
	}
}

// CanBeChar reports whether rtype may hold a character when marked so by a field tag.
func CanBeChar(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	switch rtype.Kind() {
	default:
		return false
	case reflect.Int32, reflect.Uint16, reflect.Uint8:
		return true
	}
}
