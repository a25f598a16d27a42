package kind_test

import (
	"field-processor/kind"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(kind.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(kind.FromReflectType(reflect.TypeOf("")))
	fmt.Println(kind.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(kind.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(kind.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(kind.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(kind.FromReflectType(reflect.TypeOf(&Empty{})))
	fmt.Println(kind.FromReflectType(reflect.TypeOf(map[string]string{})))
	fmt.Println(kind.FromReflectType(nil))
	// Output:
	// KindInt
	// KindString
	// KindInt
	// KindString
	// KindInt64
	// KindComposite
	// KindReference
	// KindReference
	// KindEnum(0)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind kind.KindEnum
		want any
	}{
		{kind.KindBool, false},
		{kind.KindChar, '\u0000'},
		{kind.KindInt, 0},
		{kind.KindInt8, int8(0)},
		{kind.KindInt16, int16(0)},
		{kind.KindInt32, int32(0)},
		{kind.KindInt64, int64(0)},
		{kind.KindUint, uint(0)},
		{kind.KindUint8, uint8(0)},
		{kind.KindUint16, uint16(0)},
		{kind.KindUint32, uint32(0)},
		{kind.KindUint64, uint64(0)},
		{kind.KindFloat32, float32(0)},
		{kind.KindFloat64, float64(0)},
		{kind.KindString, ""},
		{kind.KindReference, nil},
		{kind.KindComposite, nil},
	}

	require.Len(t, tests, kind.KindTotal-1, "every kind must have a default")

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.kind.IsValid())
			assert.Equal(t, tt.want, tt.kind.Default())
		})
	}
}

func TestDefaultInvalidKind(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { kind.KindEnum(0).Default() })
	assert.Panics(t, func() { kind.KindEnum(kind.KindTotal).Default() })
}

func TestZero(t *testing.T) {
	t.Parallel()

	type Status string
	type node struct{ Next *node }

	t.Run("named type keeps its type", func(t *testing.T) {
		t.Parallel()

		zero := kind.KindString.Zero(reflect.TypeFor[Status]())
		assert.Equal(t, Status(""), zero.Interface())
	})

	t.Run("char into uint16", func(t *testing.T) {
		t.Parallel()

		zero := kind.KindChar.Zero(reflect.TypeFor[uint16]())
		assert.Equal(t, uint16(0), zero.Interface())
	})

	t.Run("reference is nil", func(t *testing.T) {
		t.Parallel()

		zero := kind.KindReference.Zero(reflect.TypeFor[*node]())
		assert.True(t, zero.IsNil())
	})

	t.Run("composite is zero struct", func(t *testing.T) {
		t.Parallel()

		zero := kind.KindComposite.Zero(reflect.TypeFor[time.Time]())
		assert.True(t, zero.Interface().(time.Time).IsZero())
	})
}

func TestWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kind.WidthNarrow, kind.KindInt8.Width())
	assert.Equal(t, kind.WidthNarrow, kind.KindUint8.Width())
	assert.Equal(t, kind.WidthShort, kind.KindInt16.Width())
	assert.Equal(t, kind.WidthInteger, kind.KindInt32.Width())
	assert.Equal(t, kind.WidthInteger, kind.KindInt.Width())
	assert.Equal(t, kind.WidthWide, kind.KindInt64.Width())
	assert.Equal(t, kind.WidthNone, kind.KindFloat64.Width())
	assert.Equal(t, kind.WidthNone, kind.KindChar.Width())
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, kind.KindUint16.IsNumber())
	assert.True(t, kind.KindUint16.IsUnsigned())
	assert.False(t, kind.KindUint16.IsSigned())
	assert.True(t, kind.KindFloat32.IsFloat())
	assert.False(t, kind.KindChar.IsNumber())
	assert.True(t, kind.KindReference.IsAbsent())
	assert.False(t, kind.KindString.IsAbsent())
	assert.Equal(t, 16, kind.KindInt16.Bits())
	assert.Panics(t, func() { kind.KindString.Bits() })
}

func TestCanBeChar(t *testing.T) {
	t.Parallel()

	assert.True(t, kind.CanBeChar(reflect.TypeFor[rune]()))
	assert.True(t, kind.CanBeChar(reflect.TypeFor[uint16]()))
	assert.False(t, kind.CanBeChar(reflect.TypeFor[string]()))
	assert.False(t, kind.CanBeChar(nil))
}
