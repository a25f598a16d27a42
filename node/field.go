package node

import (
	"field-processor/kind"
	"reflect"
)

// Field is a resolved struct field, map key or Object entry.
// It reads the live value on every call, so a reset is visible to later reads.
type Field struct {
	Name string
	Kind kind.KindEnum

	get   func() reflect.Value
	reset func() error
}

// Value returns the current value. It is invalid for a map key removed by Reset.
func (f Field) Value() reflect.Value {
	if f.get == nil {
		return reflect.Value{}
	}

	return f.get()
}

// CanReset reports whether Reset is able to overwrite the field.
func (f Field) CanReset() bool {
	return f.reset != nil
}

// Reset overwrites the field with the default of its kind.
func (f Field) Reset() error {
	if f.reset == nil {
		return ErrNotAddressable
	}

	return f.reset()
}
