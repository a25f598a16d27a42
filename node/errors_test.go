package node_test

import (
	"errors"
	"field-processor/node"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleUnknownNameError() {
	err := &node.UnknownNameError{Name: "valeu", Set: "cleanup", Target: "*fixture.Node", Suggestion: "value"}
	fmt.Println(err)

	err = &node.UnknownNameError{Name: "height"}
	fmt.Println(err)

	// Output:
	// invalid argument: unknown cleanup name "valeu" on *fixture.Node, did you mean "value"?
	// invalid argument: unknown name "height"
}

func TestSentinels(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		node.ErrUnknownName,
		node.ErrNilReference,
		node.ErrNotAddressable,
		node.ErrNilTarget,
		&node.UnknownNameError{Name: "x"},
	} {
		assert.ErrorIs(t, err, node.ErrInvalidArgument, err.Error())
	}

	wrapped := fmt.Errorf("processing: %w", &node.UnknownNameError{Name: "x"})
	assert.ErrorIs(t, wrapped, node.ErrUnknownName)
	assert.False(t, errors.Is(node.ErrNilTarget, node.ErrUnknownName))
}
