package node_test

import (
	"field-processor/fixture"
	"field-processor/node"
	"field-processor/options"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Labels map[string]string

func TestDispatch(t *testing.T) {
	t.Parallel()

	var nilNode *fixture.Node
	var iface any = fixture.NewNode("k", 1, nil)
	head := fixture.NewNode("k", 1, nil)

	tests := []struct {
		name   string
		target any
		want   node.TargetEnum
	}{
		{"struct pointer", head, node.TargetStruct},
		{"struct value", *head, node.TargetStruct},
		{"pointer to pointer", &head, node.TargetStruct},
		{"interface pointer", &iface, node.TargetStruct},
		{"string map", map[string]string{"a": "b"}, node.TargetMap},
		{"any map", map[string]any{"a": 1}, node.TargetMap},
		{"named string map", Labels{}, node.TargetMap},
		{"map pointer", &map[string]int{}, node.TargetMap},
		{"int keyed map", map[int]string{1: "a"}, node.TargetUnknown},
		{"object", fixture.NewAccount("ann", 1).Object(), node.TargetObject},
		{"string", "Practically, anything", node.TargetUnknown},
		{"slice", []string{"a"}, node.TargetUnknown},
		{"nil pointer", nilNode, node.TargetUnknown},
		{"nil", nil, node.TargetUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, node.Dispatch(reflect.ValueOf(tt.target)))
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil target", func(t *testing.T) {
		t.Parallel()

		var nilNode *fixture.Node

		_, err := node.New(nil, options.MatchAll)
		require.ErrorIs(t, err, node.ErrNilTarget)

		_, err = node.New(nilNode, options.MatchAll)
		require.ErrorIs(t, err, node.ErrNilTarget)
		require.ErrorIs(t, err, node.ErrInvalidArgument)
	})

	t.Run("unknown shape declares nothing", func(t *testing.T) {
		t.Parallel()

		target, err := node.New("String, for example", options.MatchAll)
		require.NoError(t, err)
		assert.Equal(t, node.TargetUnknown, target.Shape())
		assert.Equal(t, "string", target.Type())
		assert.Empty(t, target.Names())

		_, err = target.Resolve("width")

		var unknown *node.UnknownNameError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "width", unknown.Name)
		assert.Empty(t, unknown.Suggestion)
	})

	t.Run("shapes", func(t *testing.T) {
		t.Parallel()

		target, err := node.New(fixture.NewNode("k", 1, nil), options.MatchAll)
		require.NoError(t, err)
		assert.Equal(t, node.TargetStruct, target.Shape())
		assert.Equal(t, "*field-processor/fixture.Node", target.Type())

		target, err = node.New(map[string]string{}, options.MatchAll)
		require.NoError(t, err)
		assert.Equal(t, node.TargetMap, target.Shape())
		assert.Equal(t, "map[string]string", target.Type())
	})
}

func ExampleDispatch() {
	head := fixture.NewNode("some_key", 42, nil)

	fmt.Println(node.Dispatch(reflect.ValueOf(head)))
	fmt.Println(node.Dispatch(reflect.ValueOf(map[string]string{})))
	fmt.Println(node.Dispatch(reflect.ValueOf(fmt.Sprint)))
	fmt.Println(node.TargetEnum(7))
	// Output:
	// TargetStruct
	// TargetMap
	// TargetUnknown
	// TargetEnum(7)
}
