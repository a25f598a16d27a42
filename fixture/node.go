// Package fixture holds example shapes the processor is exercised with.
package fixture

import "fmt"

// Node is a link of a singly linked chain.
type Node struct {
	Key   string `field:"key"`
	Value int    `field:"value"`
	Next  *Node  `field:"next"`
}

func NewNode(key string, value int, next *Node) *Node {
	return &Node{Key: key, Value: value, Next: next}
}

// String renders the node and, through Next, the rest of the chain.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("Node{key=%s, value=%d, next=%s}", n.Key, n.Value, n.Next)
}
