//go:build layoutdebug

package tree

import (
	"fmt"
	"math"
)

const weightTolerance = 1e-6

// assertInvariants panics when the arena breaks a structural rule.
// Built only with the layoutdebug tag.
func (a *arena) assertInvariants() {
	if a.root == noNode {
		return
	}
	if a.nodes[a.root].parent != noNode {
		panic("tree: root has a parent")
	}
	a.walk(func(i int) bool {
		n := &a.nodes[i]
		if n.kind != kindSplit {
			return true
		}
		if len(n.children) < 2 {
			panic(fmt.Sprintf("tree: split %d has %d children", i, len(n.children)))
		}
		if len(n.children) != len(n.weights) {
			panic(fmt.Sprintf("tree: split %d has %d children and %d weights", i, len(n.children), len(n.weights)))
		}
		sum := 0.0
		for k, c := range n.children {
			if n.weights[k] < 0 {
				panic(fmt.Sprintf("tree: split %d has negative weight %v", i, n.weights[k]))
			}
			if a.nodes[c].parent != i {
				panic(fmt.Sprintf("tree: node %d has parent %d, want %d", c, a.nodes[c].parent, i))
			}
			sum += n.weights[k]
		}
		if math.Abs(sum-1) > weightTolerance {
			panic(fmt.Sprintf("tree: split %d weights sum to %v", i, sum))
		}
		return true
	})
}
