package tree

import (
	"github.com/bnema/dumbtile/internal/domain/entity"
)

// Node is an immutable description of a tree, used to seed an engine and to
// inspect one. A Node with children is a split, otherwise a leaf or a phantom.
type Node struct {
	Window   entity.WindowID
	Phantom  bool
	IsRow    bool
	Weights  []float64
	Children []Node
}

// IsSplit reports whether n has children.
func (n Node) IsSplit() bool { return len(n.Children) > 0 }

// Leaf describes a leaf holding window.
func Leaf(window entity.WindowID) Node {
	return Node{Window: window}
}

// Row describes a split laying children out side by side.
func Row(weights []float64, children ...Node) Node {
	return Node{IsRow: true, Weights: weights, Children: children}
}

// Column describes a split stacking children vertically.
func Column(weights []float64, children ...Node) Node {
	return Node{Weights: weights, Children: children}
}

func (a *arena) load(n Node, parent int) int {
	switch {
	case n.IsSplit():
		idx := a.add(node{kind: kindSplit, parent: parent, isRow: n.IsRow})
		weights := n.Weights
		if len(weights) != len(n.Children) {
			weights = make([]float64, len(n.Children))
			for i := range weights {
				weights[i] = 1 / float64(len(n.Children))
			}
		}
		children := make([]int, len(n.Children))
		for i, c := range n.Children {
			children[i] = a.load(c, idx)
		}
		a.nodes[idx].children = children
		a.nodes[idx].weights = append([]float64(nil), weights...)
		return idx
	case n.Phantom:
		return a.add(node{kind: kindPhantom, parent: parent, window: n.Window})
	default:
		return a.add(node{kind: kindLeaf, parent: parent, window: n.Window})
	}
}

func (a *arena) export(i int) Node {
	n := &a.nodes[i]
	switch n.kind {
	case kindLeaf:
		return Node{Window: n.window}
	case kindPhantom:
		return Node{Window: n.window, Phantom: true}
	}
	out := Node{IsRow: n.isRow, Weights: append([]float64(nil), n.weights...)}
	out.Children = make([]Node, len(n.children))
	for k, c := range n.children {
		out.Children[k] = a.export(c)
	}
	return out
}
