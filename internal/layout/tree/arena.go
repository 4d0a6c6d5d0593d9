package tree

import (
	"slices"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

type nodeKind uint8

const (
	kindSplit nodeKind = iota
	kindLeaf
	kindPhantom
)

const noNode = -1

// node is one slot of the arena. Parent is an index into the same arena and
// never outlives it.
type node struct {
	kind   nodeKind
	parent int
	window entity.WindowID // leaf window, or phantom placeholder

	isRow    bool
	children []int
	weights  []float64
}

// arena stores a tree as a flat slice so parent links are plain indexes.
// Edits happen on a private copy which is compacted before it is published.
type arena struct {
	nodes []node
	root  int
}

func emptyArena() arena {
	return arena{root: noNode}
}

// clone deep copies the arena so edits never reach the source engine.
func (a arena) clone() *arena {
	nodes := make([]node, len(a.nodes))
	for i, n := range a.nodes {
		n.children = slices.Clone(n.children)
		n.weights = slices.Clone(n.weights)
		nodes[i] = n
	}
	return &arena{nodes: nodes, root: a.root}
}

func (a *arena) add(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *arena) isEmpty() bool { return a.root == noNode }

// find returns the leaf or phantom holding window.
func (a *arena) find(window entity.WindowID) int {
	idx := noNode
	a.walk(func(i int) bool {
		n := &a.nodes[i]
		if n.kind != kindSplit && n.window == window {
			idx = i
			return false
		}
		return true
	})
	return idx
}

// walk visits nodes depth first in child order until fn returns false.
func (a *arena) walk(fn func(i int) bool) {
	if a.root == noNode {
		return
	}
	var visit func(i int) bool
	visit = func(i int) bool {
		if !fn(i) {
			return false
		}
		for _, c := range a.nodes[i].children {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	visit(a.root)
}

// rightmostLeaf descends through last children.
func (a *arena) rightmostLeaf() int {
	i := a.root
	for i != noNode && a.nodes[i].kind == kindSplit {
		c := a.nodes[i].children
		i = c[len(c)-1]
	}
	return i
}

func (a *arena) childIndex(parent, child int) int {
	return slices.Index(a.nodes[parent].children, child)
}

// replaceChild puts replacement where old sits, inheriting its weight.
func (a *arena) replaceChild(old, replacement int) {
	p := a.nodes[old].parent
	a.nodes[replacement].parent = p
	if p == noNode {
		a.root = replacement
		return
	}
	a.nodes[p].children[a.childIndex(p, old)] = replacement
}

// insertNextTo places fresh (a new leaf or phantom, not yet in the arena) beside anchor.
// A phantom anchor is taken over in place.
func (a *arena) insertNextTo(anchor int, fresh node, direction entity.Direction) {
	if a.root == noNode {
		fresh.parent = noNode
		a.root = a.add(fresh)
		return
	}
	if a.nodes[anchor].kind == kindPhantom {
		a.nodes[anchor].kind = fresh.kind
		a.nodes[anchor].window = fresh.window
		return
	}

	isRow := direction.IsRowAxis()
	before := direction.InsertsBefore()
	p := a.nodes[anchor].parent

	if p != noNode && a.nodes[p].isRow == isRow {
		fresh.parent = p
		idx := a.add(fresh)
		parent := &a.nodes[p]
		n := float64(len(parent.children))
		for i := range parent.weights {
			parent.weights[i] *= n / (n + 1)
		}
		pos := a.childIndex(p, anchor)
		if !before {
			pos++
		}
		parent.children = slices.Insert(parent.children, pos, idx)
		parent.weights = slices.Insert(parent.weights, pos, 1/(n+1))
		return
	}

	split := a.add(node{kind: kindSplit, isRow: isRow, weights: []float64{0.5, 0.5}})
	a.replaceChild(anchor, split)
	fresh.parent = split
	idx := a.add(fresh)
	a.nodes[anchor].parent = split
	if before {
		a.nodes[split].children = []int{idx, anchor}
	} else {
		a.nodes[split].children = []int{anchor, idx}
	}
}

// remove detaches the leaf or phantom at i. Its weight goes to the remaining
// siblings in equal parts and a split left with one child is replaced by it.
func (a *arena) remove(i int) {
	p := a.nodes[i].parent
	if p == noNode {
		a.root = noNode
		return
	}

	parent := &a.nodes[p]
	pos := a.childIndex(p, i)
	w := parent.weights[pos]
	parent.children = slices.Delete(parent.children, pos, pos+1)
	parent.weights = slices.Delete(parent.weights, pos, pos+1)
	if len(parent.children) == 0 {
		a.remove(p)
		return
	}
	share := w / float64(len(parent.weights))
	for k := range parent.weights {
		parent.weights[k] += share
	}

	if len(parent.children) == 1 {
		a.replaceChild(p, parent.children[0])
	}
}

// compact rebuilds the arena from the root, dropping detached nodes.
func (a *arena) compact() arena {
	out := arena{root: noNode}
	if a.root == noNode {
		return out
	}
	out.nodes = make([]node, 0, len(a.nodes))
	var visit func(i, parent int) int
	visit = func(i, parent int) int {
		n := a.nodes[i]
		n.parent = parent
		idx := len(out.nodes)
		out.nodes = append(out.nodes, n)
		if n.kind == kindSplit {
			children := make([]int, len(n.children))
			for k, c := range n.children {
				children[k] = visit(c, idx)
			}
			out.nodes[idx].children = children
		}
		return idx
	}
	out.root = visit(a.root, noNode)
	out.assertInvariants()
	return out
}

// leaves lists the real leaves in depth-first child order.
func (a *arena) leaves() []int {
	var out []int
	a.walk(func(i int) bool {
		if a.nodes[i].kind == kindLeaf {
			out = append(out, i)
		}
		return true
	})
	return out
}

// rects computes the normalized rectangle of every node from the weights.
func (a *arena) rects() []entity.Rectangle[float64] {
	out := make([]entity.Rectangle[float64], len(a.nodes))
	if a.root == noNode {
		return out
	}
	var visit func(i int, r entity.Rectangle[float64])
	visit = func(i int, r entity.Rectangle[float64]) {
		out[i] = r
		n := &a.nodes[i]
		pre := 0.0
		for k, c := range n.children {
			visit(c, entity.SubdivideUnit(r, n.isRow, pre, n.weights[k]))
			pre += n.weights[k]
		}
	}
	visit(a.root, entity.UnitSquare())
	return out
}
