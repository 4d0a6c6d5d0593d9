// Package tree implements the split-tree layout engine: windows are leaves of
// a tree of weighted row and column splits.
package tree

import (
	"slices"

	"github.com/google/uuid"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
)

const defaultName = "Tree"

// Engine is an immutable split-tree layout. Every edit returns a new *Engine
// sharing the identity, or the receiver when nothing changed.
type Engine struct {
	env          layout.Env
	identity     entity.LayoutEngineIdentity
	name         string
	addDirection entity.Direction

	tree      arena
	minimized []entity.WindowID
	// pendingPhantom is the phantom created by the last split, used as the
	// anchor of the next added window.
	pendingPhantom entity.WindowID
}

var _ layout.Engine = (*Engine)(nil)

// Option configures a new Engine.
type Option func(*Engine)

// WithAddDirection sets the side new windows are added on. Defaults to Right.
func WithAddDirection(d entity.Direction) Option {
	return func(e *Engine) {
		if d.IsHorizontal() || d.IsVertical() {
			e.addDirection = d
		}
	}
}

// WithName sets the engine name.
func WithName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.name = name
		}
	}
}

// WithRoot seeds the engine with an existing tree.
func WithRoot(root Node) Option {
	return func(e *Engine) {
		a := emptyArena()
		a.root = a.load(root, noNode)
		e.tree = a.compact()
	}
}

// New creates an empty tree engine.
func New(env layout.Env, identity entity.LayoutEngineIdentity, opts ...Option) *Engine {
	e := &Engine{
		env:          env,
		identity:     identity,
		name:         defaultName,
		addDirection: entity.DirectionRight,
		tree:         emptyArena(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) with(a *arena) *Engine {
	next := *e
	next.tree = a.compact()
	return &next
}

func (e *Engine) Name() string                          { return e.name }
func (e *Engine) Identity() entity.LayoutEngineIdentity { return e.identity }

// AddDirection returns the side new windows are added on.
func (e *Engine) AddDirection() entity.Direction { return e.addDirection }

func (e *Engine) Count() int {
	return len(e.tree.leaves()) + len(e.minimized)
}

// Root returns a description of the current tree.
func (e *Engine) Root() (Node, bool) {
	if e.tree.isEmpty() {
		return Node{}, false
	}
	return e.tree.export(e.tree.root), true
}

func (e *Engine) ContainsWindow(window entity.WindowID) bool {
	if slices.Contains(e.minimized, window) {
		return true
	}
	i := e.tree.find(window)
	return i != noNode && e.tree.nodes[i].kind == kindLeaf
}

// anchor resolves the node new windows are placed next to.
func (e *Engine) anchor(a *arena, preferred entity.WindowID) int {
	if preferred != "" {
		if i := a.find(preferred); i != noNode {
			return i
		}
	}
	if e.pendingPhantom != "" {
		if i := a.find(e.pendingPhantom); i != noNode {
			return i
		}
	}
	if focused, ok := e.env.LastFocused(); ok {
		if i := a.find(focused); i != noNode {
			return i
		}
	}
	return a.rightmostLeaf()
}

func (e *Engine) AddWindow(window entity.WindowID) layout.Engine {
	return e.AddWindowNextTo(window, "")
}

// AddWindowNextTo adds window beside anchor, falling back to the focused window
// and then to the right-most leaf when anchor is not in the tree.
func (e *Engine) AddWindowNextTo(window, anchor entity.WindowID) *Engine {
	if e.ContainsWindow(window) {
		e.env.Logger.Debug().Str("window", string(window)).Msg("window already in tree")
		return e
	}
	a := e.tree.clone()
	a.insertNextTo(e.anchor(a, anchor), node{kind: kindLeaf, window: window}, e.addDirection)
	next := e.with(a)
	next.pendingPhantom = ""
	return next
}

func (e *Engine) RemoveWindow(window entity.WindowID) layout.Engine {
	if idx := slices.Index(e.minimized, window); idx >= 0 {
		next := *e
		next.minimized = slices.Delete(slices.Clone(e.minimized), idx, idx+1)
		return &next
	}
	i := e.tree.find(window)
	if i == noNode {
		e.env.Logger.Debug().Str("window", string(window)).Msg("window not in tree")
		return e
	}
	a := e.tree.clone()
	a.remove(i)
	next := e.with(a)
	if next.pendingPhantom == window {
		next.pendingPhantom = ""
	}
	return next
}

func (e *Engine) GetFirstWindow() (entity.WindowID, bool) {
	leaves := e.tree.leaves()
	if len(leaves) == 0 {
		return "", false
	}
	return e.tree.nodes[leaves[0]].window, true
}

// SplitFocused reserves a slot next to window (or the usual anchor) by
// wrapping it with a phantom sibling along the add direction.
func (e *Engine) SplitFocused(window entity.WindowID) *Engine {
	a := e.tree.clone()
	placeholder := entity.WindowID("phantom-" + uuid.NewString())
	a.insertNextTo(e.anchor(a, window), node{kind: kindPhantom, window: placeholder}, e.addDirection)
	next := e.with(a)
	next.pendingPhantom = placeholder
	return next
}

// adjacentLeaf resolves the real leaf next to window in direction.
func (e *Engine) adjacentLeaf(window entity.WindowID, direction entity.Direction) (int, bool) {
	src := e.tree.find(window)
	if src == noNode || e.tree.nodes[src].kind != kindLeaf {
		return noNode, false
	}
	rects := e.tree.rects()
	var candidates []layout.Candidate[int]
	for _, i := range e.tree.leaves() {
		if i != src {
			candidates = append(candidates, layout.Candidate[int]{Key: i, Rect: rects[i]})
		}
	}
	return layout.Adjacent(rects[src], direction, candidates)
}

// AdjacentWindow returns the window next to window in direction.
func (e *Engine) AdjacentWindow(window entity.WindowID, direction entity.Direction) (entity.WindowID, bool) {
	i, ok := e.adjacentLeaf(window, direction)
	if !ok {
		return "", false
	}
	return e.tree.nodes[i].window, true
}

func (e *Engine) SwapWindowInDirection(direction entity.Direction, window entity.WindowID) layout.Engine {
	target, ok := e.adjacentLeaf(window, direction)
	if !ok {
		e.env.Logger.Debug().Str("window", string(window)).Stringer("direction", direction).Msg("no window to swap with")
		return e
	}
	a := e.tree.clone()
	src := a.find(window)
	a.nodes[src].window, a.nodes[target].window = a.nodes[target].window, a.nodes[src].window
	return e.with(a)
}

func (e *Engine) FocusWindowInDirection(direction entity.Direction, window entity.WindowID) layout.Engine {
	target, ok := e.AdjacentWindow(window, direction)
	if !ok {
		e.env.Logger.Debug().Str("window", string(window)).Stringer("direction", direction).Msg("no window to focus")
		return e
	}
	e.env.FocusWindow(target)
	return e
}

func (e *Engine) MoveWindowToPoint(window entity.WindowID, point entity.Point[float64]) layout.Engine {
	point, ok := entity.ClampToUnit(point)
	if !ok {
		e.env.Logger.Debug().Float64("x", point.X).Float64("y", point.Y).Msg("point outside monitor")
		return e
	}

	next := *e
	a := e.tree.clone()
	if i := a.find(window); i != noNode {
		a.remove(i)
		compacted := a.compact()
		a = &compacted
	}
	next.minimized = slices.DeleteFunc(slices.Clone(e.minimized), func(w entity.WindowID) bool { return w == window })

	if a.isEmpty() {
		a.insertNextTo(noNode, node{kind: kindLeaf, window: window}, e.addDirection)
		next.tree = a.compact()
		return &next
	}

	rects := a.rects()
	target := noNode
	a.walk(func(i int) bool {
		if a.nodes[i].kind != kindSplit && rects[i].ContainsPoint(point) {
			target = i
			return false
		}
		return true
	})
	if target == noNode {
		target = a.rightmostLeaf()
	}
	direction := rects[target].DirectionToPoint(point)
	if direction == entity.DirectionNone {
		direction = e.addDirection
	}
	a.insertNextTo(target, node{kind: kindLeaf, window: window}, direction)
	next.tree = a.compact()
	return &next
}

func (e *Engine) MoveWindowEdgesInDirection(edges entity.Direction, deltas entity.Point[float64], window entity.WindowID) layout.Engine {
	leaf := e.tree.find(window)
	if leaf == noNode || e.tree.nodes[leaf].kind != kindLeaf {
		return e
	}

	a := e.tree.clone()
	rects := a.rects()
	changed := false

	switch {
	case edges.Has(entity.DirectionLeft):
		changed = a.moveEdge(rects, leaf, entity.DirectionLeft, -deltas.X) || changed
	case edges.Has(entity.DirectionRight):
		changed = a.moveEdge(rects, leaf, entity.DirectionRight, deltas.X) || changed
	}
	switch {
	case edges.Has(entity.DirectionUp):
		changed = a.moveEdge(rects, leaf, entity.DirectionUp, -deltas.Y) || changed
	case edges.Has(entity.DirectionDown):
		changed = a.moveEdge(rects, leaf, entity.DirectionDown, deltas.Y) || changed
	}

	if !changed {
		return e
	}
	return e.with(a)
}

// moveEdge grows the lineage of leaf towards edge by delta (shrinks it when
// delta is negative), taking the space from the neighbour on that side.
func (a *arena) moveEdge(rects []entity.Rectangle[float64], leaf int, edge entity.Direction, delta float64) bool {
	if delta == 0 {
		return false
	}
	isRow := edge.IsHorizontal()
	before := edge.InsertsBefore()

	child := leaf
	for p := a.nodes[leaf].parent; p != noNode; child, p = p, a.nodes[p].parent {
		parent := &a.nodes[p]
		if parent.isRow != isRow {
			continue
		}
		pos := a.childIndex(p, child)
		neighbour := pos + 1
		if before {
			neighbour = pos - 1
		}
		if neighbour < 0 || neighbour >= len(parent.children) {
			continue
		}

		extent := rects[p].Height
		if isRow {
			extent = rects[p].Width
		}
		if extent <= 0 {
			return false
		}
		d := delta / extent
		if d > 0 {
			d = min(d, parent.weights[neighbour])
		} else {
			d = max(d, -parent.weights[pos])
		}
		if d == 0 {
			return false
		}
		parent.weights[pos] += d
		parent.weights[neighbour] -= d
		return true
	}
	return false
}

func (e *Engine) MinimizeWindowStart(window entity.WindowID) layout.Engine {
	if slices.Contains(e.minimized, window) {
		return e
	}
	next := *e
	if i := e.tree.find(window); i != noNode {
		a := e.tree.clone()
		a.remove(i)
		next.tree = a.compact()
	}
	next.minimized = append(slices.Clone(e.minimized), window)
	return &next
}

func (e *Engine) MinimizeWindowEnd(window entity.WindowID) layout.Engine {
	idx := slices.Index(e.minimized, window)
	if idx < 0 {
		return e
	}
	next := *e
	next.minimized = slices.Delete(slices.Clone(e.minimized), idx, idx+1)
	return next.AddWindowNextTo(window, "")
}

func (e *Engine) DoLayout(rect entity.Rectangle[int], _ entity.Monitor) []entity.WindowState {
	states := make([]entity.WindowState, 0, e.Count())
	if !e.tree.isEmpty() {
		var visit func(i int, r entity.Rectangle[int])
		visit = func(i int, r entity.Rectangle[int]) {
			n := &e.tree.nodes[i]
			switch n.kind {
			case kindLeaf:
				states = append(states, entity.WindowState{Window: n.window, Rectangle: r, Size: entity.WindowSizeNormal})
			case kindSplit:
				pre := 0.0
				for k, c := range n.children {
					visit(c, entity.Subdivide(r, n.isRow, pre, n.weights[k]))
					pre += n.weights[k]
				}
			}
		}
		visit(e.tree.root, rect)
	}
	for _, w := range e.minimized {
		states = append(states, entity.WindowState{Window: w, Size: entity.WindowSizeMinimized})
	}
	return states
}
