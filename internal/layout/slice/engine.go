package slice

import (
	"slices"
	"sync"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
)

const (
	defaultName = "Slice"
	// referenceScale is the side of the square the cached layout is computed on.
	referenceScale = 10000
)

// Engine is an immutable slice layout. Every edit returns a new *Engine
// sharing the identity, or the receiver when nothing changed.
type Engine struct {
	env       layout.Env
	identity  entity.LayoutEngineIdentity
	name      string
	insertion entity.WindowInsertionType

	root   Area
	zones  []Area
	pruned Area
	filled bool

	windows   []entity.WindowID
	minimized []entity.WindowID

	cache *referenceLayout
}

// referenceLayout is the layout at referenceScale, computed on first use.
type referenceLayout struct {
	once  sync.Once
	rects []entity.Rectangle[int]
}

var _ layout.Engine = (*Engine)(nil)

// Option configures a new Engine.
type Option func(*Engine)

// WithName sets the engine name.
func WithName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.name = name
		}
	}
}

// WithInsertionType selects how windows move onto another window's slot.
func WithInsertionType(t entity.WindowInsertionType) Option {
	return func(e *Engine) { e.insertion = t }
}

// New creates an empty slice engine over root.
func New(env layout.Env, identity entity.LayoutEngineIdentity, root Area, opts ...Option) *Engine {
	e := &Engine{
		env:      env,
		identity: identity,
		name:     defaultName,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.root, e.zones = SetStartIndexes(root, env.Logger)
	e.pruned, e.filled = Prune(e.root, 0)
	e.cache = &referenceLayout{}
	return e
}

func (e *Engine) withWindows(windows []entity.WindowID) *Engine {
	next := *e
	next.windows = windows
	next.pruned, next.filled = Prune(e.root, len(windows))
	next.cache = &referenceLayout{}
	return &next
}

func (e *Engine) Name() string                          { return e.name }
func (e *Engine) Identity() entity.LayoutEngineIdentity { return e.identity }
func (e *Engine) Count() int                            { return len(e.windows) + len(e.minimized) }

// Windows returns the tiled windows in slot order.
func (e *Engine) Windows() []entity.WindowID { return slices.Clone(e.windows) }

// Zones returns the zones in window order with their start indexes.
func (e *Engine) Zones() []Area { return slices.Clone(e.zones) }

// Assignment lists, for every zone in window order, the windows it receives.
func (e *Engine) Assignment() [][]entity.WindowID {
	out := make([][]entity.WindowID, len(e.zones))
	for i, z := range e.zones {
		n := z.Capacity(len(e.windows))
		if n == 0 {
			continue
		}
		out[i] = slices.Clone(e.windows[z.StartIndex : z.StartIndex+n])
	}
	return out
}

// InsertionType returns how windows are moved onto another window's slot.
func (e *Engine) InsertionType() entity.WindowInsertionType { return e.insertion }

func (e *Engine) ContainsWindow(window entity.WindowID) bool {
	return slices.Contains(e.windows, window) || slices.Contains(e.minimized, window)
}

func (e *Engine) AddWindow(window entity.WindowID) layout.Engine {
	if e.ContainsWindow(window) {
		e.env.Logger.Debug().Str("window", string(window)).Msg("window already in slice layout")
		return e
	}
	return e.withWindows(append(slices.Clone(e.windows), window))
}

func (e *Engine) RemoveWindow(window entity.WindowID) layout.Engine {
	if idx := slices.Index(e.minimized, window); idx >= 0 {
		next := *e
		next.minimized = slices.Delete(slices.Clone(e.minimized), idx, idx+1)
		return &next
	}
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		e.env.Logger.Debug().Str("window", string(window)).Msg("window not in slice layout")
		return e
	}
	return e.withWindows(slices.Delete(slices.Clone(e.windows), idx, idx+1))
}

func (e *Engine) GetFirstWindow() (entity.WindowID, bool) {
	if len(e.windows) == 0 {
		return "", false
	}
	return e.windows[0], true
}

// place writes the rectangle of every window index handled by a into out.
func place(a Area, rect entity.Rectangle[int], count int, out []entity.Rectangle[int]) {
	if a.Kind == AreaParent {
		pre := 0.0
		for i, c := range a.Children {
			place(c, entity.Subdivide(rect, a.IsRow, pre, a.Weights[i]), count, out)
			pre += a.Weights[i]
		}
		return
	}
	n := a.Capacity(count)
	for i := range n {
		from := float64(i) / float64(n)
		to := float64(i+1) / float64(n)
		out[a.StartIndex+i] = entity.SubdivideRange(rect, a.IsRow, from, to)
	}
}

func (e *Engine) layoutRects(rect entity.Rectangle[int]) []entity.Rectangle[int] {
	rects := make([]entity.Rectangle[int], len(e.windows))
	if e.filled {
		place(e.pruned, rect, len(e.windows), rects)
	}
	return rects
}

func (e *Engine) referenceRects() []entity.Rectangle[int] {
	e.cache.once.Do(func() {
		e.cache.rects = e.layoutRects(entity.Rectangle[int]{Width: referenceScale, Height: referenceScale})
	})
	return e.cache.rects
}

func (e *Engine) DoLayout(rect entity.Rectangle[int], _ entity.Monitor) []entity.WindowState {
	states := make([]entity.WindowState, 0, e.Count())
	for i, r := range e.layoutRects(rect) {
		states = append(states, entity.WindowState{Window: e.windows[i], Rectangle: r, Size: entity.WindowSizeNormal})
	}
	for _, w := range e.minimized {
		states = append(states, entity.WindowState{Window: w, Size: entity.WindowSizeMinimized})
	}
	return states
}

// indexAtPoint returns the slot containing the normalized point.
func (e *Engine) indexAtPoint(point entity.Point[float64]) (int, bool) {
	point, ok := entity.ClampToUnit(point)
	if !ok {
		return -1, false
	}
	scaled := entity.Point[int]{X: int(point.X * referenceScale), Y: int(point.Y * referenceScale)}
	for i, r := range e.referenceRects() {
		if r.ContainsPoint(scaled) {
			return i, true
		}
	}
	return -1, false
}

// indexInDirection returns the slot adjacent to slot idx.
func (e *Engine) indexInDirection(idx int, direction entity.Direction) (int, bool) {
	ref := entity.Rectangle[int]{Width: referenceScale, Height: referenceScale}
	rects := e.referenceRects()
	candidates := make([]layout.Candidate[int], 0, len(rects))
	for i, r := range rects {
		if i != idx {
			candidates = append(candidates, layout.Candidate[int]{Key: i, Rect: entity.Normalize(r, ref)})
		}
	}
	return layout.Adjacent(entity.Normalize(rects[idx], ref), direction, candidates)
}

// moveToIndex swaps or rotates the window at current onto target.
func (e *Engine) moveToIndex(current, target int) *Engine {
	if current == target {
		return e
	}
	windows := slices.Clone(e.windows)
	if e.insertion == entity.WindowInsertionRotate {
		w := windows[current]
		windows = slices.Delete(windows, current, current+1)
		windows = slices.Insert(windows, target, w)
	} else {
		windows[current], windows[target] = windows[target], windows[current]
	}
	return e.withWindows(windows)
}

func (e *Engine) swapIndices(a, b int) *Engine {
	if a == b {
		return e
	}
	windows := slices.Clone(e.windows)
	windows[a], windows[b] = windows[b], windows[a]
	return e.withWindows(windows)
}

func (e *Engine) MoveWindowToPoint(window entity.WindowID, point entity.Point[float64]) layout.Engine {
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		e.env.Logger.Debug().Str("window", string(window)).Msg("window not in slice layout")
		return e
	}
	target, ok := e.indexAtPoint(point)
	if !ok {
		return e
	}
	return e.moveToIndex(idx, target)
}

func (e *Engine) SwapWindowInDirection(direction entity.Direction, window entity.WindowID) layout.Engine {
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		return e
	}
	target, ok := e.indexInDirection(idx, direction)
	if !ok {
		e.env.Logger.Debug().Str("window", string(window)).Stringer("direction", direction).Msg("no window to swap with")
		return e
	}
	return e.moveToIndex(idx, target)
}

// MoveWindowEdgesInDirection moves window onto the slot its outward moving
// edge pushes into. Zones have static weights, so there is nothing to resize.
func (e *Engine) MoveWindowEdgesInDirection(edges entity.Direction, deltas entity.Point[float64], window entity.WindowID) layout.Engine {
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		return e
	}
	var direction entity.Direction
	switch {
	case edges.Has(entity.DirectionLeft) && deltas.X < 0:
		direction = entity.DirectionLeft
	case edges.Has(entity.DirectionRight) && deltas.X > 0:
		direction = entity.DirectionRight
	case edges.Has(entity.DirectionUp) && deltas.Y < 0:
		direction = entity.DirectionUp
	case edges.Has(entity.DirectionDown) && deltas.Y > 0:
		direction = entity.DirectionDown
	default:
		return e
	}
	target, ok := e.indexInDirection(idx, direction)
	if !ok {
		return e
	}
	return e.moveToIndex(idx, target)
}

func (e *Engine) FocusWindowInDirection(direction entity.Direction, window entity.WindowID) layout.Engine {
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		return e
	}
	target, ok := e.indexInDirection(idx, direction)
	if !ok {
		e.env.Logger.Debug().Str("window", string(window)).Stringer("direction", direction).Msg("no window to focus")
		return e
	}
	e.env.FocusWindow(e.windows[target])
	return e
}

func (e *Engine) MinimizeWindowStart(window entity.WindowID) layout.Engine {
	if slices.Contains(e.minimized, window) {
		return e
	}
	next := e
	if idx := slices.Index(e.windows, window); idx >= 0 {
		next = e.withWindows(slices.Delete(slices.Clone(e.windows), idx, idx+1))
	} else {
		copied := *e
		next = &copied
	}
	next.minimized = append(slices.Clone(e.minimized), window)
	return next
}

func (e *Engine) MinimizeWindowEnd(window entity.WindowID) layout.Engine {
	idx := slices.Index(e.minimized, window)
	if idx < 0 {
		return e
	}
	next := e.withWindows(append(slices.Clone(e.windows), window))
	next.minimized = slices.Delete(slices.Clone(e.minimized), idx, idx+1)
	return next
}
