// Package entity contains the value types shared by layout engines and their collaborators.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "math"

// Number is the coordinate type of a Rectangle or Point.
// Absolute (pixel) geometry uses int, normalized geometry uses float64.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a position in either absolute or normalized space.
type Point[T Number] struct {
	X T
	Y T
}

// Rectangle is an axis-aligned box. Width and Height are never negative.
type Rectangle[T Number] struct {
	X      T
	Y      T
	Width  T
	Height T
}

// UnitSquare is the normalized rectangle covering a whole monitor.
func UnitSquare() Rectangle[float64] {
	return Rectangle[float64]{Width: 1, Height: 1}
}

// ClampToUnit returns p for use against half-open unit rectangles. A point
// on the right or bottom edge of the unit square is moved just inside it;
// points beyond the square are rejected.
func ClampToUnit(p Point[float64]) (Point[float64], bool) {
	if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 || math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return p, false
	}
	below := math.Nextafter(1, 0)
	return Point[float64]{X: min(p.X, below), Y: min(p.Y, below)}, true
}

// Center returns the center point of the rectangle.
func (r Rectangle[T]) Center() Point[T] {
	return Point[T]{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Right returns the x coordinate just past the right edge.
func (r Rectangle[T]) Right() T { return r.X + r.Width }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rectangle[T]) Bottom() T { return r.Y + r.Height }

// ContainsPoint reports whether p lies inside r. The left and top edges are inclusive,
// the right and bottom edges exclusive.
func (r Rectangle[T]) ContainsPoint(p Point[T]) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Area returns Width*Height as float64.
func (r Rectangle[T]) Area() float64 {
	return float64(r.Width) * float64(r.Height)
}

// Normalize converts an absolute rectangle into fractions of ref.
// A degenerate reference yields the zero rectangle.
func Normalize[T Number](r Rectangle[T], ref Rectangle[T]) Rectangle[float64] {
	if ref.Width == 0 || ref.Height == 0 {
		return Rectangle[float64]{}
	}
	w, h := float64(ref.Width), float64(ref.Height)
	return Rectangle[float64]{
		X:      float64(r.X-ref.X) / w,
		Y:      float64(r.Y-ref.Y) / h,
		Width:  float64(r.Width) / w,
		Height: float64(r.Height) / h,
	}
}

// NormalizePoint converts an absolute point into fractions of ref.
func NormalizePoint[T Number](p Point[T], ref Rectangle[T]) (Point[float64], bool) {
	if ref.Width == 0 || ref.Height == 0 {
		return Point[float64]{}, false
	}
	return Point[float64]{
		X: float64(p.X-ref.X) / float64(ref.Width),
		Y: float64(p.Y-ref.Y) / float64(ref.Height),
	}, true
}

// ToMonitor scales a normalized rectangle onto an absolute one.
// Coordinates round half away from zero.
func (r Rectangle[T]) ToMonitor(monitor Rectangle[int]) Rectangle[int] {
	w, h := float64(monitor.Width), float64(monitor.Height)
	return Rectangle[int]{
		X:      monitor.X + RoundInt(float64(r.X)*w),
		Y:      monitor.Y + RoundInt(float64(r.Y)*h),
		Width:  RoundInt(float64(r.Width) * w),
		Height: RoundInt(float64(r.Height) * h),
	}
}

// Subdivide returns the absolute sub-rectangle of parent that starts at the
// fraction pre along the main axis and spans frac of it.
func Subdivide(parent Rectangle[int], isRow bool, pre, frac float64) Rectangle[int] {
	return SubdivideRange(parent, isRow, pre, pre+frac)
}

// SubdivideRange returns the part of parent between the fractions from and to
// along the main axis. Both edges are rounded independently so consecutive
// ranges share an edge exactly.
func SubdivideRange(parent Rectangle[int], isRow bool, from, to float64) Rectangle[int] {
	size := parent.Height
	if isRow {
		size = parent.Width
	}
	start := min(RoundInt(from*float64(size)), size)
	end := min(RoundInt(to*float64(size)), size)
	extent := max(end-start, 0)
	if isRow {
		return Rectangle[int]{X: parent.X + start, Y: parent.Y, Width: extent, Height: parent.Height}
	}
	return Rectangle[int]{X: parent.X, Y: parent.Y + start, Width: parent.Width, Height: extent}
}

// SubdivideUnit is the normalized counterpart of Subdivide.
func SubdivideUnit(parent Rectangle[float64], isRow bool, pre, frac float64) Rectangle[float64] {
	if isRow {
		return Rectangle[float64]{X: parent.X + pre*parent.Width, Y: parent.Y, Width: frac * parent.Width, Height: parent.Height}
	}
	return Rectangle[float64]{X: parent.X, Y: parent.Y + pre*parent.Height, Width: parent.Width, Height: frac * parent.Height}
}

// DirectionToPoint picks the side of r closest to p using the rectangle's diagonals.
// The rectangle is split into four triangles by its diagonals and the triangle
// containing p names the side.
func (r Rectangle[T]) DirectionToPoint(p Point[T]) Direction {
	if r.Width == 0 || r.Height == 0 {
		return DirectionNone
	}
	// Work in the unit square of r so the diagonals are y=x and y=1-x.
	x := float64(p.X-r.X) / float64(r.Width)
	y := float64(p.Y-r.Y) / float64(r.Height)

	belowMain := y > x     // below the top-left to bottom-right diagonal
	belowAnti := y > 1.0-x // below the bottom-left to top-right diagonal
	switch {
	case !belowMain && !belowAnti:
		return DirectionUp
	case belowMain && belowAnti:
		return DirectionDown
	case belowMain:
		return DirectionLeft
	default:
		return DirectionRight
	}
}

// RoundInt rounds half away from zero.
func RoundInt(v float64) int {
	return int(math.Round(v))
}
