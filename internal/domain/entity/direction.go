package entity

import "strings"

// Direction is a set of cardinal directions. Edges of a window are expressed by
// combining directions, e.g. DirectionLeft|DirectionUp for the top-left corner.
type Direction uint8

const (
	DirectionNone  Direction = 0
	DirectionLeft  Direction = 1
	DirectionRight Direction = 2
	DirectionUp    Direction = 4
	DirectionDown  Direction = 8
)

// Diagonal shortcuts used for corner edge moves.
const (
	DirectionLeftUp    = DirectionLeft | DirectionUp
	DirectionLeftDown  = DirectionLeft | DirectionDown
	DirectionRightUp   = DirectionRight | DirectionUp
	DirectionRightDown = DirectionRight | DirectionDown
)

// Has reports whether every bit of other is set in d.
func (d Direction) Has(other Direction) bool {
	return other != DirectionNone && d&other == other
}

// IsHorizontal reports whether d is exactly Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// IsVertical reports whether d is exactly Up or Down.
func (d Direction) IsVertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// IsRowAxis reports whether inserting in d grows a row (side by side).
func (d Direction) IsRowAxis() bool {
	return d.Has(DirectionLeft) || d.Has(DirectionRight)
}

// InsertsBefore reports whether inserting in d places the new node before the anchor.
func (d Direction) InsertsBefore() bool {
	return d.Has(DirectionLeft) || d.Has(DirectionUp)
}

// Opposite flips every component of d.
func (d Direction) Opposite() Direction {
	var out Direction
	if d.Has(DirectionLeft) {
		out |= DirectionRight
	}
	if d.Has(DirectionRight) {
		out |= DirectionLeft
	}
	if d.Has(DirectionUp) {
		out |= DirectionDown
	}
	if d.Has(DirectionDown) {
		out |= DirectionUp
	}
	return out
}

func (d Direction) String() string {
	if d == DirectionNone {
		return "none"
	}
	var parts []string
	if d.Has(DirectionLeft) {
		parts = append(parts, "left")
	}
	if d.Has(DirectionRight) {
		parts = append(parts, "right")
	}
	if d.Has(DirectionUp) {
		parts = append(parts, "up")
	}
	if d.Has(DirectionDown) {
		parts = append(parts, "down")
	}
	return strings.Join(parts, "|")
}

// ParseDirection parses a single direction name as used in configuration files.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirectionLeft, true
	case "right":
		return DirectionRight, true
	case "up":
		return DirectionUp, true
	case "down":
		return DirectionDown, true
	default:
		return DirectionNone, false
	}
}
