package layout

import (
	"math"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

const edgeEpsilon = 1e-9

// Candidate is a window slot considered by Adjacent.
type Candidate[K comparable] struct {
	Key  K
	Rect entity.Rectangle[float64]
}

type navCandidate[K comparable] struct {
	key       K
	noOverlap bool
	gap       float64
	offLead   bool
	crossDist float64
}

func (a navCandidate[K]) less(b navCandidate[K]) bool {
	if a.noOverlap != b.noOverlap {
		return !a.noOverlap
	}
	if math.Abs(a.gap-b.gap) > edgeEpsilon {
		return a.gap < b.gap
	}
	if a.offLead != b.offLead {
		return !a.offLead
	}
	return a.crossDist < b.crossDist-edgeEpsilon
}

// Adjacent returns the candidate lying immediately past the edge of source in
// direction. Only candidates entirely beyond that edge qualify. Candidates
// overlapping source on the cross axis win, then the smallest gap, then the
// one covering source's leading cross coordinate (top for horizontal moves,
// left for vertical ones), then the nearest cross-axis center.
func Adjacent[K comparable](source entity.Rectangle[float64], direction entity.Direction, candidates []Candidate[K]) (K, bool) {
	var best *navCandidate[K]
	for _, c := range candidates {
		nc, ok := scoreCandidate(source, direction, c)
		if !ok {
			continue
		}
		if best == nil || nc.less(*best) {
			best = &nc
		}
	}
	if best == nil {
		var zero K
		return zero, false
	}
	return best.key, true
}

func scoreCandidate[K comparable](src entity.Rectangle[float64], direction entity.Direction, c Candidate[K]) (navCandidate[K], bool) {
	r := c.Rect
	nc := navCandidate[K]{key: c.Key}

	var gap float64
	switch direction {
	case entity.DirectionLeft:
		gap = src.X - r.Right()
	case entity.DirectionRight:
		gap = r.X - src.Right()
	case entity.DirectionUp:
		gap = src.Y - r.Bottom()
	case entity.DirectionDown:
		gap = r.Y - src.Bottom()
	default:
		return nc, false
	}
	if gap < -edgeEpsilon {
		return nc, false
	}
	nc.gap = max(gap, 0)

	srcC, rC := src.Center(), r.Center()
	if direction.IsHorizontal() {
		nc.noOverlap = !overlaps(src.Y, src.Bottom(), r.Y, r.Bottom())
		nc.offLead = !spans(r.Y, r.Bottom(), src.Y)
		nc.crossDist = math.Abs(rC.Y - srcC.Y)
	} else {
		nc.noOverlap = !overlaps(src.X, src.Right(), r.X, r.Right())
		nc.offLead = !spans(r.X, r.Right(), src.X)
		nc.crossDist = math.Abs(rC.X - srcC.X)
	}
	return nc, true
}

func overlaps(aLo, aHi, bLo, bHi float64) bool {
	return aLo < bHi-edgeEpsilon && bLo < aHi-edgeEpsilon
}

func spans(lo, hi, v float64) bool {
	return v >= lo-edgeEpsilon && v < hi-edgeEpsilon
}
