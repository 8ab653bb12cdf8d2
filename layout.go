package glint

import "fmt"

// Direction specifies the axis along which a Layout splits a Rect.
type Direction int

const (
	// Horizontal splits side-by-side (segments vary in width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (segments vary in height).
	Vertical
)

// constraintKind discriminates the Constraint variants.
type constraintKind int

const (
	constraintFill constraintKind = iota
	constraintLength
	constraintPercentage
	constraintRatio
	constraintMin
	constraintMax
)

// Constraint defines the size of one layout segment.
// Construct values with Fill, Length, Percentage, Ratio, Min, or Max.
type Constraint struct {
	kind constraintKind
	n    int
	num  int
	den  int
}

// Fill takes an equal share of the space remaining after fixed-size
// segments are subtracted.
func Fill() Constraint {
	return Constraint{kind: constraintFill}
}

// Length is a fixed number of cells.
func Length(n int) Constraint {
	return Constraint{kind: constraintLength, n: n}
}

// Percentage is a fixed percentage (0-100) of the total space.
func Percentage(p int) Constraint {
	return Constraint{kind: constraintPercentage, n: p}
}

// Ratio is a fixed fraction num/den of the total space.
func Ratio(num, den int) Constraint {
	return Constraint{kind: constraintRatio, num: num, den: den}
}

// Min takes a Fill share but at least n cells.
func Min(n int) Constraint {
	return Constraint{kind: constraintMin, n: n}
}

// Max takes a Fill share but at most n cells.
func Max(n int) Constraint {
	return Constraint{kind: constraintMax, n: n}
}

// isFlexible reports whether the constraint sizes from leftover space.
func (c Constraint) isFlexible() bool {
	switch c.kind {
	case constraintFill, constraintMin, constraintMax:
		return true
	}
	return false
}

// fixedSize resolves a non-flexible constraint against the total extent.
func (c Constraint) fixedSize(total int) int {
	switch c.kind {
	case constraintLength:
		return c.n
	case constraintPercentage:
		return c.n * total / 100
	case constraintRatio:
		if c.den == 0 {
			return 0
		}
		return total * c.num / c.den
	}
	return 0
}

// Layout divides a Rect into contiguous sub-rects along one axis.
type Layout struct {
	Direction   Direction
	Constraints []Constraint
}

// NewLayout creates a layout with the given direction and constraints.
func NewLayout(direction Direction, constraints ...Constraint) Layout {
	return Layout{Direction: direction, Constraints: constraints}
}

// Split divides rect into one sub-rect per constraint, in order.
// Sub-rects are contiguous and non-overlapping along the split axis; the
// orthogonal dimension is unchanged. The integer remainder of dividing
// leftover space among flexible constraints is dropped, not redistributed,
// so the segments may not cover the full extent.
func (l Layout) Split(rect Rect) []Rect {
	total := rect.Width
	if l.Direction == Vertical {
		total = rect.Height
	}

	fixed := 0
	flexCount := 0
	for _, c := range l.Constraints {
		if c.isFlexible() {
			flexCount++
			continue
		}
		fixed += c.fixedSize(total)
	}

	flexUnit := 0
	if flexCount > 0 {
		remaining := total - fixed
		if remaining > 0 {
			flexUnit = remaining / flexCount
		}
	}

	rects := make([]Rect, 0, len(l.Constraints))
	offset := 0
	for _, c := range l.Constraints {
		var size int
		switch c.kind {
		case constraintFill:
			size = flexUnit
		case constraintMin:
			size = max(flexUnit, c.n)
		case constraintMax:
			size = min(flexUnit, c.n)
		default:
			size = c.fixedSize(total)
		}

		var sub Rect
		if l.Direction == Horizontal {
			sub = NewRect(rect.X+offset, rect.Y, size, rect.Height)
		} else {
			sub = NewRect(rect.X, rect.Y+offset, rect.Width, size)
		}
		rects = append(rects, sub)
		offset += size
	}

	return rects
}

// SplitN splits rect and requires exactly n constraints.
// Panics if the constraint count does not match n: an arity mismatch is a
// programming error, not a runtime condition.
func (l Layout) SplitN(rect Rect, n int) []Rect {
	if len(l.Constraints) != n {
		panic(fmt.Sprintf("glint: layout has %d constraints, caller expects %d", len(l.Constraints), n))
	}
	return l.Split(rect)
}
