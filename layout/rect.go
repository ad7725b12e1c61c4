package layout

import (
	"fmt"
	"iter"
	"math"
)

// Point is an integer position on the board plane.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an integer rectangle with half-open ranges [Left, Right) and [Top, Bottom).
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

func (r Rect) Width() int { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }
func (r Rect) Area() int { return r.Width() * r.Height() }

func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.Left, r.Top, r.Width(), r.Height())
}

// Merge returns the smallest rect covering both r and other.
func (r Rect) Merge(other Rect) Rect {
	return Rect{
		Left:   min(r.Left, other.Left),
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
	}
}

// Overlaps reports whether the two rects share at least one cell.
func (r Rect) Overlaps(other Rect) bool {
	return !(r.Right <= other.Left ||
		other.Right <= r.Left ||
		r.Bottom <= other.Top ||
		other.Bottom <= r.Top)
}

// Intersection returns the overlapping part of the two rects.
// ok is false when they are disjoint.
func (r Rect) Intersection(other Rect) (common Rect, ok bool) {
	if !r.Overlaps(other) {
		return Rect{}, false
	}
	return Rect{
		Left:   max(r.Left, other.Left),
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
	}, true
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return r.Left <= p.X && p.X < r.Right && r.Top <= p.Y && p.Y < r.Bottom
}

// SpiralPoints yields every point of the rect exactly once, starting at its
// center and walking outward in a clockwise square spiral. Each call to the
// returned sequence starts over.
//
// Offsets are floored onto the grid so that negative coordinates map one to one.
func (r Rect) SpiralPoints() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		cx := float64(r.Left+r.Right) / 2
		cy := float64(r.Top+r.Bottom) / 2
		x, y, dx, dy := 0, 0, 0, -1

		side := max(r.Width(), r.Height()) + 2
		for range side * side {
			p := Point{X: int(math.Floor(float64(x) + cx)), Y: int(math.Floor(float64(y) + cy))}
			if r.Contains(p) && !yield(p) {
				return
			}
			if x == y || (x < 0 && x == -y) || (x > 0 && x == 1-y) {
				dx, dy = -dy, dx
			}
			x, y = x+dx, y+dy
		}
	}
}
