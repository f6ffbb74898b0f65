package dom

import "fmt"

// DOMRect is an axis aligned box. Points on the left and top edges are
// inside, points on the right and bottom edges are not.
// https://drafts.fxtf.org/geometry/#domrect
type DOMRect struct {
	X, Y, Width, Height float64
}

func (r DOMRect) Left() float64   { return r.X }
func (r DOMRect) Top() float64    { return r.Y }
func (r DOMRect) Right() float64  { return r.X + r.Width }
func (r DOMRect) Bottom() float64 { return r.Y + r.Height }

func (r DOMRect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r DOMRect) ContainsPoint(x, y float64) bool {
	if r.Empty() {
		return false
	}
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

func (r DOMRect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
}
