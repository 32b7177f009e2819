package physics

// Vec2 is an integer 2D vector used for positions and per-frame velocities.
type Vec2 struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Rect is an axis-aligned rectangle. X and Y are the top-left corner; the
// right and bottom edges are exclusive, so two rectangles that only touch do
// not overlap.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at the position passed with the given size.
func NewRect(pos Vec2, w, h int) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Pos returns the top-left corner of the rectangle.
func (r Rect) Pos() Vec2 {
	return Vec2{r.X, r.Y}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal centre of the rectangle, rounded down.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical centre of the rectangle, rounded down.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersects returns true if the two rectangles overlap with a non-zero area.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// OverlapsX returns true if the horizontal spans of the rectangles overlap.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right()
}

// Within returns true if r lies entirely inside box.
func (r Rect) Within(box Rect) bool {
	return r.X >= box.X && r.Y >= box.Y && r.Right() <= box.Right() && r.Bottom() <= box.Bottom()
}

// ClampInside moves r the minimum distance needed to lie inside box. The size
// of r is preserved.
func (r Rect) ClampInside(box Rect) Rect {
	r.X = Clamp(r.X, box.X, box.Right()-r.W)
	r.Y = Clamp(r.Y, box.Y, box.Bottom()-r.H)
	return r
}

// Clamp restricts val to the range [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Sign returns -1, 0 or 1 depending on the sign of n.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
