package physics

// ReflectInBox mirrors a rectangle that has passed one of the walls of box back
// inside it and turns the matching velocity component around. Both axes are
// handled independently, so a corner contact flips both components. The
// returned rectangle always lies within box.
func ReflectInBox(r Rect, vel Vec2, box Rect) (Rect, Vec2) {
	if r.Left() < box.Left() {
		r.X = box.Left() + (box.Left() - r.Left())
		vel.X = Abs(vel.X)
	} else if r.Right() > box.Right() {
		r.X = box.Right() - r.W - (r.Right() - box.Right())
		vel.X = -Abs(vel.X)
	}

	if r.Top() < box.Top() {
		r.Y = box.Top() + (box.Top() - r.Top())
		vel.Y = Abs(vel.Y)
	} else if r.Bottom() > box.Bottom() {
		r.Y = box.Bottom() - r.H - (r.Bottom() - box.Bottom())
		vel.Y = -Abs(vel.Y)
	}
	return r.ClampInside(box), vel
}

type entry struct {
	ok  bool
	pen int
	pos int
	dir int
}

// BounceOff resolves a moving rectangle r that overlaps the struck rectangle
// hit. The axis is chosen from the motion of r relative to hit during the last
// step: the axis whose surface was crossed last is the contact surface, and r
// is placed flush against it with that velocity component pointing away. If
// both surfaces were crossed at the same instant both axes are resolved. If r
// already overlapped hit on both axes before the step, the shallowest
// penetration axis is used. The result never overlaps hit.
func BounceOff(r Rect, vel Vec2, hit Rect, hitVel Vec2) (Rect, Vec2) {
	if !r.Intersects(hit) {
		return r, vel
	}
	rel := vel.Sub(hitVel)
	prev := r.Translate(rel.Neg())

	var x, y entry
	if rel.Y > 0 && prev.Bottom() <= hit.Top() {
		y = entry{ok: true, pen: r.Bottom() - hit.Top(), pos: hit.Top() - r.H, dir: -1}
	} else if rel.Y < 0 && prev.Top() >= hit.Bottom() {
		y = entry{ok: true, pen: hit.Bottom() - r.Top(), pos: hit.Bottom(), dir: 1}
	}
	if rel.X > 0 && prev.Right() <= hit.Left() {
		x = entry{ok: true, pen: r.Right() - hit.Left(), pos: hit.Left() - r.W, dir: -1}
	} else if rel.X < 0 && prev.Left() >= hit.Right() {
		x = entry{ok: true, pen: hit.Right() - r.Left(), pos: hit.Right(), dir: 1}
	}

	resolveX, resolveY := false, false
	switch {
	case x.ok && y.ok:
		// pen/|rel| is the fraction of the step spent inside hit along that axis:
		// the smaller one was entered last.
		lhs, rhs := y.pen*Abs(rel.X), x.pen*Abs(rel.Y)
		resolveY = lhs <= rhs
		resolveX = rhs <= lhs
	case y.ok:
		resolveY = true
	case x.ok:
		resolveX = true
	default:
		x, y = depenetration(r, hit)
		if y.pen <= x.pen {
			resolveY = true
		} else {
			resolveX = true
		}
	}

	if resolveY {
		r.Y = y.pos
		vel.Y = y.dir * Abs(vel.Y)
	}
	if resolveX {
		r.X = x.pos
		vel.X = x.dir * Abs(vel.X)
	}
	return r, vel
}

// depenetration returns, per axis, the shortest push that separates r from hit.
func depenetration(r, hit Rect) (x, y entry) {
	if up, down := r.Bottom()-hit.Top(), hit.Bottom()-r.Top(); up <= down {
		y = entry{ok: true, pen: up, pos: hit.Top() - r.H, dir: -1}
	} else {
		y = entry{ok: true, pen: down, pos: hit.Bottom(), dir: 1}
	}
	if left, right := r.Right()-hit.Left(), hit.Right()-r.Left(); left <= right {
		x = entry{ok: true, pen: left, pos: hit.Left() - r.W, dir: -1}
	} else {
		x = entry{ok: true, pen: right, pos: hit.Right(), dir: 1}
	}
	return x, y
}

// Slice returns the ball's horizontal speed after being struck by a paddle
// moving horizontally at paddleVX. A still paddle leaves the speed untouched,
// a paddle moving with the ball speeds it up and a paddle moving against the
// ball sends it back the way it came.
func Slice(vx, paddleVX int) int {
	switch {
	case paddleVX == 0:
		return vx
	case vx == 0:
		return paddleVX
	case Sign(vx) == Sign(paddleVX):
		return vx + Sign(vx)*SliceBoost
	default:
		return -vx
	}
}

// CrossedDown returns true if the bottom edge of a rectangle moved from strictly
// above planeY to at-or-below it between last and cur.
func CrossedDown(last, cur Rect, planeY int) bool {
	return last.Bottom() < planeY && cur.Bottom() >= planeY
}

// CrossedUp returns true if the top edge of a rectangle moved from strictly
// below planeY to at-or-above it between last and cur.
func CrossedUp(last, cur Rect, planeY int) bool {
	return last.Top() > planeY && cur.Top() <= planeY
}
