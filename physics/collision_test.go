package physics

import (
	"math/rand"
	"testing"
)

func TestReflectInBox(t *testing.T) {
	tests := []struct {
		name    string
		r       Rect
		vel     Vec2
		wantPos Vec2
		wantVel Vec2
	}{
		{"left wall", Rect{X: -2, Y: 100, W: 10, H: 10}, Vec2{-7, 7}, Vec2{2, 100}, Vec2{7, 7}},
		{"right wall", Rect{X: 194, Y: 100, W: 10, H: 10}, Vec2{7, -7}, Vec2{186, 100}, Vec2{-7, -7}},
		{"top wall", Rect{X: 50, Y: -5, W: 10, H: 10}, Vec2{3, -9}, Vec2{50, 5}, Vec2{3, 9}},
		{"corner", Rect{X: -1, Y: 493, W: 10, H: 10}, Vec2{-7, 7}, Vec2{1, 487}, Vec2{7, -7}},
		{"inside", Rect{X: 50, Y: 50, W: 10, H: 10}, Vec2{7, 7}, Vec2{50, 50}, Vec2{7, 7}},
	}
	for _, tt := range tests {
		r, vel := ReflectInBox(tt.r, tt.vel, Field)
		if r.Pos() != tt.wantPos || vel != tt.wantVel {
			t.Errorf("%s: expected %v %v, got %v %v", tt.name, tt.wantPos, tt.wantVel, r.Pos(), vel)
		}
	}
}

func TestReflectInBoxContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		r := Rect{X: rng.Intn(300) - 50, Y: rng.Intn(600) - 50, W: BallSize, H: BallSize}
		vel := Vec2{rng.Intn(91) - 45, rng.Intn(91) - 45}
		got, _ := ReflectInBox(r, vel, Field)
		if !got.Within(Field) {
			t.Fatalf("%v reflected to %v outside the field", r, got)
		}
	}
}

func TestBounceOff(t *testing.T) {
	paddle := Rect{X: 80, Y: 420, W: PaddleWidth, H: PaddleHeight}
	blocker := Rect{X: 100, Y: 240, W: BlockerWidth, H: BlockerHeight}

	tests := []struct {
		name    string
		r       Rect
		vel     Vec2
		hit     Rect
		hitVel  Vec2
		wantPos Vec2
		wantVel Vec2
	}{
		{"top face", Rect{X: 95, Y: 412, W: 10, H: 10}, Vec2{0, 7}, paddle, Vec2{}, Vec2{95, 410}, Vec2{0, -7}},
		{"left face", Rect{X: 95, Y: 245, W: 10, H: 10}, Vec2{7, 0}, blocker, Vec2{}, Vec2{90, 245}, Vec2{-7, 0}},
		{"bottom face", Rect{X: 110, Y: 255, W: 10, H: 10}, Vec2{-7, -7}, blocker, Vec2{}, Vec2{110, 260}, Vec2{-7, 7}},
		{"exact corner", Rect{X: 95, Y: 235, W: 10, H: 10}, Vec2{7, 7}, blocker, Vec2{}, Vec2{90, 230}, Vec2{-7, -7}},
		// The blocker ran into a ball drifting towards it.
		{"moving obstacle", Rect{X: 137, Y: 245, W: 10, H: 10}, Vec2{-2, 7}, Rect{X: 110, Y: 240, W: 30, H: 20}, Vec2{5, 0}, Vec2{140, 245}, Vec2{2, 7}},
	}
	for _, tt := range tests {
		r, vel := BounceOff(tt.r, tt.vel, tt.hit, tt.hitVel)
		if r.Pos() != tt.wantPos || vel != tt.wantVel {
			t.Errorf("%s: expected %v %v, got %v %v", tt.name, tt.wantPos, tt.wantVel, r.Pos(), vel)
		}
		if r.Intersects(tt.hit) {
			t.Errorf("%s: %v still overlaps %v", tt.name, r, tt.hit)
		}
	}
}

func TestBounceOffNeverOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	hit := Rect{X: 80, Y: 240, W: BlockerWidth, H: BlockerHeight}
	for i := 0; i < 10000; i++ {
		r := Rect{X: hit.X - 9 + rng.Intn(hit.W+18), Y: hit.Y - 9 + rng.Intn(hit.H+18), W: BallSize, H: BallSize}
		vel := Vec2{rng.Intn(31) - 15, rng.Intn(31) - 15}
		hitVel := Vec2{rng.Intn(11) - 5, 0}
		got, _ := BounceOff(r, vel, hit, hitVel)
		if got.Intersects(hit) {
			t.Fatalf("%v moving %v still overlaps %v after bounce: %v", r, vel, hit, got)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		vx, paddleVX, want int
	}{
		{7, 0, 7},
		{0, 5, 5},
		{0, -5, -5},
		{7, 5, 10},
		{-7, -5, -10},
		{7, -5, -7},
		{-9, 5, 9},
	}
	for _, tt := range tests {
		if got := Slice(tt.vx, tt.paddleVX); got != tt.want {
			t.Errorf("Slice(%d, %d): expected %d, got %d", tt.vx, tt.paddleVX, tt.want, got)
		}
	}
}

func TestCrossed(t *testing.T) {
	last, cur := Rect{Y: 380, W: 10, H: 10}, Rect{Y: 455, W: 10, H: 10}
	if !CrossedDown(last, cur, 420) {
		t.Fatal("expected a downward crossing")
	}
	if CrossedDown(cur, last, 420) || CrossedDown(last, Rect{Y: 405, W: 10, H: 10}, 420) {
		t.Fatal("unexpected downward crossing")
	}
	if !CrossedUp(Rect{Y: 105, W: 10, H: 10}, Rect{Y: 60, W: 10, H: 10}, 100) {
		t.Fatal("expected an upward crossing")
	}
	if CrossedUp(Rect{Y: 100, W: 10, H: 10}, Rect{Y: 60, W: 10, H: 10}, 100) {
		t.Fatal("a ball already on the plane did not cross it")
	}
}
