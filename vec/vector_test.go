package vec

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestRotatePreservesLength(t *testing.T) {
	vectors := []Vector2{
		{1, 0},
		{0, -3},
		{2.5, 7.25},
		{-154.68, 62.11},
	}
	for _, v := range vectors {
		for r := -2 * math.Pi; r <= 2*math.Pi; r += 0.1 {
			got := v.Rotate(r).Len()
			if math.Abs(got-v.Len()) > epsilon*math.Max(1, v.Len()) {
				t.Fatalf("|rotate(%v, %.2f)| = %f, want %f", v, r, got, v.Len())
			}
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	got := New(1, 0).Rotate(math.Pi / 2)
	if math.Abs(got.X) > epsilon || math.Abs(got.Y-1) > epsilon {
		t.Errorf("Expected (0,1), got %v", got)
	}
}

func TestOrthogonal(t *testing.T) {
	headings := []Vector2{
		{1, 0},
		{0, 1},
		FromAngle(0.7),
		FromAngle(-2.3),
	}
	for _, h := range headings {
		l := h.Orthogonal(Left)
		r := h.Orthogonal(Right)

		if math.Abs(l.Dot(h)) > epsilon || math.Abs(r.Dot(h)) > epsilon {
			t.Errorf("orthogonals of %v are not perpendicular: %v %v", h, l, r)
		}
		if math.Abs(l.Dot(r)+h.LenSq()) > epsilon {
			t.Errorf("orthogonals of %v are not antiparallel: %v %v", h, l, r)
		}
	}

	// facing east with y down, left is north
	if l := New(1, 0).Orthogonal(Left); l != New(0, -1) {
		t.Errorf("Expected left of east to be (0,-1), got %v", l)
	}
}

func TestAngle(t *testing.T) {
	if a := New(0, 1).Angle(); math.Abs(a-math.Pi/2) > epsilon {
		t.Errorf("Expected Pi/2, got %f", a)
	}
	if a := New(-1, 0).Angle(); math.Abs(a-math.Pi) > epsilon {
		t.Errorf("Expected Pi, got %f", a)
	}
}

func TestArithmetic(t *testing.T) {
	a, b := New(1, 2), New(3, -4)

	if got := a.Add(b); got != New(4, -2) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != New(-2, 6) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != New(2, 4) {
		t.Errorf("Scale: got %v", got)
	}
	if got := b.Len(); got != 5 {
		t.Errorf("Len: got %f", got)
	}
	if got := b.LenSq(); got != 25 {
		t.Errorf("LenSq: got %f", got)
	}

	c := a
	c.AddAssign(b)
	c.SubAssign(New(1, 1))
	c.ScaleAssign(0.5)
	c.AddScalar(1)
	if c != New(2.5, -0.5) {
		t.Errorf("in-place chain: got %v", c)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vector2{}).Normalize(); got != (Vector2{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestLess(t *testing.T) {
	if !New(1, 5).Less(New(2, 0)) {
		t.Error("Expected x to dominate ordering")
	}
	if !New(1, 0).Less(New(1, 1)) {
		t.Error("Expected y to break ties")
	}
	if New(1, 1).Less(New(1, 1)) {
		t.Error("Expected equal vectors not to be less")
	}
}
