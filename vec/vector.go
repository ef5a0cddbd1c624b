package vec

import "math"

// Side selects one of the two perpendiculars of a heading.
type Side int

const (
	Left Side = iota
	Right
)

// Vector2 is a 2D floating point vector in map space (x right, y down).
type Vector2 struct {
	X, Y float64
}

func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vector2 {
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector, or the zero vector for a zero input.
func (v Vector2) Normalize() Vector2 {
	l := v.Len()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{v.X / l, v.Y / l}
}

// Rotate rotates the vector by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle is the heading of the vector in radians, in (-Pi, Pi].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Orthogonal returns the quarter-turn of v toward the given side. With y
// pointing down, Left is the -90 degree rotation and Right the +90 one.
func (v Vector2) Orthogonal(side Side) Vector2 {
	if side == Left {
		return Vector2{X: v.Y, Y: -v.X}
	}
	return Vector2{X: -v.Y, Y: v.X}
}

// Less orders vectors by x, then by y.
func (v Vector2) Less(o Vector2) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}

func (v Vector2) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

func (v *Vector2) AddAssign(o Vector2) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vector2) SubAssign(o Vector2) {
	v.X -= o.X
	v.Y -= o.Y
}

func (v *Vector2) ScaleAssign(s float64) {
	v.X *= s
	v.Y *= s
}

// AddScalar adds s to both components.
func (v *Vector2) AddScalar(s float64) {
	v.X += s
	v.Y += s
}
