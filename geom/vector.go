package geom

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	// ErrZeroVector is returned by TryNormalize for a vector of zero length.
	ErrZeroVector = errors.New("geom: cannot normalize zero-length vector")
	// ErrNotNormalizable is returned by TryNormalize when a non-zero vector
	// has no finite direction, such as one with an infinite or NaN component.
	ErrNotNormalizable = errors.New("geom: vector has no finite direction")
)

// Vec3 is implemented by both vector flavors.
type Vec3 interface {
	XYZ() (x, y, z float32)
}

// Vector is a free 3D vector of arbitrary magnitude.
type Vector struct {
	x, y, z float32
}

// Unit is a 3D vector of length 1. The only ways to get one are
// Vector.Normalize and FromComponents.
type Unit struct {
	x, y, z float32
}

func New(x, y, z float32) Vector {
	return Vector{x, y, z}
}

// FromComponents is New(x, y, z).Normalize().
func FromComponents(x, y, z float32) Unit {
	return New(x, y, z).Normalize()
}

func (v Vector) XYZ() (float32, float32, float32) {
	return v.x, v.y, v.z
}

func (v Vector) X() float32 { return v.x }
func (v Vector) Y() float32 { return v.y }
func (v Vector) Z() float32 { return v.z }

func (v Vector) LengthSquared() float32 {
	return v.x*v.x + v.y*v.y + v.z*v.z
}

func (v Vector) Length() float32 {
	m, s := v.scaled()
	if m == 0 || math32.IsInf(m, 0) {
		return m
	}
	return m * math32.Sqrt(s.LengthSquared())
}

// scaled divides v by its largest absolute component m so that squaring
// the result can neither overflow nor underflow.
func (v Vector) scaled() (float32, Vector) {
	m := math32.Max(math32.Abs(v.x), math32.Max(math32.Abs(v.y), math32.Abs(v.z)))
	if m == 0 || math32.IsInf(m, 0) {
		return m, v
	}
	return m, Vector{v.x / m, v.y / m, v.z / m}
}

func (v Vector) Dot(u Vec3) float32 {
	return dot(v, u)
}

func (v Vector) Add(u Vec3) Vector {
	return add(v, u)
}

func (v Vector) Scale(t float32) Vector {
	return Vector{v.x * t, v.y * t, v.z * t}
}

func (v Vector) Invert() Vector {
	return Vector{-v.x, -v.y, -v.z}
}

// Normalize divides each component by the length, after scaling by the
// largest component so any finite non-zero vector comes out unit length.
// A zero vector yields non-finite components; use TryNormalize when that
// can happen.
func (v Vector) Normalize() Unit {
	_, s := v.scaled()
	l := math32.Sqrt(s.LengthSquared())
	return Unit{s.x / l, s.y / l, s.z / l}
}

// TryNormalize is Normalize with degenerate input reported as an error
// instead of a non-unit result.
func (v Vector) TryNormalize() (Unit, error) {
	if v.x == 0 && v.y == 0 && v.z == 0 {
		return Unit{}, fmt.Errorf("%w: %v", ErrZeroVector, v)
	}
	u := v.Normalize()
	if !u.finite() || math32.Abs(u.Length()-1) > 1e-5 {
		return Unit{}, fmt.Errorf("%w: %v", ErrNotNormalizable, v)
	}
	return u, nil
}

func (v Vector) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.x, v.y, v.z)
}

func (u Unit) XYZ() (float32, float32, float32) {
	return u.x, u.y, u.z
}

func (u Unit) X() float32 { return u.x }
func (u Unit) Y() float32 { return u.y }
func (u Unit) Z() float32 { return u.z }

func (u Unit) Length() float32 {
	return u.Vector().Length()
}

func (u Unit) Dot(v Vec3) float32 {
	return dot(u, v)
}

// Add and Scale drop the unit tag: the result is not unit length in general.
func (u Unit) Add(v Vec3) Vector {
	return add(u, v)
}

func (u Unit) Scale(t float32) Vector {
	return u.Vector().Scale(t)
}

// Invert keeps the tag since negation preserves length.
func (u Unit) Invert() Unit {
	return Unit{-u.x, -u.y, -u.z}
}

// Vector widens u to a general vector.
func (u Unit) Vector() Vector {
	return Vector{u.x, u.y, u.z}
}

func (u Unit) String() string {
	return fmt.Sprintf("<%g, %g, %g>", u.x, u.y, u.z)
}

func (u Unit) finite() bool {
	for _, c := range [3]float32{u.x, u.y, u.z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func dot(a, b Vec3) float32 {
	ax, ay, az := a.XYZ()
	bx, by, bz := b.XYZ()
	return ax*bx + ay*by + az*bz
}

func add(a, b Vec3) Vector {
	ax, ay, az := a.XYZ()
	bx, by, bz := b.XYZ()
	return Vector{ax + bx, ay + by, az + bz}
}
