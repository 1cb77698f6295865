package geom

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var ErrRadius = errors.New("geom: sphere radius must be positive")

type Sphere struct {
	Center Point3D
	Radius float32
}

func NewSphere(x, y, z, r float32) Sphere {
	return Sphere{Center: Point3D{x, y, z}, Radius: r}
}

// Validate reports a non-positive or non-finite radius. Intersection does not
// check it.
func (s Sphere) Validate() error {
	if !(s.Radius > 0) || math32.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: got %g", ErrRadius, s.Radius)
	}
	return nil
}

// Roots solves |o + t*d - c|^2 = r^2 for t and returns the solutions in
// ascending order: none on a miss, one when the ray is tangent, two otherwise.
// Tangency is an exact zero discriminant, so rays that graze the sphere
// within rounding error come back as two nearly equal roots.
func (s Sphere) Roots(r Ray) []float32 {
	// Center to origin.
	sv := s.Center.VectorTo(r.Origin)

	a := r.Direction.Dot(r.Direction)
	b := 2 * sv.Dot(r.Direction)
	c := sv.Dot(sv) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	switch {
	case discriminant < 0:
		return nil
	case discriminant == 0:
		return []float32{-b / (2 * a)}
	}

	sq := math32.Sqrt(discriminant)
	near := (-b - sq) / (2 * a)
	far := (-b + sq) / (2 * a)
	return []float32{near, far}
}

// Intersect returns the points where r crosses the sphere, nearest first.
// Points behind the ray origin are included.
func (s Sphere) Intersect(r Ray) []Point3D {
	roots := s.Roots(r)
	if len(roots) == 0 {
		return nil
	}
	points := make([]Point3D, len(roots))
	for i, t := range roots {
		points[i] = r.At(t)
	}
	return points
}

// Nearest returns the first point on the sphere at or ahead of the ray
// origin, which is the visible surface.
func (s Sphere) Nearest(r Ray) (Point3D, bool) {
	for _, t := range s.Roots(r) {
		if t >= 0 {
			return r.At(t), true
		}
	}
	return Point3D{}, false
}
