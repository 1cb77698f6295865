package geom

import (
	"errors"
	"reflect"
	"testing"
)

func TestIntersect(t *testing.T) {
	s := NewSphere(10, 0, 10, 5)
	down := FromComponents(0, 0, -1)

	tests := []struct {
		name   string
		origin Point3D
		want   []Point3D
	}{
		{"two", NewPoint(7, 0, 20), []Point3D{{7, 0, 14}, {7, 0, 6}}},
		{"center", NewPoint(10, 0, 20), []Point3D{{10, 0, 15}, {10, 0, 5}}},
		{"tangent", NewPoint(15, 0, 20), []Point3D{{15, 0, 10}}},
		{"miss", NewPoint(20, 0, 20), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Intersect(NewRay(tt.origin, down))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRootsAscending(t *testing.T) {
	s := NewSphere(10, 0, 10, 5)
	roots := s.Roots(NewRay(NewPoint(7, 0, 20), FromComponents(0, 0, -1)))
	if !reflect.DeepEqual(roots, []float32{6, 14}) {
		t.Fatalf("Roots = %v, want [6 14]", roots)
	}
}

func TestIntersectNearTangent(t *testing.T) {
	s := NewSphere(10, 0, 10, 5)
	down := FromComponents(0, 0, -1)

	// Just inside the tangent line the discriminant is small but positive.
	got := s.Intersect(NewRay(NewPoint(14.999, 0, 20), down))
	if len(got) != 2 {
		t.Fatalf("inside tangent: got %d points, want 2", len(got))
	}
	for _, p := range got {
		if !near(p.Z, 10, 0.2) {
			t.Errorf("inside tangent: point %v far from the tangent point", p)
		}
	}
	if got[0].Z <= got[1].Z {
		t.Errorf("inside tangent: points not nearest first: %v", got)
	}

	if got := s.Intersect(NewRay(NewPoint(15.001, 0, 20), down)); got != nil {
		t.Errorf("outside tangent: got %v, want no points", got)
	}
}

func TestIntersectBehindOrigin(t *testing.T) {
	s := NewSphere(10, 0, 10, 5)
	r := NewRay(NewPoint(7, 0, 20), FromComponents(0, 0, 1))

	if got := s.Intersect(r); len(got) != 2 {
		t.Fatalf("Intersect = %v, want both points behind the origin", got)
	}
	if p, ok := s.Nearest(r); ok {
		t.Errorf("Nearest = %v, want no visible hit", p)
	}
}

func TestNearest(t *testing.T) {
	s := NewSphere(10, 0, 10, 5)
	down := FromComponents(0, 0, -1)

	p, ok := s.Nearest(NewRay(NewPoint(7, 0, 20), down))
	if !ok || p != NewPoint(7, 0, 14) {
		t.Errorf("Nearest from outside = %v, %v", p, ok)
	}

	// From inside the sphere the exit point is the only one ahead.
	p, ok = s.Nearest(NewRay(NewPoint(10, 0, 10), down))
	if !ok || p != NewPoint(10, 0, 5) {
		t.Errorf("Nearest from inside = %v, %v", p, ok)
	}

	if _, ok := s.Nearest(NewRay(NewPoint(20, 0, 20), down)); ok {
		t.Error("Nearest on a miss reported a hit")
	}
}

func TestIntersectIsPure(t *testing.T) {
	s := NewSphere(50, 20, 50, 20)
	canvas := NewCanvas(50, 50, 75, 100, 100)
	camera := NewPoint(50, 50, 150)

	for y := 0; y < 100; y += 7 {
		for x := 0; x < 100; x += 7 {
			r := canvas.CastRay(AtPixel(x, y), camera)
			first := s.Intersect(r)
			second := s.Intersect(r)
			if !reflect.DeepEqual(first, second) {
				t.Fatalf("pixel (%d, %d): %v then %v", x, y, first, second)
			}
		}
	}
}

func TestSphereValidate(t *testing.T) {
	if err := NewSphere(0, 0, 0, 1).Validate(); err != nil {
		t.Errorf("Validate(r=1) = %v", err)
	}
	for _, r := range []float32{0, -1} {
		if err := NewSphere(0, 0, 0, r).Validate(); !errors.Is(err, ErrRadius) {
			t.Errorf("Validate(r=%v) = %v, want ErrRadius", r, err)
		}
	}
}
