package geom

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var sampleVectors = []Vector{
	New(1, 0, 0),
	New(3, 4, 0),
	New(-2, 5, 7),
	New(0.001, -0.002, 0.003),
	New(1e3, 2e3, -3e3),
	New(-24.5, -24.5, -50),
}

// Squaring any component of these overflows or underflows float32.
var extremeVectors = []Vector{
	New(1e20, 0, 0),
	New(3e-23, 4e-23, 0),
	New(1e-30, 0, 0),
	New(0, -3e38, 3e38),
	New(1e-45, 1e-45, 1e-45),
	New(1e25, 1e-25, -1e25),
}

func near(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestNormalizeHasUnitLength(t *testing.T) {
	for _, v := range append(sampleVectors, extremeVectors...) {
		u := v.Normalize()
		if !near(u.Length(), 1, 1e-5) {
			t.Errorf("|%v.Normalize()| = %v, want 1", v, u.Length())
		}
	}
}

func TestNormalizeDividesByLength(t *testing.T) {
	u := New(3, 4, 0).Normalize()
	if u.X() != 0.6 || u.Y() != 0.8 || u.Z() != 0 {
		t.Fatalf("New(3, 4, 0).Normalize() = %v", u)
	}
}

func TestFromComponentsMatchesNormalize(t *testing.T) {
	for _, v := range append(sampleVectors, extremeVectors...) {
		got := FromComponents(v.XYZ())
		want := v.Normalize()
		if got != want {
			t.Errorf("FromComponents(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestNormalizeExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		v       Vector
		x, y, z float32
	}{
		{New(1e20, 0, 0), 1, 0, 0},
		{New(3e-23, 4e-23, 0), 0.6, 0.8, 0},
		{New(1e-30, 0, 0), 1, 0, 0},
		{New(0, -3e38, 3e38), 0, -0.70710677, 0.70710677},
	}
	for _, tt := range tests {
		u := tt.v.Normalize()
		if !near(u.X(), tt.x, 1e-6) || !near(u.Y(), tt.y, 1e-6) || !near(u.Z(), tt.z, 1e-6) {
			t.Errorf("%v.Normalize() = %v, want <%v, %v, %v>", tt.v, u, tt.x, tt.y, tt.z)
		}
	}

	if l := New(1e20, 0, 0).Length(); l != 1e20 {
		t.Errorf("|<1e20, 0, 0>| = %v, want 1e20", l)
	}
	if l := New(3e-23, 4e-23, 0).Length(); !near(l, 5e-23, 1e-28) {
		t.Errorf("|<3e-23, 4e-23, 0>| = %v, want 5e-23", l)
	}
}

func TestDotIsLengthSquared(t *testing.T) {
	for _, v := range sampleVectors {
		l := v.Length()
		if d := v.Dot(v); !near(d, l*l, 1e-5*(1+d)) {
			t.Errorf("%v.Dot(self) = %v, want %v", v, d, l*l)
		}
	}
}

func TestAgainstMathgl(t *testing.T) {
	for i, v := range sampleVectors {
		w := sampleVectors[(i+1)%len(sampleVectors)]
		mv := mgl32.Vec3{v.X(), v.Y(), v.Z()}
		mw := mgl32.Vec3{w.X(), w.Y(), w.Z()}

		if got, want := v.Dot(w), mv.Dot(mw); !near(got, want, 1e-4*(1+math32.Abs(want))) {
			t.Errorf("%v.Dot(%v) = %v, mathgl %v", v, w, got, want)
		}
		if got, want := v.Length(), mv.Len(); !near(got, want, 1e-5*(1+want)) {
			t.Errorf("%v.Length() = %v, mathgl %v", v, got, want)
		}
		sum := v.Add(w)
		msum := mv.Add(mw)
		if sum.X() != msum[0] || sum.Y() != msum[1] || sum.Z() != msum[2] {
			t.Errorf("%v.Add(%v) = %v, mathgl %v", v, w, sum, msum)
		}
		u, mu := v.Normalize(), mv.Normalize()
		if !near(u.X(), mu[0], 1e-6) || !near(u.Y(), mu[1], 1e-6) || !near(u.Z(), mu[2], 1e-6) {
			t.Errorf("%v.Normalize() = %v, mathgl %v", v, u, mu)
		}
	}
}

func TestUnitArithmetic(t *testing.T) {
	u := FromComponents(0, 3, 4)

	inv := u.Invert()
	if inv.X() != 0 || inv.Y() != -u.Y() || inv.Z() != -u.Z() {
		t.Fatalf("Invert() = %v", inv)
	}
	if !near(inv.Length(), 1, 1e-6) {
		t.Errorf("|Invert()| = %v", inv.Length())
	}

	// Sums and multiples of unit vectors are general vectors.
	var sum Vector = u.Add(u)
	if !near(sum.Length(), 2, 1e-6) {
		t.Errorf("|u+u| = %v, want 2", sum.Length())
	}
	var scaled Vector = u.Scale(3)
	if !near(scaled.Length(), 3, 1e-6) {
		t.Errorf("|3u| = %v, want 3", scaled.Length())
	}
	if d := u.Dot(inv); !near(d, -1, 1e-6) {
		t.Errorf("u.Dot(-u) = %v, want -1", d)
	}
	if d := u.Dot(New(0, 5, 0)); !near(d, 3, 1e-6) {
		t.Errorf("u.Dot(general) = %v, want 3", d)
	}
}

func TestGeneralInvert(t *testing.T) {
	v := New(1, -2, 3).Invert()
	if v != New(-1, 2, -3) {
		t.Fatalf("Invert() = %v", v)
	}
}

func TestTryNormalize(t *testing.T) {
	if _, err := New(0, 0, 0).TryNormalize(); !errors.Is(err, ErrZeroVector) {
		t.Fatalf("TryNormalize(zero) err = %v, want ErrZeroVector", err)
	}

	for _, v := range extremeVectors {
		u, err := v.TryNormalize()
		if err != nil {
			t.Errorf("TryNormalize(%v): %v", v, err)
			continue
		}
		if !near(u.Length(), 1, 1e-5) {
			t.Errorf("|TryNormalize(%v)| = %v, want 1", v, u.Length())
		}
	}

	for _, v := range []Vector{New(math32.Inf(1), 0, 0), New(1, math32.NaN(), 0)} {
		_, err := v.TryNormalize()
		if !errors.Is(err, ErrNotNormalizable) || errors.Is(err, ErrZeroVector) {
			t.Errorf("TryNormalize(%v) err = %v, want ErrNotNormalizable", v, err)
		}
	}

	u, err := New(0, 0, -2).TryNormalize()
	if err != nil {
		t.Fatalf("TryNormalize: %v", err)
	}
	if u != FromComponents(0, 0, -1) {
		t.Errorf("TryNormalize() = %v", u)
	}
}
