package geom

import "github.com/chewxy/math32"

// Brightness shades the point p on a sphere centered at center, seen along d
// and lit from light. The normal points inward, from p to the center, and the
// result is |d.n - l.n| where l runs from the light to p. The value lies in
// [0, 2]; Channel clamps it. A light placed exactly on p has no direction
// to p and the result is NaN.
func Brightness(p, center Point3D, d Unit, light Point3D) float32 {
	n := p.VectorTo(center).Normalize()
	l := light.VectorTo(p).Normalize()
	return math32.Abs(d.Dot(n) - l.Dot(n))
}

// Channel maps a brightness to an 8-bit channel value. NaN maps to 0.
func Channel(b float32) uint8 {
	if math32.IsNaN(b) {
		return 0
	}
	b = math32.Max(0, math32.Min(b, 1))
	return uint8(math32.Floor(b*255 + 0.5))
}
