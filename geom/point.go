package geom

import "fmt"

// Space tags the coordinate frame of a Point2D. The tags carry no data.
type Space interface {
	ScreenSpace | CanvasSpace | WorldSpace
}

type (
	// ScreenSpace is discrete pixel coordinates, sampled at pixel centers.
	ScreenSpace struct{}
	// CanvasSpace is an offset from the center of a canvas.
	CanvasSpace struct{}
	// WorldSpace is the x/y footprint of a world position.
	WorldSpace struct{}
)

// Point2D is a 2D position in the space S. Moving between spaces goes through
// Canvas.ToCanvas, Canvas.ToWorld or Point3D.Project, never a conversion.
type Point2D[S Space] struct {
	_    [0]S
	X, Y float32
}

// AtPixel returns the center of pixel (x, y).
func AtPixel(x, y int) Point2D[ScreenSpace] {
	return Point2D[ScreenSpace]{X: float32(x) + 0.5, Y: float32(y) + 0.5}
}

func (p Point2D[S]) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Point3D is a world position.
type Point3D struct {
	X, Y, Z float32
}

func NewPoint(x, y, z float32) Point3D {
	return Point3D{x, y, z}
}

// VectorTo returns dest - p.
func (p Point3D) VectorTo(dest Point3D) Vector {
	return Vector{dest.X - p.X, dest.Y - p.Y, dest.Z - p.Z}
}

func (p Point3D) TranslatedBy(v Vec3) Point3D {
	x, y, z := v.XYZ()
	return Point3D{p.X + x, p.Y + y, p.Z + z}
}

// Project drops z.
func (p Point3D) Project() Point2D[WorldSpace] {
	return Point2D[WorldSpace]{X: p.X, Y: p.Y}
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
