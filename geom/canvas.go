package geom

// Canvas is a width x height rectangle centered on the origin of its plane.
// Only planes facing along z are supported: ToWorld ignores the normal.
type Canvas struct {
	plane         Plane
	width, height float32
}

// NewCanvas places the canvas at (x, y, z). The plane normal is the direction
// of that position seen from the world origin, so the canvas only faces the
// camera when the world origin, canvas and camera line up. The origin must not
// be (0, 0, 0).
func NewCanvas(x, y, z, w, h float32) Canvas {
	return Canvas{
		plane: Plane{
			Origin: Point3D{x, y, z},
			Normal: FromComponents(x, y, z),
		},
		width:  w,
		height: h,
	}
}

func (c Canvas) Plane() Plane { return c.plane }
func (c Canvas) Width() float32 { return c.width }
func (c Canvas) Height() float32 { return c.height }
func (c Canvas) Origin() Point3D { return c.plane.Origin }

// ToCanvas returns the offset of p from the canvas center.
func (c Canvas) ToCanvas(p Point2D[ScreenSpace]) Point2D[CanvasSpace] {
	return Point2D[CanvasSpace]{
		X: p.X - c.width*0.5,
		Y: p.Y - c.height*0.5,
	}
}

// ToWorld lifts a screen position onto the canvas plane.
func (c Canvas) ToWorld(p Point2D[ScreenSpace]) Point3D {
	l := c.ToCanvas(p)
	o := c.plane.Origin
	return Point3D{o.X + l.X, o.Y + l.Y, o.Z}
}

// CastRay returns the ray from camera through the canvas at pos. The camera
// must not lie on the target point.
func (c Canvas) CastRay(pos Point2D[ScreenSpace], camera Point3D) Ray {
	target := c.ToWorld(pos)
	return Ray{
		Origin:    camera,
		Direction: camera.VectorTo(target).Normalize(),
	}
}
