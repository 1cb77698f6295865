package geom

// Plane is an oriented plane through Origin.
type Plane struct {
	Origin Point3D
	Normal Unit
}

// Ray is a half-line from Origin. Its direction is always unit length.
type Ray struct {
	Origin    Point3D
	Direction Unit
}

func NewRay(origin Point3D, dir Unit) Ray {
	return Ray{Origin: origin, Direction: dir}
}

func (r Ray) At(t float32) Point3D {
	return r.Origin.TranslatedBy(r.Direction.Scale(t))
}
