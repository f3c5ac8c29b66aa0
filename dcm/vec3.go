package dcm

import "math"

// Dot returns the scalar (inner) product of a and b.
func Dot(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Norm returns the Euclidean length of v.
func Norm(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

// Cross returns the vector (cross) product a×b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// AddVec returns a+b.
func AddVec(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// SubVec returns a-b.
func SubVec(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// ScaleVec returns v scaled by k.
func ScaleVec(v Vec3, k float64) Vec3 {
	return Vec3{v[0] * k, v[1] * k, v[2] * k}
}

// Normalize returns v scaled to unit length. Behavior is undefined if v is
// the zero vector, mirroring Orthonormalize's stance on rank-deficient
// input.
func Normalize(v Vec3) Vec3 {
	return ScaleVec(v, 1/Norm(v))
}
