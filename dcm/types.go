package dcm

// Vec3 is a 3-element Cartesian vector.
type Vec3 [3]float64

// DCM is a 3×3 direction cosine matrix: an orthonormal proper rotation,
// stored row-major. Applying M to a vector in the source frame yields its
// coordinates in the target frame: MulVec(M, v).
type DCM [3][3]float64

// Order is the maximum derivative order a Rot or State container carries:
// Order1 is position/rotation only, up through Order4 (jerk / third DCM
// derivative). Go has no value-level generics, so Order is a runtime field
// on fixed [4]-backed containers rather than a compile-time type
// parameter.
type Order int

// The four supported derivative orders.
const (
	Order1 Order = iota + 1
	Order2
	Order3
	Order4
)

// Count returns how many of the four derivative slots an Order populates.
func (o Order) Count() int {
	return int(o)
}

// Valid reports whether o is one of Order1..Order4.
func (o Order) Valid() bool {
	return o >= Order1 && o <= Order4
}

// AngleDerivs augments a single Euler angle with its rate, acceleration,
// and jerk, truncated to whatever order the caller needs. A zero value
// represents a constant angle (all derivatives zero).
type AngleDerivs struct {
	Theta, Rate, Accel, Jerk float64
}
