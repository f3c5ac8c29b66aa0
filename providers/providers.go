package providers

import (
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
)

// PositionRecord describes one (target, center, axes) triple an
// EphemerisProvider can serve, together with its epoch coverage.
// points.AddEphemeris consults PositionRecords to discover the
// center/axes of a newly registered Ephemeris point.
type PositionRecord struct {
	Target        graph.NodeId
	Center        graph.NodeId
	Axes          graph.NodeId
	CoverageStart float64
	CoverageEnd   float64
}

// EphemerisProvider supplies position/velocity/acceleration/jerk of a
// target point with respect to a center point, at a requested epoch and
// derivative order. Implementations back onto whatever ephemeris kernel
// format the caller has loaded; this engine never reads kernel files
// itself.
type EphemerisProvider interface {
	// PositionRecords enumerates every (target, center, axes) triple this
	// provider can serve.
	PositionRecords() []PositionRecord

	// Compute returns order+1 derivative blocks (r, v, a, j truncated to
	// order) of target relative to center, expressed in the record's
	// axes, at epoch. Returns ErrDataGap if epoch falls outside the
	// provider's loaded coverage.
	Compute(order int, target, center graph.NodeId, epoch float64) ([]dcm.Vec3, error)
}

// TimeProvider converts a caller-supplied epoch representation into
// seconds past the J2000 TDB reference this engine's queries are
// expressed in. Time-scale conversion itself (UT1, TT, leap seconds) is
// entirely the implementation's concern.
type TimeProvider interface {
	TDBSeconds(epoch float64) (float64, error)
}

// PlanetaryOrientation supplies a body's orientation DCM and its time
// derivatives as a function of TDB seconds past J2000 — the collaborator
// an IAU 2006/2000 precession-nutation axes wiring would delegate to.
// axes does not import this interface: axes.AddRotating takes a
// Jet-valued axes.RotatingFunc, so a PlanetaryOrientation is not passed
// to it directly.
type PlanetaryOrientation interface {
	DCM(t float64) dcm.DCM
	DeltaDCM(t float64) dcm.DCM
	Delta2DCM(t float64) dcm.DCM
}
