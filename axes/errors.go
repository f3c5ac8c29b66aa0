package axes

import "errors"

var (
	// ErrDuplicateId mirrors graph.ErrDuplicateId in this subsystem's
	// vocabulary.
	ErrDuplicateId = errors.New("axes: duplicate node id")
	// ErrDuplicateName mirrors graph.ErrDuplicateName.
	ErrDuplicateName = errors.New("axes: duplicate node name")
	// ErrUnknownParent is returned when a registration names a parent id
	// that has not yet been registered in this axes graph.
	ErrUnknownParent = errors.New("axes: unknown parent axes")
	// ErrUnknownAxes is this package's name for an unregistered axes id.
	// No System method returns it: Produce, ClassOf and ParentOf report an
	// unregistered id with graph.ErrUnknownNode.
	ErrUnknownAxes = errors.New("axes: unknown axes id")
	// ErrInvalidParent is returned by AddInertial when a root Inertial
	// node is given a dcm, when a non-root Inertial node names a parent
	// that is not itself Inertial, or when a second root is registered. A
	// non-root Inertial node without a dcm fails with ErrMissingDcm instead.
	ErrInvalidParent = errors.New("axes: invalid parent for inertial axes")
	// ErrMissingDcm is returned when a registration call required a DCM
	// argument that was not supplied.
	ErrMissingDcm = errors.New("axes: missing dcm")
	// ErrInvalidSequence re-surfaces dcm.ErrInvalidSequence in this
	// package's error vocabulary for AddComputable's seq argument.
	ErrInvalidSequence = errors.New("axes: invalid two-vector sequence")
	// ErrUnknownPoint is returned when AddComputable's point-existence
	// check (supplied by the caller as a PointExistsFunc) rejects one of
	// the two vector descriptors' from/to point ids.
	ErrUnknownPoint = errors.New("axes: unknown point reference")
	// ErrOrderExceeded is returned when a Computable vector descriptor's
	// declared Order is insufficient for a requested query order, or
	// when a descriptor requests Order3 (acceleration propagated through
	// the two-vectors construction) without AllowAccelerationOrder.
	ErrOrderExceeded = errors.New("axes: derivative order exceeded")
)
