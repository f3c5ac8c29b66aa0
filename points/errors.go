package points

import "errors"

var (
	// ErrDuplicateId mirrors graph.ErrDuplicateId in this subsystem's
	// vocabulary.
	ErrDuplicateId = errors.New("points: duplicate node id")
	// ErrDuplicateName mirrors graph.ErrDuplicateName.
	ErrDuplicateName = errors.New("points: duplicate node name")
	// ErrUnknownParent is returned when a registration names a parent id
	// that has not yet been registered in this points graph.
	ErrUnknownParent = errors.New("points: unknown parent point")
	// ErrUnknownPoint is returned when a query or cross-reference names a
	// point id that has not been registered.
	ErrUnknownPoint = errors.New("points: unknown point id")
	// ErrUnknownAxes is returned when a registration names an axes id
	// that has not been registered in the companion axes.System.
	ErrUnknownAxes = errors.New("points: unknown axes id")
	// ErrMultipleRoots is returned by AddRoot when this points System
	// already has a root; exactly one Root point is allowed per system.
	ErrMultipleRoots = errors.New("points: points graph already has a root")
	// ErrAmbiguousEphemeris is returned when the EphemerisProvider
	// supplies more than one (center, axes) pair for the same target.
	ErrAmbiguousEphemeris = errors.New("points: ambiguous ephemeris records for target")
	// ErrNoEphemerisRecord is returned when the EphemerisProvider
	// supplies no (center, axes) pair for the target.
	ErrNoEphemerisRecord = errors.New("points: no ephemeris record for target")
	// ErrNotUpdated is returned when an Updatable point is queried at an
	// epoch or order its last Update call did not stamp.
	ErrNotUpdated = errors.New("points: updatable point read before matching update")
)
