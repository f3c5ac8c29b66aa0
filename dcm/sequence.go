package dcm

// Axis names a single coordinate axis used by an elementary rotation.
type Axis int

// The three coordinate axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Sequence is a symbolic Euler-angle rotation sequence: one of 3
// singletons, 6 pairs, or 12 triplets (all 6 Tait-Bryan and all 6
// proper-Euler combinations).
type Sequence int

// The 21 supported sequences.
const (
	SeqX Sequence = iota
	SeqY
	SeqZ
	SeqXY
	SeqXZ
	SeqYX
	SeqYZ
	SeqZX
	SeqZY
	SeqXYZ
	SeqXYX
	SeqXZY
	SeqXZX
	SeqYXZ
	SeqYXY
	SeqYZX
	SeqYZY
	SeqZXY
	SeqZXZ
	SeqZYX
	SeqZYZ
)

// sequenceAxes maps each Sequence to its ordered elementary axes. Index 0
// is the rotation applied first (rightmost in the matrix product): the
// composed DCM is M = A₃·A₂·A₁.
var sequenceAxes = map[Sequence][]Axis{
	SeqX:   {AxisX},
	SeqY:   {AxisY},
	SeqZ:   {AxisZ},
	SeqXY:  {AxisX, AxisY},
	SeqXZ:  {AxisX, AxisZ},
	SeqYX:  {AxisY, AxisX},
	SeqYZ:  {AxisY, AxisZ},
	SeqZX:  {AxisZ, AxisX},
	SeqZY:  {AxisZ, AxisY},
	SeqXYZ: {AxisX, AxisY, AxisZ},
	SeqXYX: {AxisX, AxisY, AxisX},
	SeqXZY: {AxisX, AxisZ, AxisY},
	SeqXZX: {AxisX, AxisZ, AxisX},
	SeqYXZ: {AxisY, AxisX, AxisZ},
	SeqYXY: {AxisY, AxisX, AxisY},
	SeqYZX: {AxisY, AxisZ, AxisX},
	SeqYZY: {AxisY, AxisZ, AxisY},
	SeqZXY: {AxisZ, AxisX, AxisY},
	SeqZXZ: {AxisZ, AxisX, AxisZ},
	SeqZYX: {AxisZ, AxisY, AxisX},
	SeqZYZ: {AxisZ, AxisY, AxisZ},
}

func axesForSequence(seq Sequence) ([]Axis, error) {
	axes, ok := sequenceAxes[seq]
	if !ok {
		return nil, ErrInvalidSequence
	}
	return axes, nil
}

// TwoVectorSeq is a two-letter axis-alignment sequence for the
// two-vectors frame construction: the first letter names the axis aligned
// with the (normalized) primary vector, the second the axis aligned with
// the component of the secondary vector orthogonal to the primary.
type TwoVectorSeq int

// The 6 supported two-vector sequences.
const (
	TVXY TwoVectorSeq = iota
	TVYX
	TVXZ
	TVZX
	TVYZ
	TVZY
)

// twoVectorAxes returns, for seq, the row index of the primary axis (i1),
// the secondary axis (i2), the remaining axis (i3), and the sign applied
// to cross(n1, n2) when assigning the remaining axis — +1 when
// (i1,i2,i3) is a cyclic (even) permutation of (X,Y,Z), −1 otherwise, so
// that (n1,n2,n3) forms a right-handed frame matching the sequence's
// named axis order rather than just the cross product's own handedness.
func twoVectorAxes(seq TwoVectorSeq) (i1, i2, i3 int, sign float64, err error) {
	switch seq {
	case TVXY:
		return 0, 1, 2, 1, nil
	case TVYZ:
		return 1, 2, 0, 1, nil
	case TVZX:
		return 2, 0, 1, 1, nil
	case TVYX:
		return 1, 0, 2, -1, nil
	case TVZY:
		return 2, 1, 0, -1, nil
	case TVXZ:
		return 0, 2, 1, -1, nil
	default:
		return 0, 0, 0, 0, ErrInvalidSequence
	}
}
