package sim

// Dimension identifies one of the alternate realities that gate which
// geometry is solid and visible. Entities tagged DimAll participate in
// every dimension.
type Dimension int

const (
	DimAll Dimension = -1

	DimNormal   Dimension = 1
	DimMirror   Dimension = 2
	DimTimeSlow Dimension = 3
	DimQuantum  Dimension = 4
)

// DimensionCount is the number of selectable dimensions.
const DimensionCount = 4

// ActiveIn reports whether an entity tagged d participates in the current
// dimension. This is the single gating predicate for collision, update,
// and visibility.
func (d Dimension) ActiveIn(current Dimension) bool {
	return d == DimAll || d == current
}

// Next cycles to the following dimension, wrapping Quantum back to Normal.
func (d Dimension) Next() Dimension {
	if d < DimNormal || d >= DimQuantum {
		return DimNormal
	}
	return d + 1
}

// ColorClass maps a dimension to its particle color index 0..3.
// DimAll and out-of-range values map to the Normal class.
func (d Dimension) ColorClass() int {
	if d < DimNormal || d > DimQuantum {
		return 0
	}
	return int(d - DimNormal)
}

func (d Dimension) String() string {
	switch d {
	case DimAll:
		return "all"
	case DimNormal:
		return "normal"
	case DimMirror:
		return "mirror"
	case DimTimeSlow:
		return "time-slow"
	case DimQuantum:
		return "quantum"
	}
	return "unknown"
}
