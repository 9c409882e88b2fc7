package geom

import "math"

// AngleUnit selects how angle arguments are interpreted.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

// ScalarToRadians converts an angle expressed in unit to radians.
func ScalarToRadians(angle float64, unit AngleUnit) float64 {
	if unit == Degrees {
		return angle * math.Pi / 180.0
	}
	return angle
}

// RadiansToScalar converts an angle in radians to unit.
func RadiansToScalar(rads float64, unit AngleUnit) float64 {
	if unit == Degrees {
		return 180.0 * rads / math.Pi
	}
	return rads
}
