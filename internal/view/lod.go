package view

import (
	"math"

	"sphereflake/internal/geom"
)

// LOD selects the geometry proxy a node is drawn with.
type LOD int

const (
	Invisible LOD = iota - 1
	Low
	Medium
	High
	Highest

	// LODs is the number of drawable buckets.
	LODs = 4
)

var lodNames = [LODs]string{"low", "medium", "high", "highest"}

func (l LOD) String() string {
	if l < Low || l > Highest {
		return "invisible"
	}
	return lodNames[l]
}

// Angular thresholds in degrees at a 45 degree field of view. They are scaled
// by the ratio of the current field of view to 45 degrees.
//
// The comparison runs Low, Medium, High in this order, so a node is High only
// if its footprint is below HighAngle yet not below LowAngle, which never
// happens. The sequence is kept as it affects what is drawn.
const (
	InvisibleAngle = 0.15
	LowAngle       = 0.5
	MediumAngle    = 1.0
	HighAngle      = 0.25
)

// thresholds are the cosines a footprint is compared against for one field of view.
type thresholds struct {
	invisible float64
	low       float64
	medium    float64
	high      float64
}

func thresholdsFor(fov float64) thresholds {
	coef := fov / (math.Pi / 4)
	cos := func(deg float64) float64 {
		return math.Cos(geom.ScalarToRadians(coef*deg, geom.Degrees))
	}
	return thresholds{
		invisible: cos(InvisibleAngle),
		low:       cos(LowAngle),
		medium:    cos(MediumAngle),
		high:      cos(HighAngle),
	}
}

// lod maps the cosine of a node's apparent half-size to its bucket.
func (t thresholds) lod(cosine float64) LOD {
	switch {
	case cosine > t.invisible:
		return Invisible
	case cosine > t.low:
		return Low
	case cosine > t.medium:
		return Medium
	case cosine > t.high:
		return High
	default:
		return Highest
	}
}
