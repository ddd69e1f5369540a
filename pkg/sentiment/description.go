package sentiment

import (
	"math"
)

const (
	Unknown = "unknown"
	Average = "average"
)

// Slice boundaries of the circumplex in degrees, shared by both halves.
var angularCutoffs = [...]float64{0, 18.43, 45, 71.57, 90, 108.43, 135, 161.57, 180}

var (
	lowerTerms = [...]string{
		"contented", "serene", "relaxed", "calm",
		"bored", "lethargic", "depressed", "sad",
	}
	upperTerms = [...]string{
		"happy", "elated", "excited", "alert",
		"tense", "nervous", "stressed", "upset",
	}
)

// Description names the emotion at (valence, arousal) on Russell's
// circumplex. Both values must lie in [1, 9]; anything else is "unknown".
func Description(v, a float64) string {
	if v < 1 || v > 9 || a < 1 || a > 9 {
		return Unknown
	}
	// the centre has no direction
	if v == 5 && a == 5 {
		return Average
	}

	nv := (v - 5) / 4
	na := (a - 5) / 4
	radius := math.Sqrt(nv*nv + na*na)
	direction := math.Acos(nv/radius) * 180 / math.Pi

	if direction <= 45 || direction >= 135 {
		radius /= math.Sqrt(na*na + 1)
	} else {
		radius /= math.Sqrt(nv*nv + 1)
	}

	var modifier string
	switch {
	case radius <= 0.25:
		modifier = "slightly "
	case radius <= 0.5:
		modifier = "moderately "
	case radius > 0.75:
		modifier = "very "
	}

	terms := lowerTerms
	if na > 0 {
		terms = upperTerms
	}

	for i, term := range terms {
		if direction >= angularCutoffs[i] && direction <= angularCutoffs[i+1] {
			return modifier + term
		}
	}

	return Unknown
}
