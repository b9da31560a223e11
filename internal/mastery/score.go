package mastery

import (
	"image/color"
	"math"
)

// Score is the display form of one aggregated skill value. It is computed
// fresh on every render pass and never stored.
type Score struct {
	Value   float64     // aggregated raw value, root-inclusive
	Percent int         // 0..100
	Color   color.NRGBA // heat colour
	HasData bool        // false when the user holds no record on the skill
}

// MasteryFraction maps an aggregated value onto (0, 1) with the logistic
// curve 1 / (1 + e^-x).
func MasteryFraction(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// DisplayPercent returns the mastery fraction as a rounded percentage.
func DisplayPercent(x float64) int {
	return int(math.Round(100 * MasteryFraction(x)))
}

// ScoreOf builds the score of a skill the user has data for.
func ScoreOf(value float64) Score {
	f := MasteryFraction(value)
	return Score{
		Value:   value,
		Percent: DisplayPercent(value),
		Color:   ColorFor(&f, true),
		HasData: true,
	}
}

// NoDataScore is the score of a trackable skill the user has no record on.
func NoDataScore() Score {
	return Score{Color: ColorNoData}
}

// UntrackableScore is the score of a slot with no skill behind it.
func UntrackableScore() Score {
	return Score{Color: ColorUntrackable}
}
