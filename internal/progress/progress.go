package progress

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultHoursTarget is the flight hours required to finish the programme.
	DefaultHoursTarget Hours = 250

	// HoursKey is the store key holding the current hours value.
	HoursKey = "flyingHours"

	lowBandLimit  = 30.0
	highBandLimit = 70.0
)

// Hours is a validated hours value. Values produced by ParseHours and
// ClampHours are always within [0, target].
type Hours float64

func (h Hours) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64)
}

// Band is the presentation colour bucket for a percentage.
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// BandFor returns low below 30, mid below 70 and high otherwise.
func BandFor(percent float64) Band {
	switch {
	case percent < lowBandLimit:
		return BandLow
	case percent < highBandLimit:
		return BandMid
	default:
		return BandHigh
	}
}

// CategoryRatio returns checked/total for the given completion flags, or 0
// when there are none.
func CategoryRatio(checked []bool) float64 {
	if len(checked) == 0 {
		return 0
	}
	done := 0
	for _, c := range checked {
		if c {
			done++
		}
	}
	return float64(done) / float64(len(checked))
}

// CategoryPercent is CategoryRatio scaled to a whole percentage.
func CategoryPercent(checked []bool) int {
	return int(math.Round(CategoryRatio(checked) * 100))
}

// ClampHours bounds v to [0, target]. NaN becomes 0.
func ClampHours(v, target Hours) Hours {
	if math.IsNaN(float64(v)) || v < 0 {
		return 0
	}
	if target < 0 {
		target = 0
	}
	if v > target {
		return target
	}
	return v
}

// ParseHours turns raw user input into a clamped hours value. Blank,
// non-numeric and negative input yields 0; anything above target yields target.
func ParseHours(raw string, target Hours) Hours {
	h, _ := CoerceHours(raw, target)
	return h
}

// CoerceHours is ParseHours that also reports whether the input had to be
// changed to fit. Surrounding space, a leading plus sign or trailing zeros
// are not coercion; blank input is.
func CoerceHours(raw string, target Hours) (Hours, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals still carry a sign worth honouring.
		if !errors.Is(err, strconv.ErrRange) {
			return 0, true
		}
	}
	h := ClampHours(Hours(v), target)
	return h, err != nil || float64(h) != v
}

// HoursRatio returns current/target with current clamped first. A target of
// zero or less yields 0.
func HoursRatio(current, target Hours) float64 {
	if target <= 0 {
		return 0
	}
	return float64(ClampHours(current, target)) / float64(target)
}

// HoursPercent is HoursRatio scaled to [0, 100].
func HoursPercent(current, target Hours) float64 {
	return HoursRatio(current, target) * 100
}

// OverallPercent sums ratio × weight over every weighted key and scales the
// result to a percentage. Keys with no ratio contribute nothing. The result is
// bounded to [0, 100] even when weights do not sum to one.
func OverallPercent(ratios map[string]float64, weights map[string]float64) float64 {
	var sum float64
	for key, w := range weights {
		sum += ratios[key] * w
	}
	return math.Max(0, math.Min(100, sum*100))
}

// PercentLabel renders a percentage the way every bar shows it, e.g. "65%".
func PercentLabel(percent float64) string {
	return strconv.Itoa(int(math.Round(percent))) + "%"
}

// HoursLabel renders the hours bar value, e.g. "120.5 Hours".
func HoursLabel(current Hours) string {
	return current.String() + " Hours"
}

// RemainingLabel reports the hours still to fly, or the achievement once
// current reaches target.
func RemainingLabel(current, target Hours) string {
	if Achieved(current, target) {
		return target.String() + " Hours Achieved! 🎉"
	}
	remaining := target - current
	if remaining < 0 {
		remaining = 0
	}
	return remaining.String() + " Hours Remaining"
}

// Achieved reports whether current has reached target.
func Achieved(current, target Hours) bool {
	return current >= target
}
