package calculator

import (
	"math"
	"strconv"

	"github.com/PinjaMari/earn-to-own/pkg/translations"
)

// Breakdown is the time cost of a purchase at a given hourly wage, expressed
// in several work-time units.
type Breakdown struct {
	Hours   float64
	Days    float64
	Weeks   float64
	Minutes float64
}

// Fixed product constants: an 8-hour workday and a 40-hour workweek. They are
// deliberately not configurable and not derived from the locale.
const (
	hoursPerWorkday  = 8.0
	hoursPerWorkweek = 40.0
)

// Compute turns (hourlyWage, price) into a time-cost breakdown. When either
// input is not strictly positive there is no result (ok=false); callers must
// render an awaiting-input state rather than a zero. Compute never errors.
func Compute(hourlyWage, price float64) (Breakdown, bool) {
	if hourlyWage <= 0 || price <= 0 {
		return Breakdown{}, false
	}

	hours := price / hourlyWage
	// Minutes is the largest derived unit; if it overflows, no unit of the
	// breakdown is presentable and there is no result.
	if math.IsInf(hours*60, 0) {
		return Breakdown{}, false
	}
	return Breakdown{
		Hours:   hours,
		Days:    hours / hoursPerWorkday,
		Weeks:   hours / hoursPerWorkweek,
		Minutes: hours * 60,
	}, true
}

// FormatValue renders a value for display: small values get extra precision
// so they do not collapse to "0.0". Values below 0.1 use two decimals, values
// below 1 use one, and everything else uses the decimals requested by the
// display slot (hours, days and weeks use 1; the minutes slot uses 0).
func FormatValue(v float64, decimals int) string {
	if v < 0.1 {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	if v < 1 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// MotivationKey picks the motivational message matching the required hours.
// The thresholds are fixed product choices.
func MotivationKey(hours float64) translations.LabelKey {
	switch {
	case hours < 1:
		return translations.MotivationQuickWin
	case hours < 8:
		return translations.MotivationDayOrLess
	case hours < 40:
		return translations.MotivationFewDays
	case hours < 160:
		return translations.MotivationSolidGoal
	default:
		return translations.MotivationBigPurchase
	}
}
