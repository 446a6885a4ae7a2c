package progress

// Progress describes how far the user has come toward a required number of
// work hours.
type Progress struct {
	Percentage     float64
	RemainingHours float64
}

// Track compares hours already worked against hours needed. The percentage is
// clamped to [0, 100] and defined as 0 when hoursNeeded is not positive, so
// a division by zero can never leak into the result.
func Track(hoursWorked, hoursNeeded float64) Progress {
	if hoursNeeded <= 0 {
		return Progress{Percentage: 0, RemainingHours: 0}
	}

	percentage := hoursWorked / hoursNeeded * 100
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	remaining := hoursNeeded - hoursWorked
	if remaining < 0 {
		remaining = 0
	}

	return Progress{Percentage: percentage, RemainingHours: remaining}
}
