package service

import (
	"time"

	"github.com/pediatric-clinical-engine/internal/domain"
)

// Clinical tracking helpers: pure date arithmetic over treatment courses
// and score deltas. Day counts are calendar-based, so all inputs are
// truncated to dates before differencing. Helpers that depend on "today"
// have an ...At variant taking an explicit reference time.

// Respiratory trend display colors. A falling score is an improvement.
const (
	TrendColorGreen  = "green"
	TrendColorYellow = "yellow"
	TrendColorRed    = "red"
)

// CurrentDay returns the 1-based treatment day for a course started on
// startDate, as of now.
func CurrentDay(startDate time.Time) int {
	return CurrentDayAt(startDate, time.Now())
}

// CurrentDayAt returns the 1-based treatment day as of a reference time.
// The start date itself is day 1; the result is never below 1 even when
// asOf precedes the start.
func CurrentDayAt(startDate, asOf time.Time) int {
	days := daysBetween(startDate, asOf) + 1
	if days < 1 {
		return 1
	}
	return days
}

// EndDate returns the last treatment day of a course: a 1-day course ends
// on its start date.
func EndDate(startDate time.Time, plannedDays int) time.Time {
	return truncateToDate(startDate).AddDate(0, 0, plannedDays-1)
}

// ProgressPercent returns the completed share of a course, capped at 100.
func ProgressPercent(currentDay, plannedDays int) float64 {
	if plannedDays <= 0 {
		return 100
	}
	percent := float64(currentDay) / float64(plannedDays) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// IsEndingSoon reports whether a course has 1 or 2 days remaining. A
// finished course (currentDay >= plannedDays) is not "ending soon".
func IsEndingSoon(currentDay, plannedDays int) bool {
	remaining := plannedDays - currentDay
	return remaining > 0 && remaining <= 2
}

// HasEnded reports whether the course has reached its planned length.
func HasEnded(currentDay, plannedDays int) bool {
	return currentDay >= plannedDays
}

// TrackAntibiotic derives the full day-count state of an antibiotic course
// as of now.
func TrackAntibiotic(name string, startDate time.Time, plannedDays int) domain.AntibioticTracking {
	return TrackAntibioticAt(name, startDate, plannedDays, time.Now())
}

// TrackAntibioticAt derives the full day-count state of an antibiotic
// course as of a reference time.
func TrackAntibioticAt(name string, startDate time.Time, plannedDays int, asOf time.Time) domain.AntibioticTracking {
	currentDay := CurrentDayAt(startDate, asOf)
	percent := ProgressPercent(currentDay, plannedDays)

	return domain.AntibioticTracking{
		Name:            name,
		StartDate:       truncateToDate(startDate),
		PlannedDays:     plannedDays,
		CurrentDay:      currentDay,
		EndDate:         EndDate(startDate, plannedDays),
		ProgressPercent: percent,
		ProgressBand:    domain.ProgressBandFor(percent),
		EndingSoon:      IsEndingSoon(currentDay, plannedDays),
		Ended:           HasEnded(currentDay, plannedDays),
	}
}

// RespiratoryDelta derives the change of a respiratory score since
// admission. A negative delta is an improvement (green); a positive delta
// is worsening (red).
func RespiratoryDelta(score domain.RespiratoryScore) domain.ScoreDelta {
	delta := score.Current - score.AtAdmission

	result := domain.ScoreDelta{Delta: delta}
	switch {
	case delta < 0:
		result.Trend = domain.TREND_DOWN
		result.Color = TrendColorGreen
	case delta > 0:
		result.Trend = domain.TREND_UP
		result.Color = TrendColorRed
	default:
		result.Trend = domain.TREND_FLAT
		result.Color = TrendColorYellow
	}
	return result
}

// HospitalizationDay returns the 1-based stay day and its display band as
// of a reference time.
func HospitalizationDay(admission, asOf time.Time) (int, domain.StayBand) {
	day := CurrentDayAt(admission, asOf)
	return day, domain.StayBandFor(day)
}

func daysBetween(from, to time.Time) int {
	return int(utcMidnight(to).Sub(utcMidnight(from)).Hours() / 24)
}

// utcMidnight rebuilds the calendar date in UTC. Local midnights are 23 or
// 25 hours apart across DST transitions, so day differencing has to happen
// in a DST-free frame.
func utcMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
