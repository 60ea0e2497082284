package domain

import (
	"math"
	"time"
)

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DurationBreakdown struct {
	TotalHours     float64 `json:"total_hours"`
	FullDays       int     `json:"full_days"`
	RemainderHours float64 `json:"remainder_hours"`
}

// ComputeDuration returns nil when end is not strictly after start. The
// caller must treat nil as an invalid range, not as a zero duration.
func ComputeDuration(start, end time.Time) *DurationBreakdown {
	if !end.After(start) {
		return nil
	}

	totalHours := float64(end.Sub(start).Milliseconds()) / 3_600_000.0
	fullDays := int(math.Floor(totalHours / 24))
	remainderHours := totalHours - float64(fullDays)*24

	return &DurationBreakdown{
		TotalHours:     totalHours,
		FullDays:       fullDays,
		RemainderHours: remainderHours,
	}
}

type BillingMode string

const (
	BillingHourly                BillingMode = "hourly"
	BillingFullDayFlat           BillingMode = "full_day_flat"
	BillingDailyPlusRemainderDay BillingMode = "daily_plus_remainder_day"
	BillingDailyPlusHourly       BillingMode = "daily_plus_hourly"
	BillingDailyExact            BillingMode = "daily_exact"
)

// BillingDescription is a display-only advisory. The authoritative price
// always comes from the backend, never from this struct.
type BillingDescription struct {
	Mode        BillingMode `json:"mode"`
	ChargedDays int         `json:"charged_days"`
	HourlyHours float64     `json:"hourly_hours"`
	Text        string      `json:"text"`
}

// DescribeBilling classifies a duration breakdown against the 6-hour and
// 24-hour billing thresholds used by the pricing engine.
func DescribeBilling(b DurationBreakdown) BillingDescription {
	if b.TotalHours < 24 {
		if b.TotalHours > 6 {
			return BillingDescription{
				Mode:        BillingFullDayFlat,
				ChargedDays: 1,
				Text:        "charged as 1 full day",
			}
		}
		return BillingDescription{
			Mode:        BillingHourly,
			HourlyHours: b.TotalHours,
			Text:        "charged at hourly rate",
		}
	}

	if b.RemainderHours > 6 {
		return BillingDescription{
			Mode:        BillingDailyPlusRemainderDay,
			ChargedDays: b.FullDays + 1,
			Text:        "remainder charged as 1 additional full day",
		}
	}
	if b.RemainderHours > 0 {
		return BillingDescription{
			Mode:        BillingDailyPlusHourly,
			ChargedDays: b.FullDays,
			HourlyHours: b.RemainderHours,
			Text:        "remainder charged at hourly rate",
		}
	}
	return BillingDescription{
		Mode:        BillingDailyExact,
		ChargedDays: b.FullDays,
		Text:        "charged as exact full days",
	}
}
