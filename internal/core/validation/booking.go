package validation

import (
	"time"
)

// MinRentalDuration is the shortest bookable rental window.
const MinRentalDuration = 30 * time.Minute

type BookingForm struct {
	BikeID     string    `json:"bike_id" validate:"required,uuid"`
	CustomerID string    `json:"customer_id" validate:"required,uuid"`
	StartsAt   time.Time `json:"starts_at" validate:"required"`
	EndsAt     time.Time `json:"ends_at" validate:"required"`
}

var BookingFieldOrder = []string{"bike_id", "customer_id", "starts_at", "ends_at"}

func ValidateBooking(form BookingForm, now time.Time) Errors {
	errs := runTags(form)

	if _, ok := errs["starts_at"]; !ok && form.StartsAt.Before(now) {
		errs["starts_at"] = "must not be in the past"
	}
	if _, ok := errs["ends_at"]; !ok {
		if !form.EndsAt.After(form.StartsAt) {
			errs["ends_at"] = "must be after the start time"
		} else if form.EndsAt.Sub(form.StartsAt) < MinRentalDuration {
			errs["ends_at"] = "rental must last at least 30 minutes"
		}
	}

	return errs
}
