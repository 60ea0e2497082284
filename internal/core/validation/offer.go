package validation

import (
	"time"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
)

type OfferForm struct {
	Code          string    `json:"code" validate:"required,max=50"`
	Description   string    `json:"description" validate:"max=500"`
	DiscountType  string    `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64   `json:"discount_value" validate:"required"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	EndsAt        time.Time `json:"ends_at" validate:"required"`
	UsageLimit    *int      `json:"usage_limit" validate:"omitempty,gt=0"`
	Eligibility   string    `json:"eligibility" validate:"required,oneof=all selected"`
	CustomerIDs   []string  `json:"customer_ids" validate:"dive,uuid"`
}

var OfferFieldOrder = []string{
	"code",
	"description",
	"discount_type",
	"discount_value",
	"starts_at",
	"ends_at",
	"usage_limit",
	"eligibility",
	"customer_ids",
}

// ValidateOffer takes the submission time explicitly so the past-date rule
// stays deterministic under test.
func ValidateOffer(form OfferForm, now time.Time) Errors {
	errs := runTags(form)
	requireTrimmed(errs, "code", form.Code)

	if _, ok := errs["discount_value"]; !ok {
		switch domain.DiscountType(form.DiscountType) {
		case domain.DiscountPercentage:
			if form.DiscountValue <= 0 || form.DiscountValue > 100 {
				errs["discount_value"] = "percentage must be greater than 0 and at most 100"
			}
		case domain.DiscountFixed:
			if form.DiscountValue < 0 {
				errs["discount_value"] = "must not be negative"
			}
		}
	}

	if _, ok := errs["starts_at"]; !ok && form.StartsAt.Before(now) {
		errs["starts_at"] = "must not be in the past"
	}
	if _, ok := errs["ends_at"]; !ok && !form.EndsAt.After(form.StartsAt) {
		errs["ends_at"] = "must be after the start date"
	}

	if domain.OfferEligibility(form.Eligibility) == domain.EligibilitySelected && len(form.CustomerIDs) == 0 {
		errs["customer_ids"] = "at least one customer must be selected"
	}

	return errs
}
