package validation

import (
	"math"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
)

type PriceListForm struct {
	CategoryID         string   `json:"category_id" validate:"required,uuid"`
	Days               int      `json:"days" validate:"min=0"`
	Price              float64  `json:"price" validate:"gte=0"`
	HourlyChargeAmount *float64 `json:"hourly_charge_amount" validate:"omitempty,gte=0"`
	Deposit            float64  `json:"deposit" validate:"gte=0"`
}

var PriceListFieldOrder = []string{
	"category_id",
	"days",
	"price",
	"hourly_charge_amount",
	"deposit",
}

func ValidatePriceList(form PriceListForm) Errors {
	errs := runTags(form)

	if form.Days == 0 {
		// hourly tariff: hourly amount drives the price
		if form.HourlyChargeAmount == nil {
			errs["hourly_charge_amount"] = "is required for hourly tariffs"
		} else if _, ok := errs["price"]; !ok && math.Abs(form.Price-*form.HourlyChargeAmount) > 1e-9 {
			errs["price"] = "must mirror the hourly charge amount for hourly tariffs"
		}
	} else {
		if form.HourlyChargeAmount != nil {
			errs["hourly_charge_amount"] = "must be empty for fixed-duration tariffs"
		}
		if _, ok := errs["price"]; !ok && form.Price <= 0 {
			errs["price"] = "must be greater than 0 for fixed-duration tariffs"
		}
	}

	return errs
}

// DuplicateTariff reports whether the currently loaded page already holds
// an active entry with the same (category, days) pair. Best-effort only:
// the true duplicate may sit on another page, the server stays
// authoritative.
func DuplicateTariff(entries []domain.PriceListEntry, categoryID uuid.UUID, days int, exclude uuid.UUID) bool {
	for _, entry := range entries {
		if !entry.IsActive {
			continue
		}
		if entry.EntryID == exclude {
			continue
		}
		if entry.CategoryID == categoryID && entry.Days == days {
			return true
		}
	}
	return false
}
