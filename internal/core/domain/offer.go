package domain

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type OfferEligibility string

const (
	EligibilityAll      OfferEligibility = "all"
	EligibilitySelected OfferEligibility = "selected"
)

type Offer struct {
	OfferID       uuid.UUID        `json:"offer_id"`
	Code          string           `json:"code"`
	Description   string           `json:"description,omitempty"`
	DiscountType  DiscountType     `json:"discount_type"`
	DiscountValue float64          `json:"discount_value"`
	StartsAt      time.Time        `json:"starts_at"`
	EndsAt        time.Time        `json:"ends_at"`
	UsageLimit    *int             `json:"usage_limit,omitempty"`
	Eligibility   OfferEligibility `json:"eligibility"`
	CustomerIDs   []uuid.UUID      `json:"customer_ids,omitempty"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
