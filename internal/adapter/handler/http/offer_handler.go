package http

import (
	"time"

	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/validation"
)

var offerFilters = []string{"discount_type", "eligibility", "is_active"}

// NewOfferHandler wires the promo-offer screen. The cross-field rules
// (percentage bounds, date window, selected-customers requirement) run
// before anything reaches the backend.
func NewOfferHandler(
	offers *services.ResourceService[domain.Offer],
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ResourceHandler[domain.Offer] {
	validate := func(form validation.OfferForm) validation.Errors {
		return validation.ValidateOffer(form, time.Now())
	}
	return NewResourceHandler[domain.Offer](
		offers,
		"offers",
		offerFilters,
		jsonForm(validate),
		logger,
		metrics,
	)
}
