package http

import (
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/services"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/validation"
)

var priceListFilters = []string{"category_id", "is_active"}

// NewPriceListHandler wires the tariff screen. Shape rules (hourly versus
// fixed-duration) run in the form validator, the duplicate advisory sits
// in the service.
func NewPriceListHandler(
	priceLists *services.PriceListService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ResourceHandler[domain.PriceListEntry] {
	return NewResourceHandler[domain.PriceListEntry](
		priceLists,
		"price-lists",
		priceListFilters,
		jsonForm(validation.ValidatePriceList),
		logger,
		metrics,
	)
}
