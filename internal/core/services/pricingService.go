package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
)

type PricingPreview struct {
	Breakdown domain.DurationBreakdown  `json:"breakdown"`
	Billing   domain.BillingDescription `json:"billing"`
	Tariffs   []domain.PriceListEntry   `json:"tariffs,omitempty"`
}

// PricingService produces the rental pricing preview shown next to the
// booking form. The preview is advisory: it classifies the duration and
// lists candidate tariffs, the billed amount is always the backend's call.
type PricingService struct {
	priceLists *PriceListService
	logger     ports.LoggerPort
}

func NewPricingService(priceLists *PriceListService, logger ports.LoggerPort) *PricingService {
	return &PricingService{
		priceLists: priceLists,
		logger:     logger,
	}
}

func (s *PricingService) Preview(ctx context.Context, categoryID uuid.UUID, rng domain.DateRange) (*PricingPreview, error) {
	breakdown := domain.ComputeDuration(rng.Start, rng.End)
	if breakdown == nil {
		return nil, domain.NewBackendError(domain.ErrKindValidation, 0, "end must be after start")
	}

	preview := &PricingPreview{
		Breakdown: *breakdown,
		Billing:   domain.DescribeBilling(*breakdown),
	}

	if categoryID != uuid.Nil {
		tariffs, err := s.categoryTariffs(ctx, categoryID)
		if err != nil {
			// the classification is still useful without tariffs
			s.logger.Warn("Tariff lookup failed for preview", map[string]interface{}{
				"category_id": categoryID.String(),
				"error":       err.Error(),
			})
		} else {
			preview.Tariffs = tariffs
		}
	}

	s.logger.Debug("Pricing preview computed", map[string]interface{}{
		"total_hours": preview.Breakdown.TotalHours,
		"mode":        string(preview.Billing.Mode),
	})
	return preview, nil
}

func (s *PricingService) categoryTariffs(ctx context.Context, categoryID uuid.UUID) ([]domain.PriceListEntry, error) {
	entries, err := s.priceLists.References(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.PriceListEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.CategoryID == categoryID && entry.IsActive {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
