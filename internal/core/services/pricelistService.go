package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/validation"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

// PriceListService adds the duplicate-tariff advisory on top of the plain
// resource pipeline: a create/update is rejected early when the loaded
// page already holds an active entry for the same (category, days) pair.
// The server remains the source of truth and may still reject entries the
// client cannot see.
type PriceListService struct {
	*ResourceService[domain.PriceListEntry]
}

func NewPriceListService(
	repo ports.Repository[domain.PriceListEntry],
	logger ports.LoggerPort,
	cache ports.CachePort,
) *PriceListService {
	return &PriceListService{
		ResourceService: NewResourceService[domain.PriceListEntry](repo, "price-lists", logger, cache),
	}
}

func (s *PriceListService) Create(ctx context.Context, entry *domain.PriceListEntry) (*domain.PriceListEntry, error) {
	if err := s.checkDuplicate(ctx, entry, uuid.Nil); err != nil {
		return nil, err
	}
	return s.ResourceService.Create(ctx, entry)
}

func (s *PriceListService) Update(ctx context.Context, id uuid.UUID, entry *domain.PriceListEntry) (*domain.PriceListEntry, error) {
	if err := s.checkDuplicate(ctx, entry, id); err != nil {
		return nil, err
	}
	return s.ResourceService.Update(ctx, id, entry)
}

func (s *PriceListService) checkDuplicate(ctx context.Context, entry *domain.PriceListEntry, exclude uuid.UUID) error {
	page, err := s.List(ctx, collection.PageQuery{
		PageSize:      referencePageSize,
		SortDirection: collection.SortAsc,
		Filters: map[string]string{
			"category_id": entry.CategoryID.String(),
			"is_active":   "true",
		},
	})
	if err != nil {
		// advisory only: fall through and let the server decide
		s.logger.Warn("Duplicate-tariff pre-check skipped", map[string]interface{}{
			"category_id": entry.CategoryID.String(),
			"error":       err.Error(),
		})
		return nil
	}

	if validation.DuplicateTariff(page.Items, entry.CategoryID, entry.Days, exclude) {
		s.logger.Warn("Duplicate tariff rejected client-side", map[string]interface{}{
			"category_id": entry.CategoryID.String(),
			"days":        entry.Days,
		})
		return domain.NewBackendError(domain.ErrKindConflict, 0, "an active tariff for this category and duration already exists")
	}
	return nil
}
