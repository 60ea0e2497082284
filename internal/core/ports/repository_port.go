package ports

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_admin_nikita/pkg/collection"
)

// Repository is a paginated REST resource of the rental backend. One
// instance exists per entity; all of them share the same endpoint shape.
type Repository[T any] interface {
	List(ctx context.Context, query collection.PageQuery) (*collection.PageResult[T], error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id uuid.UUID, entity *T) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleStatus(ctx context.Context, id uuid.UUID) (*T, error)
}

type Upload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// ImageRepository covers the file-bearing entities whose create/update
// endpoints accept multipart submissions.
type ImageRepository[T any] interface {
	Repository[T]
	CreateWithImage(ctx context.Context, entity *T, image *Upload) (*T, error)
	UpdateWithImage(ctx context.Context, id uuid.UUID, entity *T, image *Upload) (*T, error)
}
