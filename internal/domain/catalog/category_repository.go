package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAllActive(ctx context.Context, filter shared.Filter) ([]Category, error)
	CountActive(ctx context.Context, filter shared.Filter) (int64, error)

	// SlugExists reports whether a slug is taken by a category other than
	// excludeID
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// NameExists reports whether a category name is taken
	NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
