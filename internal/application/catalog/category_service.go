package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// maxSlugAttempts bounds the suffix search when assigning a category slug
const maxSlugAttempts = 50

// CategoryService handles platform-wide category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category with a unique slug derived from its name
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name, req.Description, req.ParentID)
	if err != nil {
		return nil, err
	}
	category.ImageURL = req.ImageURL

	taken, err := s.categoryRepo.NameExists(ctx, category.Name, category.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A category with this name already exists")
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.ParentID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, err
		}
	}

	if err := s.assignSlug(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category
func (s *CategoryService) GetByID(ctx context.Context, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// ListActive retrieves active categories ordered by name
func (s *CategoryService) ListActive(ctx context.Context) ([]CategoryResponse, error) {
	filter := shared.Filter{
		Page:     1,
		PageSize: 200,
		OrderBy:  "name",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}

	categories, err := s.categoryRepo.FindAllActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponses(categories), nil
}

// assignSlug derives a slug from the name and saves the category under the
// first free candidate, retrying past duplicate-key races
func (s *CategoryService) assignSlug(ctx context.Context, category *catalog.Category) error {
	base := shared.Slugify(category.Name)
	if base == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name must contain letters or digits")
	}

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		candidate := shared.SlugCandidate(base, attempt)

		taken, err := s.categoryRepo.SlugExists(ctx, candidate, category.ID)
		if err != nil {
			return err
		}
		if taken {
			continue
		}

		category.Slug = candidate
		err = s.categoryRepo.Save(ctx, category)
		if err == nil {
			return nil
		}
		if !errors.Is(err, shared.ErrAlreadyExists) {
			return err
		}
	}

	return shared.ErrSlugExhausted
}
