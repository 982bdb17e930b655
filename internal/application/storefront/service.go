package storefront

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	appcatalog "github.com/quickvendor/backend/internal/application/catalog"
	appvendor "github.com/quickvendor/backend/internal/application/vendor"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/quickvendor/backend/internal/domain/shared"
	"github.com/quickvendor/backend/internal/domain/vendor"
)

// featuredLimit caps the homepage featured product listing
const featuredLimit = 20

// Service serves the unauthenticated storefront. Every lookup starts from
// a vendor slug; unknown and deactivated slugs are both a uniform not
// found, and only publicly visible data ever leaves this surface.
type Service struct {
	profileRepo    vendor.ProfileRepository
	productRepo    catalog.ProductRepository
	collectionRepo catalog.CollectionRepository
	reviewRepo     catalog.ReviewRepository
}

// NewService creates a new storefront Service
func NewService(
	profileRepo vendor.ProfileRepository,
	productRepo catalog.ProductRepository,
	collectionRepo catalog.CollectionRepository,
	reviewRepo catalog.ReviewRepository,
) *Service {
	return &Service{
		profileRepo:    profileRepo,
		productRepo:    productRepo,
		collectionRepo: collectionRepo,
		reviewRepo:     reviewRepo,
	}
}

// ParsePage interprets a raw page parameter. Non-numeric values and values
// below 1 silently coerce to page 1 instead of erroring.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ListProducts lists a vendor's available products, ten per page
func (s *Service) ListProducts(ctx context.Context, slug string, page int) (*ProductPage, error) {
	profile, err := s.profileRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	filter := shared.Filter{
		Page:     page,
		PageSize: PublicPageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}

	products, err := s.productRepo.FindAvailableForVendor(ctx, profile.UserID, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountAvailableForVendor(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Count:    count,
		Page:     page,
		PageSize: PublicPageSize,
		Next:     nextPage(page, count),
		Previous: previousPage(page),
		Vendor:   appvendor.ToPublicProfileResponse(profile),
		Results:  appcatalog.ToProductResponses(products),
	}, nil
}

// GetProduct fetches one available product under a vendor's slug. A
// product that exists but belongs to another vendor, or is unavailable,
// resolves to not found.
func (s *Service) GetProduct(ctx context.Context, slug string, productID uuid.UUID) (*ProductDetail, error) {
	profile, err := s.profileRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindAvailableByID(ctx, profile.UserID, productID)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		ProductResponse: appcatalog.ToProductResponse(product),
		Vendor:          appvendor.ToPublicProfileResponse(profile),
	}, nil
}

// ListCollections lists a vendor's public collections. The listing is not
// paginated; storefront collection counts stay small.
func (s *Service) ListCollections(ctx context.Context, slug string) (*CollectionList, error) {
	profile, err := s.profileRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	filter := shared.Filter{
		Page:     1,
		PageSize: 100,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}

	collections, err := s.collectionRepo.FindPublicForVendor(ctx, profile.UserID, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.collectionRepo.CountPublicForVendor(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]appcatalog.CollectionResponse, len(collections))
	for i := range collections {
		productCount, err := s.collectionRepo.CountProducts(ctx, collections[i].ID)
		if err != nil {
			return nil, err
		}
		responses[i] = appcatalog.ToCollectionResponse(&collections[i], productCount, false)
	}

	return &CollectionList{
		Count:       count,
		Vendor:      appvendor.ToPublicProfileResponse(profile),
		Collections: responses,
	}, nil
}

// GetCollection fetches one public collection under a vendor's slug with
// its available products. Private, foreign and unknown collections are all
// not found.
func (s *Service) GetCollection(ctx context.Context, slug string, collectionID uuid.UUID) (*CollectionDetail, error) {
	profile, err := s.profileRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	collection, err := s.collectionRepo.FindPublicByIDForVendorWithProducts(ctx, profile.UserID, collectionID)
	if err != nil {
		return nil, err
	}

	collection.Products = collection.AvailableProducts()
	response := appcatalog.ToCollectionResponse(collection, int64(len(collection.Products)), true)

	return &CollectionDetail{
		CollectionResponse: response,
		Vendor:             appvendor.ToPublicProfileResponse(profile),
	}, nil
}

// FeaturedProducts lists available, in-stock products across all vendors,
// newest first
func (s *Service) FeaturedProducts(ctx context.Context) ([]appcatalog.ProductResponse, error) {
	products, err := s.productRepo.FindFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	return appcatalog.ToProductResponses(products), nil
}

// ListReviews lists active reviews for an available product under a
// vendor's slug, newest first
func (s *Service) ListReviews(ctx context.Context, slug string, productID uuid.UUID, page int) (*ReviewPage, error) {
	profile, err := s.profileRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindAvailableByID(ctx, profile.UserID, productID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	filter := shared.Filter{
		Page:     page,
		PageSize: PublicPageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}

	reviews, err := s.reviewRepo.FindActiveByProduct(ctx, productID, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.reviewRepo.CountActiveByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &ReviewPage{
		Count:   count,
		Results: appcatalog.ToReviewResponses(reviews),
	}, nil
}

// SubmitReview records a public customer review for an available product
// under a vendor's slug
func (s *Service) SubmitReview(ctx context.Context, slug string, productID uuid.UUID, req appcatalog.CreateReviewRequest) (*appcatalog.ReviewResponse, error) {
	profile, err := s.profileRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindAvailableByID(ctx, profile.UserID, productID); err != nil {
		return nil, err
	}

	review, err := catalog.NewProductReview(productID, req.CustomerName, req.CustomerEmail, req.Rating, req.Title, req.Comment)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	response := appcatalog.ToReviewResponse(review)
	return &response, nil
}

// nextPage returns the next page index, or nil on the last page
func nextPage(page int, count int64) *int {
	if int64(page)*PublicPageSize >= count {
		return nil
	}
	next := page + 1
	return &next
}

// previousPage returns the previous page index, or nil on the first page
func previousPage(page int) *int {
	if page <= 1 {
		return nil
	}
	prev := page - 1
	return &prev
}
