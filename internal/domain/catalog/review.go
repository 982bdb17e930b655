package catalog

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// Rating bounds for product reviews
const (
	MinRating = 1
	MaxRating = 5
)

// ProductReview is a customer review attached to a product. Reviews are
// submitted publicly and soft-hidden through the active flag.
type ProductReview struct {
	shared.BaseEntity
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName  string    `gorm:"type:varchar(100);not null"`
	CustomerEmail string    `gorm:"type:varchar(254);not null"`
	Rating        int       `gorm:"not null"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Comment       string    `gorm:"type:text"`
	IsVerified    bool      `gorm:"not null;default:false"`
	IsActive      bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductReview) TableName() string {
	return "product_reviews"
}

// NewProductReview creates a new review for a product
func NewProductReview(productID uuid.UUID, customerName, customerEmail string, rating int, title, comment string) (*ProductReview, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Review must reference a product")
	}

	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name is required")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot exceed 100 characters")
	}

	if _, err := mail.ParseAddress(customerEmail); err != nil {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Customer email must be a valid email address")
	}

	if rating < MinRating || rating > MaxRating {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}

	reviewTitle := strings.TrimSpace(title)
	if reviewTitle == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Review title is required")
	}
	if len(reviewTitle) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Review title cannot exceed 200 characters")
	}

	return &ProductReview{
		BaseEntity:    shared.NewBaseEntity(),
		ProductID:     productID,
		CustomerName:  name,
		CustomerEmail: customerEmail,
		Rating:        rating,
		Title:         reviewTitle,
		Comment:       comment,
		IsActive:      true,
	}, nil
}

// Verify marks the review as verified
func (r *ProductReview) Verify() {
	r.IsVerified = true
	r.Touch()
}

// Hide soft-deletes the review
func (r *ProductReview) Hide() {
	r.IsActive = false
	r.Touch()
}
