package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// Collection is a named, vendor-owned grouping of that vendor's products.
// The (vendor, name) pair is unique. Membership is a non-owning
// many-to-many relation; the same-vendor rule is enforced at the mutation
// boundary, not by the join table.
type Collection struct {
	shared.BaseEntity
	VendorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collections_vendor_name,priority:1"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_collections_vendor_name,priority:2"`
	Description string    `gorm:"type:text"`
	IsPublic    bool      `gorm:"not null;default:true;index"`
	Products    []Product `gorm:"many2many:collection_products;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Collection) TableName() string {
	return "collections"
}

// NewCollection creates a new collection owned by the given vendor
func NewCollection(vendorID uuid.UUID, name, description string) (*Collection, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Collection must belong to a vendor")
	}
	trimmed, err := validateCollectionName(name)
	if err != nil {
		return nil, err
	}

	return &Collection{
		BaseEntity:  shared.NewBaseEntity(),
		VendorID:    vendorID,
		Name:        trimmed,
		Description: description,
		IsPublic:    true,
	}, nil
}

// Update updates the collection's name and description
func (c *Collection) Update(name, description string) error {
	trimmed, err := validateCollectionName(name)
	if err != nil {
		return err
	}
	c.Name = trimmed
	c.Description = description
	c.Touch()
	return nil
}

// SetVisibility controls public exposure of the collection
func (c *Collection) SetVisibility(public bool) {
	c.IsPublic = public
	c.UpdatedAt = time.Now()
}

// ValidateOwnership checks that every product belongs to the collection's
// vendor. A single foreign product fails the whole set; callers must not
// apply any partial membership change after a failure.
func (c *Collection) ValidateOwnership(products []Product) error {
	for _, product := range products {
		if product.VendorID != c.VendorID {
			return shared.NewDomainError("INVALID_PRODUCTS",
				"Cannot add product '"+product.Name+"' from a different vendor to collection")
		}
	}
	return nil
}

// AvailableProducts returns the purchasable subset of loaded members
func (c *Collection) AvailableProducts() []Product {
	available := make([]Product, 0, len(c.Products))
	for _, product := range c.Products {
		if product.IsAvailable {
			available = append(available, product)
		}
	}
	return available
}

func validateCollectionName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", shared.NewDomainError("INVALID_NAME", "Collection name is required")
	}
	if len(trimmed) < 2 {
		return "", shared.NewDomainError("INVALID_NAME", "Collection name must be at least 2 characters long")
	}
	if len(trimmed) > 100 {
		return "", shared.NewDomainError("INVALID_NAME", "Collection name cannot exceed 100 characters")
	}
	return trimmed, nil
}
