package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockStatus is the derived availability band of a product
type StockStatus string

const (
	StockStatusUnavailable StockStatus = "Unavailable"
	StockStatusOutOfStock  StockStatus = "Out of Stock"
	StockStatusLowStock    StockStatus = "Low Stock"
	StockStatusInStock     StockStatus = "In Stock"
)

// lowStockThreshold is the quantity at or below which an available product
// is reported as low stock
const lowStockThreshold = 5

// Product represents a vendor-owned item listed in the marketplace
type Product struct {
	shared.BaseEntity
	VendorID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_vendor_created,priority:1"`
	Name        string          `gorm:"type:varchar(200);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null;default:0"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	IsAvailable bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product owned by the given vendor
func NewProduct(vendorID uuid.UUID, name string, price decimal.Decimal, quantity int) (*Product, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Product must belong to a vendor")
	}
	trimmed, err := validateProductName(name)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		VendorID:    vendorID,
		Name:        trimmed,
		Price:       price,
		Quantity:    quantity,
		IsAvailable: true,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	trimmed, err := validateProductName(name)
	if err != nil {
		return err
	}
	p.Name = trimmed
	p.Description = description
	p.Touch()
	return nil
}

// SetPrice sets the product price; the price must be strictly positive
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.Touch()
	return nil
}

// SetQuantity sets the stock quantity
func (p *Product) SetQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	p.Quantity = quantity
	p.Touch()
	return nil
}

// SetImageURL sets the product image reference
func (p *Product) SetImageURL(url string) error {
	if len(url) > 500 {
		return shared.NewDomainError("INVALID_IMAGE_URL", "Image URL cannot exceed 500 characters")
	}
	p.ImageURL = url
	p.Touch()
	return nil
}

// SetAvailability toggles whether the product is purchasable
func (p *Product) SetAvailability(available bool) {
	p.IsAvailable = available
	p.UpdatedAt = time.Now()
}

// IsInStock reports whether any quantity remains
func (p *Product) IsInStock() bool {
	return p.Quantity > 0
}

// StockStatus derives the stock band from availability and quantity
func (p *Product) StockStatus() StockStatus {
	switch {
	case !p.IsAvailable:
		return StockStatusUnavailable
	case p.Quantity == 0:
		return StockStatusOutOfStock
	case p.Quantity <= lowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

func validateProductName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", shared.NewDomainError("INVALID_NAME", "Product name is required")
	}
	if len(trimmed) < 3 {
		return "", shared.NewDomainError("INVALID_NAME", "Product name must be at least 3 characters long")
	}
	if len(trimmed) > 200 {
		return "", shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return trimmed, nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Price must be greater than 0")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	return nil
}
