package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// Category classifies products platform-wide. Categories form a hierarchy
// through the parent reference and are not vendor-scoped.
type Category struct {
	shared.BaseEntity
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string     `gorm:"type:text"`
	ImageURL    string     `gorm:"type:varchar(500)"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	IsActive    bool       `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category. The slug is assigned by the
// application layer from the name.
func NewCategory(name, description string, parentID *uuid.UUID) (*Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name is required")
	}
	if len(trimmed) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}

	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        trimmed,
		Description: description,
		ParentID:    parentID,
		IsActive:    true,
	}, nil
}

// IsRoot reports whether the category has no parent
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
