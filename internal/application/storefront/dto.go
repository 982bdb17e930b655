package storefront

import (
	appcatalog "github.com/quickvendor/backend/internal/application/catalog"
	appvendor "github.com/quickvendor/backend/internal/application/vendor"
)

// PublicPageSize is the fixed page size for public listings
const PublicPageSize = 10

// ProductPage is the paginated public product listing for one vendor
type ProductPage struct {
	Count    int64                          `json:"count"`
	Page     int                            `json:"page"`
	PageSize int                            `json:"page_size"`
	Next     *int                           `json:"next"`
	Previous *int                           `json:"previous"`
	Vendor   appvendor.PublicProfileResponse `json:"vendor"`
	Results  []appcatalog.ProductResponse   `json:"results"`
}

// ProductDetail is one public product with its vendor's contact block
type ProductDetail struct {
	appcatalog.ProductResponse
	Vendor appvendor.PublicProfileResponse `json:"vendor"`
}

// CollectionList is the public collection listing for one vendor
type CollectionList struct {
	Count       int64                           `json:"count"`
	Vendor      appvendor.PublicProfileResponse `json:"vendor"`
	Collections []appcatalog.CollectionResponse `json:"collections"`
}

// CollectionDetail is one public collection with its available products
type CollectionDetail struct {
	appcatalog.CollectionResponse
	Vendor appvendor.PublicProfileResponse `json:"vendor"`
}

// ReviewPage is the paginated review listing for one product
type ReviewPage struct {
	Count   int64                        `json:"count"`
	Results []appcatalog.ReviewResponse  `json:"results"`
}
