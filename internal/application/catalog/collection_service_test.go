package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/quickvendor/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCollection(vendorID uuid.UUID) *catalog.Collection {
	collection, _ := catalog.NewCollection(vendorID, "Summer Picks", "")
	return collection
}

func TestCollectionService_Create_Success(t *testing.T) {
	mockCollectionRepo := new(MockCollectionRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCollectionService(mockCollectionRepo, mockProductRepo)

	ctx := context.Background()
	vendorID := newTestVendorID()

	mockCollectionRepo.On("NameExists", ctx, vendorID, "Summer Picks", mock.AnythingOfType("uuid.UUID")).Return(false, nil)
	mockCollectionRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Collection")).Return(nil)
	mockCollectionRepo.On("CountProducts", ctx, mock.AnythingOfType("uuid.UUID")).Return(int64(0), nil)

	result, err := service.Create(ctx, vendorID, CreateCollectionRequest{Name: "Summer Picks"})

	require.NoError(t, err)
	assert.Equal(t, "Summer Picks", result.Name)
	assert.True(t, result.IsPublic)
	mockCollectionRepo.AssertExpectations(t)
}

func TestCollectionService_Create_DuplicateName(t *testing.T) {
	mockCollectionRepo := new(MockCollectionRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCollectionService(mockCollectionRepo, mockProductRepo)

	ctx := context.Background()
	vendorID := newTestVendorID()

	mockCollectionRepo.On("NameExists", ctx, vendorID, "Summer Picks", mock.AnythingOfType("uuid.UUID")).Return(true, nil)

	_, err := service.Create(ctx, vendorID, CreateCollectionRequest{Name: "Summer Picks"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	mockCollectionRepo.AssertNotCalled(t, "Save")
}

func TestCollectionService_Create_RejectedSeedBatchPersistsNothing(t *testing.T) {
	mockCollectionRepo := new(MockCollectionRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCollectionService(mockCollectionRepo, mockProductRepo)

	ctx := context.Background()
	vendorID := newTestVendorID()
	own := createTestProduct(vendorID)
	foreignID := uuid.New()
	ids := []uuid.UUID{own.ID, foreignID}

	mockCollectionRepo.On("NameExists", ctx, vendorID, "Summer Picks", mock.AnythingOfType("uuid.UUID")).Return(false, nil)
	// the foreign id never loads under this vendor's scope
	mockProductRepo.On("FindByIDsForVendor", ctx, vendorID, ids).Return([]catalog.Product{*own}, nil)

	_, err := service.Create(ctx, vendorID, CreateCollectionRequest{Name: "Summer Picks", ProductIDs: ids})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRODUCTS", domainErr.Code)
	mockCollectionRepo.AssertNotCalled(t, "Save")
	mockCollectionRepo.AssertNotCalled(t, "AddProducts")
}

func TestCollectionService_AddProducts_Success(t *testing.T) {
	mockCollectionRepo := new(MockCollectionRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCollectionService(mockCollectionRepo, mockProductRepo)

	ctx := context.Background()
	vendorID := newTestVendorID()
	collection := createTestCollection(vendorID)
	productA := createTestProduct(vendorID)
	productB := createTestProduct(vendorID)
	ids := []uuid.UUID{productA.ID, productB.ID}
	products := []catalog.Product{*productA, *productB}

	mockCollectionRepo.On("FindByIDForVendor", ctx, vendorID, collection.ID).Return(collection, nil)
	mockProductRepo.On("FindByIDsForVendor", ctx, vendorID, ids).Return(products, nil)
	mockCollectionRepo.On("AddProducts", ctx, collection, products).Return(nil)

	loaded := createTestCollection(vendorID)
	loaded.Products = products
	mockCollectionRepo.On("FindByIDForVendorWithProducts", ctx, vendorID, collection.ID).Return(loaded, nil)

	result, err := service.AddProducts(ctx, vendorID, collection.ID, AddProductsRequest{ProductIDs: ids})

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.ProductCount)
	mockCollectionRepo.AssertExpectations(t)
}

func TestCollectionService_AddProducts_ForeignProductRejectsWholeBatch(t *testing.T) {
	mockCollectionRepo := new(MockCollectionRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCollectionService(mockCollectionRepo, mockProductRepo)

	ctx := context.Background()
	vendorID := newTestVendorID()
	collection := createTestCollection(vendorID)
	own := createTestProduct(vendorID)
	foreignID := uuid.New()
	ids := []uuid.UUID{own.ID, foreignID}

	mockCollectionRepo.On("FindByIDForVendor", ctx, vendorID, collection.ID).Return(collection, nil)
	// the foreign id never loads under this vendor's scope
	mockProductRepo.On("FindByIDsForVendor", ctx, vendorID, ids).Return([]catalog.Product{*own}, nil)

	_, err := service.AddProducts(ctx, vendorID, collection.ID, AddProductsRequest{ProductIDs: ids})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PRODUCTS", domainErr.Code)
	mockCollectionRepo.AssertNotCalled(t, "AddProducts")
}

func TestCollectionService_Update_RenameChecksUniqueness(t *testing.T) {
	mockCollectionRepo := new(MockCollectionRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCollectionService(mockCollectionRepo, mockProductRepo)

	ctx := context.Background()
	vendorID := newTestVendorID()
	collection := createTestCollection(vendorID)
	newName := "Winter Picks"

	mockCollectionRepo.On("FindByIDForVendor", ctx, vendorID, collection.ID).Return(collection, nil)
	mockCollectionRepo.On("NameExists", ctx, vendorID, newName, collection.ID).Return(true, nil)

	_, err := service.Update(ctx, vendorID, collection.ID, UpdateCollectionRequest{Name: &newName})

	require.Error(t, err)
	mockCollectionRepo.AssertNotCalled(t, "Save")
}

func TestCollectionService_Delete_OtherVendorCollectionIsNotFound(t *testing.T) {
	mockCollectionRepo := new(MockCollectionRepository)
	mockProductRepo := new(MockProductRepository)
	service := NewCollectionService(mockCollectionRepo, mockProductRepo)

	ctx := context.Background()
	vendorID := newTestVendorID()
	collectionID := uuid.New()

	mockCollectionRepo.On("FindByIDForVendor", ctx, vendorID, collectionID).Return(nil, shared.ErrNotFound)

	err := service.Delete(ctx, vendorID, collectionID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	mockCollectionRepo.AssertNotCalled(t, "DeleteForVendor")
}
