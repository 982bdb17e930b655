package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/quickvendor/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func productRows(id, vendorID uuid.UUID, name string, quantity int, available bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "vendor_id", "name", "description", "price", "quantity", "is_available"}).
		AddRow(id, vendorID, name, "", decimal.NewFromFloat(25.00), quantity, available)
}

func TestGormProductRepository_FindByIDForVendor(t *testing.T) {
	t.Run("finds product within vendor scope", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		vendorID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE vendor_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(vendorID, productID, 1).
			WillReturnRows(productRows(productID, vendorID, "Widget", 3, true))

		product, err := repo.FindByIDForVendor(context.Background(), vendorID, productID)

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, vendorID, product.VendorID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("another vendor's product behaves like a missing one", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		vendorID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE vendor_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(vendorID, productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByIDForVendor(context.Background(), vendorID, productID)

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByIDsForVendor(t *testing.T) {
	t.Run("loads the subset owned by the vendor", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()
		id1 := uuid.New()
		id2 := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "vendor_id", "name", "description", "price", "quantity", "is_available"}).
			AddRow(id1, vendorID, "Widget", "", decimal.NewFromFloat(25.00), 3, true).
			AddRow(id2, vendorID, "Gadget", "", decimal.NewFromFloat(40.00), 8, true)

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE vendor_id = \$1 AND id IN \(\$2,\$3\)`).
			WithArgs(vendorID, id1, id2).
			WillReturnRows(rows)

		products, err := repo.FindByIDsForVendor(context.Background(), vendorID, []uuid.UUID{id1, id2})

		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice for empty IDs", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		products, err := repo.FindByIDsForVendor(context.Background(), uuid.New(), []uuid.UUID{})

		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestGormProductRepository_FindAvailableByID(t *testing.T) {
	t.Run("hidden product behaves like a missing one", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		productID := uuid.New()
		vendorID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE vendor_id = \$1 AND id = \$2 AND is_available = \$3 ORDER BY .* LIMIT .*`).
			WithArgs(vendorID, productID, true, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindAvailableByID(context.Background(), vendorID, productID)

		assert.Nil(t, product)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindFeatured(t *testing.T) {
	t.Run("lists in-stock available products", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE is_available = \$1 AND quantity > 0 ORDER BY created_at DESC LIMIT .*`).
			WithArgs(true, 20).
			WillReturnRows(productRows(uuid.New(), vendorID, "Widget", 3, true))

		products, err := repo.FindFeatured(context.Background(), 20)

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_DeleteForVendor(t *testing.T) {
	t.Run("deletes product within vendor scope", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE vendor_id = \$1 AND id = \$2`).
			WithArgs(vendorID, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteForVendor(context.Background(), vendorID, productID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE vendor_id = \$1 AND id = \$2`).
			WithArgs(vendorID, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteForVendor(context.Background(), vendorID, productID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_CountAvailableForVendor(t *testing.T) {
	t.Run("counts purchasable products", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE vendor_id = \$1 AND is_available = \$2`).
			WithArgs(vendorID, true).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		count, err := repo.CountAvailableForVendor(context.Background(), vendorID)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_ExistsForVendor(t *testing.T) {
	t.Run("returns true when owned by vendor", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		vendorID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE vendor_id = \$1 AND id = \$2`).
			WithArgs(vendorID, productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsForVendor(context.Background(), vendorID, productID)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements ProductRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		var _ catalog.ProductRepository = repo
	})
}
