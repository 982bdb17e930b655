package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
	"github.com/quickvendor/backend/internal/domain/vendor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockProfileRepository creates a GormProfileRepository with a mocked SQL connection
func newMockProfileRepository(t *testing.T) (*GormProfileRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormProfileRepository(gormDB), mock, mockDB
}

func profileRows(userID uuid.UUID, businessName, slug string, active bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "business_name", "slug", "whatsapp", "bank_name", "account_number", "account_name", "is_active"}).
		AddRow(userID, businessName, slug, "+2348012345678", "First Bank", "0123456789", "Acme Stores Ltd", active)
}

func TestGormProfileRepository_FindByUserID(t *testing.T) {
	t.Run("finds existing profile", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vendor_profiles" WHERE user_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnRows(profileRows(userID, "Acme Store", "acme-store", true))

		profile, err := repo.FindByUserID(context.Background(), userID)

		assert.NoError(t, err)
		assert.NotNil(t, profile)
		assert.Equal(t, userID, profile.UserID)
		assert.Equal(t, "acme-store", profile.Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing profile", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vendor_profiles" WHERE user_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		profile, err := repo.FindByUserID(context.Background(), userID)

		assert.Error(t, err)
		assert.Nil(t, profile)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("finds deactivated profile too", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vendor_profiles" WHERE user_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnRows(profileRows(userID, "Acme Store", "acme-store", false))

		profile, err := repo.FindByUserID(context.Background(), userID)

		assert.NoError(t, err)
		assert.False(t, profile.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_FindActiveByUserID(t *testing.T) {
	t.Run("filters on the active flag", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vendor_profiles" WHERE user_id = \$1 AND is_active = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(userID, true, 1).
			WillReturnRows(profileRows(userID, "Acme Store", "acme-store", true))

		profile, err := repo.FindActiveByUserID(context.Background(), userID)

		assert.NoError(t, err)
		assert.NotNil(t, profile)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_FindActiveBySlug(t *testing.T) {
	t.Run("resolves storefront slug", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "vendor_profiles" WHERE slug = \$1 AND is_active = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("acme-store", true, 1).
			WillReturnRows(profileRows(userID, "Acme Store", "acme-store", true))

		profile, err := repo.FindActiveBySlug(context.Background(), "acme-store")

		assert.NoError(t, err)
		assert.Equal(t, "Acme Store", profile.BusinessName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown slug", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "vendor_profiles" WHERE slug = \$1 AND is_active = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("nobody-here", true, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		profile, err := repo.FindActiveBySlug(context.Background(), "nobody-here")

		assert.Nil(t, profile)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_SlugExists(t *testing.T) {
	t.Run("excludes the owner's own row", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		userID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "vendor_profiles" WHERE slug = \$1 AND user_id <> \$2`).
			WithArgs("acme-store", userID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.SlugExists(context.Background(), "acme-store", userID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a taken slug", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "vendor_profiles" WHERE slug = \$1 AND user_id <> \$2`).
			WithArgs("acme-store", uuid.Nil).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.SlugExists(context.Background(), "acme-store", uuid.Nil)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_Save(t *testing.T) {
	t.Run("saves profile", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		profile, err := vendor.NewProfile(uuid.New(), "Acme Store")
		require.NoError(t, err)
		profile.Slug = "acme-store"

		mock.ExpectExec(`UPDATE "vendor_profiles" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), profile)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("translates duplicate slug to ErrAlreadyExists", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		profile, err := vendor.NewProfile(uuid.New(), "Acme Store")
		require.NoError(t, err)
		profile.Slug = "acme-store"

		mock.ExpectExec(`UPDATE "vendor_profiles" SET`).
			WillReturnError(gorm.ErrDuplicatedKey)

		err = repo.Save(context.Background(), profile)

		assert.Equal(t, shared.ErrAlreadyExists, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_CountActive(t *testing.T) {
	t.Run("counts active profiles", func(t *testing.T) {
		repo, mock, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "vendor_profiles" WHERE is_active = \$1`).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountActive(context.Background(), shared.Filter{})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProfileRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements ProfileRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockProfileRepository(t)
		defer mockDB.Close()

		var _ vendor.ProfileRepository = repo
	})
}
