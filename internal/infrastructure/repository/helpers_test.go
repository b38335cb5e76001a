package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/deskline-inc/deskline/internal/domain/user"
	vo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	roles := models.DefaultRoles()
	require.NoError(t, gdb.Create(&roles).Error)
	return gdb
}

func createTestUser(t *testing.T, repo *UserRepository, username string, role authorization.Role) *user.User {
	t.Helper()
	name, err := vo.NewUsername(username)
	require.NoError(t, err)
	email, err := vo.NewEmail(username + "@example.com")
	require.NoError(t, err)

	u, err := user.NewUser(name, email, "hash", user.Profile{
		FirstName:   "First" + username,
		LastName:    "Last",
		PhoneNumber: "555-123-4567",
	}, role, true)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), u))
	return u
}

func newUserRepo(gdb *gorm.DB) *UserRepository {
	return NewUserRepository(gdb, logger.NewNopLogger())
}
