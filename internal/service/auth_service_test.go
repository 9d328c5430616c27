package service

import (
	"testing"
	"time"

	"pesona/config"
	"pesona/internal/auth"
	"pesona/internal/domain"
	"pesona/internal/models"
	"pesona/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret: "test-secret",
			Expiry: time.Hour,
			Issuer: "pesona-test",
		},
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string, active bool) *models.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.AdminUser{
		Name:         "Editor",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleEditor,
		IsActive:     active,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.AdminUser{}))
	seedUser(t, db, "editor@pesona.local", true)
	seedUser(t, db, "gone@pesona.local", false)

	cfg := testConfig()
	svc := NewAuthService(cfg, repository.NewAdminUserRepository(db))

	u, token, err := svc.Login("editor@pesona.local", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "editor@pesona.local", u.Email)

	claims, err := auth.ParseToken(&cfg.JWT, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, domain.RoleEditor, claims.Role)

	_, _, err = svc.Login("editor@pesona.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, _, err = svc.Login("nobody@pesona.local", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	// Deactivated accounts are indistinguishable from bad credentials.
	_, _, err = svc.Login("gone@pesona.local", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestPrincipalChecksActiveFlag(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.AdminUser{}))
	active := seedUser(t, db, "editor@pesona.local", true)
	inactive := seedUser(t, db, "gone@pesona.local", false)

	svc := NewAuthService(testConfig(), repository.NewAdminUserRepository(db))

	u, err := svc.Principal(active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.Email, u.Email)

	_, err = svc.Principal(inactive.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
