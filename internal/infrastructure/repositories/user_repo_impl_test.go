package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artmarket.backend/internal/domain/entities"
	domainerrors "artmarket.backend/internal/domain/errors"
)

func newUserRepo(t *testing.T) *UserRepository {
	db := newTestDB(t)
	createUsersTable(t, db)
	return NewUserRepository(db)
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	user := &entities.User{
		Name:         "Ewa",
		Email:        "ewa@example.com",
		PasswordHash: "hash",
		Role:         entities.UserRoleGallery,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ewa@example.com", byID.Email)
	assert.Equal(t, entities.UserRoleGallery, byID.Role)

	byEmail, err := repo.GetByEmail(ctx, "ewa@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	repo := newUserRepo(t)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	first := &entities.User{Name: "Ewa", Email: "ewa@example.com", PasswordHash: "h", Role: entities.UserRoleAdmin}
	require.NoError(t, repo.Create(ctx, first))

	second := &entities.User{Name: "Other", Email: "ewa@example.com", PasswordHash: "h", Role: entities.UserRoleAdmin}
	assert.Error(t, repo.Create(ctx, second))
}
