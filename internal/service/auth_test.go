package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository"
)

type mockAuthUserRepository struct {
	created domain.User
	user    domain.User
	err     error
}

func (m *mockAuthUserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	m.created = user
	return user, m.err
}

func (m *mockAuthUserRepository) FindByEmail(_ context.Context, _ string) (domain.User, error) {
	return m.user, m.err
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("Success - password stored hashed", func(t *testing.T) {
		repo := &mockAuthUserRepository{}
		svc := NewAuthService(repo)

		_, err := svc.Signup(context.Background(), domain.User{
			Email:    "owner@store.test",
			Password: "hunter2hunter2",
			Name:     "Owner",
		})

		require.NoError(t, err)
		assert.NotEqual(t, "hunter2hunter2", repo.created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.Password), []byte("hunter2hunter2")))
	})

	t.Run("Error - duplicate email", func(t *testing.T) {
		repo := &mockAuthUserRepository{err: repository.ErrUserEmailExists}
		svc := NewAuthService(repo)

		_, err := svc.Signup(context.Background(), domain.User{Email: "owner@store.test", Password: "pw"})

		assert.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse1"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := &mockAuthUserRepository{user: domain.User{ID: 1, Email: "owner@store.test", Password: string(hash)}}
		svc := NewAuthService(repo)

		user, err := svc.Login(context.Background(), "owner@store.test", "correct-horse1")

		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("Error - wrong password", func(t *testing.T) {
		repo := &mockAuthUserRepository{user: domain.User{Password: string(hash)}}
		svc := NewAuthService(repo)

		_, err := svc.Login(context.Background(), "owner@store.test", "wrong")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("Error - unknown user", func(t *testing.T) {
		repo := &mockAuthUserRepository{err: repository.ErrUserNotFound}
		svc := NewAuthService(repo)

		_, err := svc.Login(context.Background(), "ghost@store.test", "pw")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
