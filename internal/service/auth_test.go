package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cyberduce/summit-api/internal/domain"
	"github.com/cyberduce/summit-api/internal/repository"
)

type fakeAdminRepo struct {
	admins map[string]domain.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]domain.Admin{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin domain.Admin) (domain.Admin, error) {
	if _, ok := r.admins[admin.Email]; ok {
		return domain.Admin{}, repository.ErrAdminEmailExists
	}

	admin.ID = uint(len(r.admins) + 1)
	r.admins[admin.Email] = admin

	return admin, nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (domain.Admin, error) {
	admin, ok := r.admins[email]
	if !ok {
		return domain.Admin{}, repository.ErrAdminNotFound
	}

	return admin, nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id uint) (domain.Admin, error) {
	for _, admin := range r.admins {
		if admin.ID == id {
			return admin, nil
		}
	}

	return domain.Admin{}, repository.ErrAdminNotFound
}

func TestAuthService_Signup(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.Admin{
		Email:    "admin@example.com",
		Password: "password123",
		Name:     "Admin",
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))

	_, err = svc.Signup(context.Background(), domain.Admin{
		Email:    "admin@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrAdminEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.Admin{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		admin, err := svc.Login(context.Background(), "admin@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", admin.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin@example.com", "nope")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "password123")

		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}

func TestAuthService_Admin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.Admin{
		Email:    "admin@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	admin, err := svc.Admin(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, admin.Email)

	_, err = svc.Admin(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
