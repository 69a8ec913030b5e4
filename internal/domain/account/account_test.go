package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/keelson/sitedesk/internal/domain/account"
	"github.com/keelson/sitedesk/internal/repository"
	"github.com/keelson/sitedesk/internal/repository/mocks"
)

func newService(repo *mocks.ProfileRepository) *account.Service {
	return account.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegister(t *testing.T) {
	repo := new(mocks.ProfileRepository)
	svc := newService(repo)

	repo.On("GetByEmail", mock.Anything, "pm@sitedesk.test").Return(nil, repository.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*account.Profile")).Return(nil)

	p, err := svc.Register(context.Background(), account.RegisterRequest{
		Email:    "pm@sitedesk.test",
		Password: "hunter22",
		FullName: "Dana Alvarez",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "field_team", p.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("hunter22")))
	repo.AssertExpectations(t)
}

func TestRegisterMissingFields(t *testing.T) {
	repo := new(mocks.ProfileRepository)
	svc := newService(repo)

	_, err := svc.Register(context.Background(), account.RegisterRequest{
		Email: "pm@sitedesk.test",
	})
	require.ErrorIs(t, err, account.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(mocks.ProfileRepository)
	svc := newService(repo)

	repo.On("GetByEmail", mock.Anything, "pm@sitedesk.test").
		Return(&account.Profile{ID: "existing"}, nil)

	_, err := svc.Register(context.Background(), account.RegisterRequest{
		Email:    "pm@sitedesk.test",
		Password: "hunter22",
		FullName: "Dana Alvarez",
	})
	require.ErrorIs(t, err, account.ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mocks.ProfileRepository)
	svc := newService(repo)
	repo.On("GetByEmail", mock.Anything, "pm@sitedesk.test").
		Return(&account.Profile{ID: "p1", Email: "pm@sitedesk.test", PasswordHash: string(hash)}, nil)

	p, err := svc.Authenticate(context.Background(), "pm@sitedesk.test", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "p1", p.ID)

	_, err = svc.Authenticate(context.Background(), "pm@sitedesk.test", "wrong")
	require.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	repo := new(mocks.ProfileRepository)
	svc := newService(repo)
	repo.On("GetByEmail", mock.Anything, "ghost@sitedesk.test").Return(nil, repository.ErrNotFound)

	_, err := svc.Authenticate(context.Background(), "ghost@sitedesk.test", "hunter22")
	require.ErrorIs(t, err, account.ErrInvalidCredentials)
}
