package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/barber-booking/internal/domain"
	staffRepo "github.com/m04kA/barber-booking/internal/infra/storage/staff"
	"github.com/m04kA/barber-booking/internal/service/staff/models"
	"github.com/m04kA/barber-booking/pkg/logger"
)

type fakeRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.StaffAccount
	nextID   int64
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: make(map[string]*domain.StaffAccount)}
}

func (r *fakeRepo) Create(_ context.Context, account *domain.StaffAccount) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	key := strings.ToLower(account.Email)
	if _, ok := r.accounts[key]; ok {
		return nil, staffRepo.ErrEmailTaken
	}
	r.nextID++
	stored := *account
	stored.ID = r.nextID
	stored.Email = key
	r.accounts[key] = &stored
	return &stored, nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	account, ok := r.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	copied := *account
	return &copied, nil
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, bcrypt.MinCost, logger.NewNop())
}

var admin = &domain.StaffIdentity{ID: 1, Name: "Admin", Email: "admin@barber.local"}

func TestAuthenticate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin@barber.local", "admin12345", "Admin")
	require.NoError(t, err)
	require.True(t, created)

	t.Run("valid credentials", func(t *testing.T) {
		identity, err := svc.Authenticate(ctx, "Admin@Barber.local", "admin12345")
		require.NoError(t, err)
		assert.Equal(t, "Admin", identity.Name)
		assert.Equal(t, "admin@barber.local", identity.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "admin@barber.local", "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost@barber.local", "admin12345")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "", "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("storage down", func(t *testing.T) {
		repo.err = fmt.Errorf("%w: boom", domain.ErrStorageUnavailable)
		defer func() { repo.err = nil }()

		_, err := svc.Authenticate(ctx, "admin@barber.local", "admin12345")
		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		caller  *domain.StaffIdentity
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name:    "requires caller",
			caller:  nil,
			req:     models.RegisterRequest{Email: "b@barber.local", Password: "password1", Name: "Bruno"},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:    "email without at sign",
			caller:  admin,
			req:     models.RegisterRequest{Email: "barber.local", Password: "password1", Name: "Bruno"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "short password",
			caller:  admin,
			req:     models.RegisterRequest{Email: "b@barber.local", Password: "1234567", Name: "Bruno"},
			wantErr: ErrWeakPassword,
		},
		{
			name:    "too long password",
			caller:  admin,
			req:     models.RegisterRequest{Email: "b@barber.local", Password: strings.Repeat("x", 73), Name: "Bruno"},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:    "short name",
			caller:  admin,
			req:     models.RegisterRequest{Email: "b@barber.local", Password: "password1", Name: " Bo "},
			wantErr: ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeRepo())
			_, err := svc.Register(ctx, tt.caller, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("success then duplicate", func(t *testing.T) {
		svc := newTestService(newFakeRepo())
		req := &models.RegisterRequest{Email: "b@barber.local", Password: "password1", Name: "Bruno"}

		resp, err := svc.Register(ctx, admin, req)
		require.NoError(t, err)
		assert.Equal(t, "Bruno", resp.Name)

		identity, err := svc.Authenticate(ctx, "b@barber.local", "password1")
		require.NoError(t, err)
		assert.Equal(t, resp.ID, identity.ID)

		_, err = svc.Register(ctx, admin, req)
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin@barber.local", "admin12345", "Admin")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin@barber.local", "another-pass", "Admin")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, repo.accounts, 1)

	// пароль не перезаписывается
	_, err = svc.Authenticate(ctx, "admin@barber.local", "admin12345")
	assert.NoError(t, err)
}

func TestEnsureAdmin_StorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.EnsureAdmin(context.Background(), "admin@barber.local", "admin12345", "Admin")
	assert.ErrorIs(t, err, ErrInternal)
}
