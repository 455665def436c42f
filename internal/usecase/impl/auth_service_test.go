package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"feastly/internal/domain/entity"
	domainerrors "feastly/internal/domain/errors"
	"feastly/internal/domain/repository"
	"feastly/internal/domain/service"
	"feastly/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepo is a hand-written UserRepository test double.
type stubUserRepo struct {
	findByIDFn    func(ctx context.Context, id uint) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	createFn      func(ctx context.Context, user *entity.User) error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return s.createFn(ctx, user)
}

type stubHasher struct {
	hashFn  func(password string) (string, error)
	checkFn func(password, hash string) bool
}

func (s *stubHasher) Hash(password string) (string, error) { return s.hashFn(password) }

func (s *stubHasher) Check(password, hash string) bool { return s.checkFn(password, hash) }

type stubTokenService struct {
	generateFn func(userID uint, role string) (string, error)
	validateFn func(token string) (*service.Claims, error)
}

func (s *stubTokenService) GenerateToken(userID uint, role string) (string, error) {
	return s.generateFn(userID, role)
}

func (s *stubTokenService) ValidateToken(token string) (*service.Claims, error) {
	return s.validateFn(token)
}

func (s *stubTokenService) AccessTokenDuration() time.Duration { return time.Hour }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthService_Register(t *testing.T) {
	var created *entity.User
	userRepo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
		createFn: func(_ context.Context, user *entity.User) error {
			user.ID = 42
			created = user

			return nil
		},
	}
	hasher := &stubHasher{
		hashFn: func(password string) (string, error) { return "hashed:" + password, nil },
	}

	svc := NewAuthService(userRepo, hasher, &stubTokenService{}, discardLogger())

	out, err := svc.Register(context.Background(), &usecase.RegisterInput{
		FirstName: "Omar",
		LastName:  "Hassan",
		Email:     "omar@example.com",
		Password:  "supersecret",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "hashed:supersecret", created.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, created.Role, "role should default to customer")
	assert.Equal(t, uint(42), out.User.ID)
	assert.Empty(t, out.User.PasswordHash, "returned user must not carry the password hash")
}

func TestAuthService_Register_KeepsRequestedRole(t *testing.T) {
	userRepo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
		createFn: func(_ context.Context, _ *entity.User) error { return nil },
	}
	hasher := &stubHasher{hashFn: func(string) (string, error) { return "h", nil }}

	svc := NewAuthService(userRepo, hasher, &stubTokenService{}, discardLogger())

	out, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "owner@example.com",
		Password: "supersecret",
		Role:     entity.RoleRestaurantOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRestaurantOwner, out.User.Role)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	userRepo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: 1, Email: email}, nil
		},
		createFn: func(_ context.Context, _ *entity.User) error {
			t.Fatal("Create should not be called when the email is taken")

			return nil
		},
	}

	svc := NewAuthService(userRepo, &stubHasher{}, &stubTokenService{}, discardLogger())

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	userRepo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	hasher := &stubHasher{
		hashFn: func(string) (string, error) { return "", errors.New("cost out of range") },
	}

	svc := NewAuthService(userRepo, hasher, &stubTokenService{}, discardLogger())

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Email:    "omar@example.com",
		Password: "supersecret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login(t *testing.T) {
	stored := &entity.User{
		ID:           7,
		Email:        "omar@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleCustomer,
	}
	userRepo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			clone := *stored

			return &clone, nil
		},
	}
	hasher := &stubHasher{
		checkFn: func(password, hash string) bool {
			return password == "supersecret" && hash == "stored-hash"
		},
	}
	tokens := &stubTokenService{
		generateFn: func(userID uint, role string) (string, error) {
			assert.Equal(t, uint(7), userID)
			assert.Equal(t, "CUSTOMER", role)

			return "signed-token", nil
		},
	}

	svc := NewAuthService(userRepo, hasher, tokens, discardLogger())

	out, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "omar@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Empty(t, out.User.PasswordHash)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}

	svc := NewAuthService(userRepo, &stubHasher{}, &stubTokenService{}, discardLogger())

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := &stubUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return &entity.User{ID: 7, PasswordHash: "stored-hash"}, nil
		},
	}
	hasher := &stubHasher{checkFn: func(_, _ string) bool { return false }}

	svc := NewAuthService(userRepo, hasher, &stubTokenService{}, discardLogger())

	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "omar@example.com",
		Password: "wrongpass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials),
		"wrong password must yield the same error as an unknown email")
}
