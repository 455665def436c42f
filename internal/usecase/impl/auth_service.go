// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "feastly/internal/delivery/context"
	"feastly/internal/domain/entity"
	domainerrors "feastly/internal/domain/errors"
	"feastly/internal/domain/repository"
	"feastly/internal/domain/service"
	"feastly/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after checking email uniqueness. The
// password is hashed before anything is stored and the returned user never
// carries the hash.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}
	if existing != nil {
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Uint64("userID", uint64(newUser.ID)))

	return &usecase.RegisterOutput{User: newUser.Sanitized()}, nil
}

// Login verifies the credentials and issues a signed access token. The two
// failure cases (unknown email, wrong password) are logged distinctly but
// collapse into one generic error so the API cannot be used to enumerate
// registered emails.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed, email not registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("email not registered")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Uint64("userID", uint64(user.ID)))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login completed", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.LoginOutput{User: user.Sanitized(), AccessToken: accessToken}, nil
}
