package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feastly/internal/delivery/http/middleware"
	"feastly/internal/delivery/http/router"
	"feastly/internal/delivery/http/router/handler"
	"feastly/internal/delivery/http/validator"
	"feastly/internal/domain/entity"
	"feastly/internal/domain/service"
	"feastly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type stubAuthUsecase struct {
	registerFn func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error)
	loginFn    func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

type stubRestaurantUsecase struct {
	listFn    func(ctx context.Context, input *usecase.ListRestaurantsInput) (*usecase.ListRestaurantsOutput, error)
	getByIDFn func(ctx context.Context, id uint) (*entity.Restaurant, error)
	createFn  func(ctx context.Context, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error)
}

func (s *stubRestaurantUsecase) List(ctx context.Context, input *usecase.ListRestaurantsInput) (*usecase.ListRestaurantsOutput, error) {
	return s.listFn(ctx, input)
}

func (s *stubRestaurantUsecase) GetByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubRestaurantUsecase) Create(ctx context.Context, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	return s.createFn(ctx, input)
}

// stubTokenService resolves tokens from a fixed map, the token string is the
// lookup key.
type stubTokenService struct {
	tokens map[string]*service.Claims
}

func (s *stubTokenService) GenerateToken(userID uint, role string) (string, error) {
	return "unused", nil
}

func (s *stubTokenService) ValidateToken(token string) (*service.Claims, error) {
	claims, ok := s.tokens[token]
	if !ok {
		return nil, errors.New("token is malformed")
	}

	return claims, nil
}

func (s *stubTokenService) AccessTokenDuration() time.Duration { return time.Hour }

// newTestServer assembles a real Echo instance with the production wiring
// (routes, validator, auth middleware, terminal error handler) on top of
// stubbed usecases.
func newTestServer(t *testing.T, authUC usecase.AuthUsecase, restaurantUC usecase.RestaurantUsecase, tokens map[string]*service.Claims) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if authUC == nil {
		authUC = &stubAuthUsecase{}
	}
	if restaurantUC == nil {
		restaurantUC = &stubRestaurantUsecase{}
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AuthHandler:       handler.NewAuthHandler(authUC, logger),
		RestaurantHandler: handler.NewRestaurantHandler(restaurantUC, logger),
		AuthMiddleware:    middleware.NewAuthMiddleware(&stubTokenService{tokens: tokens}),
	})
	r.RegisterRoutes(e)

	return e
}

func doRequest(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}
