package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"feastly/internal/domain/entity"
	domainerrors "feastly/internal/domain/errors"
	"feastly/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	var captured *usecase.RegisterInput
	authUC := &stubAuthUsecase{
		registerFn: func(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			captured = input

			return &usecase.RegisterOutput{User: &entity.User{
				ID:        1,
				Email:     input.Email,
				FirstName: input.FirstName,
				LastName:  input.LastName,
				Role:      entity.RoleCustomer,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}}, nil
		},
	}

	e := newTestServer(t, authUC, nil, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/register",
		`{"first_name":"Omar","last_name":"Hassan","email":"omar@example.com","password":"supersecret"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "omar@example.com", captured.Email)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "user")

	var user map[string]any
	require.NoError(t, json.Unmarshal(body["user"], &user))
	assert.Equal(t, "Omar", user["first_name"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
	assert.NotContains(t, rec.Body.String(), "supersecret")
}

func TestRegister_ShortPassword(t *testing.T) {
	called := false
	authUC := &stubAuthUsecase{
		registerFn: func(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			called = true

			return nil, nil
		},
	}

	e := newTestServer(t, authUC, nil, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/register",
		`{"first_name":"Omar","last_name":"Hassan","email":"omar@example.com","password":"short"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called, "validation failures must not reach the usecase")

	var body struct {
		Message []string `json:"message"`
		Error   string   `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Bad Request", body.Error)
	assert.Contains(t, body.Message, "password must be at least 8 characters long")
}

func TestRegister_InvalidEmail(t *testing.T) {
	e := newTestServer(t, &stubAuthUsecase{}, nil, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/register",
		`{"first_name":"Omar","last_name":"Hassan","email":"not-an-email","password":"supersecret"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email must be a valid email address")
}

func TestRegister_EmailTaken(t *testing.T) {
	authUC := &stubAuthUsecase{
		registerFn: func(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		},
	}

	e := newTestServer(t, authUC, nil, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/register",
		`{"first_name":"Omar","last_name":"Hassan","email":"omar@example.com","password":"supersecret"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email already exist, try another one", body.Message)
	assert.Equal(t, "Conflict", body.Error)
}

func TestLogin(t *testing.T) {
	authUC := &stubAuthUsecase{
		loginFn: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{
				User:        &entity.User{ID: 7, Email: input.Email, Role: entity.RoleCustomer},
				AccessToken: "signed-token",
			}, nil
		},
	}

	e := newTestServer(t, authUC, nil, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"omar@example.com","password":"supersecret"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User        map[string]any `json:"user"`
		AccessToken string         `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body.AccessToken)
	assert.Equal(t, float64(7), body.User["id"])
}

func TestLogin_BadCredentials(t *testing.T) {
	authUC := &stubAuthUsecase{
		loginFn: func(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
		},
	}

	e := newTestServer(t, authUC, nil, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"omar@example.com","password":"wrongpass"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect email or password")
}

func TestLogin_MissingFields(t *testing.T) {
	e := newTestServer(t, &stubAuthUsecase{}, nil, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/auth/login", `{"email":"omar@example.com"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password is required")
}
