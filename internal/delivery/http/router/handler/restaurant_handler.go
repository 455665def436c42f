package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"feastly/internal/delivery/http/middleware"
	"feastly/internal/delivery/http/response"
	domainerrors "feastly/internal/domain/errors"
	"feastly/internal/domain/repository"
	"feastly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for restaurant-related handlers.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

type listRestaurantsRequest struct {
	Search    string `query:"search" json:"search"`
	Cuisine   string `query:"cuisine" json:"cuisine"`
	Page      int    `query:"page" json:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	SortBy    string `query:"sortBy" json:"sortBy" validate:"omitempty,oneof=name rating price"`
	SortOrder string `query:"sortOrder" json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

type createAddressRequest struct {
	StreetAddress1 string   `json:"street_address_1" validate:"required,max=255"`
	StreetAddress2 string   `json:"street_address_2" validate:"omitempty,max=255"`
	City           string   `json:"city" validate:"required,max=100"`
	StateProvince  string   `json:"state_province" validate:"omitempty,max=100"`
	Country        string   `json:"country" validate:"required,max=100"`
	PostalCode     string   `json:"postal_code" validate:"omitempty,max=20"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,longitude"`
	Label          string   `json:"label" validate:"omitempty,max=50"`
	IsPrimary      *bool    `json:"is_primary"`
}

type createRestaurantRequest struct {
	Name               string                 `json:"name" validate:"required,max=255"`
	Description        string                 `json:"description" validate:"omitempty,max=2000"`
	CuisineType        string                 `json:"cuisine_type" validate:"omitempty,max=100"`
	LogoImageURL       string                 `json:"logo_image_url" validate:"omitempty,url"`
	HeaderImageURL     string                 `json:"header_image_url" validate:"omitempty,url"`
	PriceRange         string                 `json:"price_range" validate:"omitempty,max=10"`
	OperatingHoursInfo map[string]any         `json:"operating_hours_info"`
	ContactPhone       string                 `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail       string                 `json:"contact_email" validate:"omitempty,email"`
	IsActive           *bool                  `json:"is_active"`
	Addresses          []createAddressRequest `json:"addresses" validate:"required,min=1,dive"`
}

// List handles the public restaurant listing with search, filter, sort, and
// pagination.
func (h *RestaurantHandler) List(c echo.Context) error {
	var req listRestaurantsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), &usecase.ListRestaurantsInput{
		Search:    req.Search,
		Cuisine:   req.Cuisine,
		Page:      req.Page,
		Limit:     req.Limit,
		SortBy:    repository.SortField(req.SortBy),
		SortOrder: repository.SortOrder(req.SortOrder),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.ListEnvelope{
		Data: toRestaurantResponses(output.Data),
		Meta: output.Meta,
	})
}

// GetByID handles fetching a single restaurant with its addresses.
func (h *RestaurantHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return response.Error(c, http.StatusBadRequest, "Invalid restaurant id")
	}

	restaurant, err := h.uc.GetByID(c.Request().Context(), uint(id))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toRestaurantResponse(restaurant))
}

// Create handles restaurant creation for authenticated owners. The owner
// identity always comes from the verified token, never from the body.
func (h *RestaurantHandler) Create(c echo.Context) error {
	var req createRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "Invalid restaurant payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ownerID := middleware.UserIDFromContext(c)
	if ownerID == 0 {
		return domainerrors.ErrUnauthorized.WrapMessage("caller identity missing from context")
	}

	input := &usecase.CreateRestaurantInput{
		OwnerID:            ownerID,
		Name:               req.Name,
		Description:        req.Description,
		CuisineType:        req.CuisineType,
		LogoImageURL:       req.LogoImageURL,
		HeaderImageURL:     req.HeaderImageURL,
		PriceRange:         req.PriceRange,
		OperatingHoursInfo: req.OperatingHoursInfo,
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
		IsActive:           req.IsActive,
	}
	for _, addr := range req.Addresses {
		input.Addresses = append(input.Addresses, usecase.AddressInput{
			StreetAddress1: addr.StreetAddress1,
			StreetAddress2: addr.StreetAddress2,
			City:           addr.City,
			StateProvince:  addr.StateProvince,
			Country:        addr.Country,
			PostalCode:     addr.PostalCode,
			Latitude:       addr.Latitude,
			Longitude:      addr.Longitude,
			Label:          addr.Label,
			IsPrimary:      addr.IsPrimary,
		})
	}

	restaurant, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.MessageEnvelope{
		Message: "Restaurant created successfully",
		Data:    toRestaurantResponse(restaurant),
	})
}
