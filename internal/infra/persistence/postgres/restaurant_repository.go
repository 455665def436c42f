package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"feastly/internal/domain/entity"
	domainerrors "feastly/internal/domain/errors"
	"feastly/internal/domain/repository"
	"feastly/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// sortColumns maps the externally accepted sort keys onto real columns.
// The validation layer rejects anything outside this map; unknown keys
// fall back to name ascending.
var sortColumns = map[repository.SortField]string{
	repository.SortByName:   "name",
	repository.SortByRating: "average_rating",
	repository.SortByPrice:  "price_range",
}

// restaurantRepository implements the repository.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// likeEscaper neutralizes the LIKE metacharacters so user terms match as
// literal substrings. Backslash is PostgreSQL's default ILIKE escape
// character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// filtered returns a query scoped to active restaurants with the listing
// filters applied. Search matches name or description, cuisine matches the
// cuisine type, both as case-insensitive substrings.
func (repo *restaurantRepository) filtered(ctx context.Context, query repository.ListQuery) *gorm.DB {
	tx := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("is_active = ?", true)

	if query.Search != "" {
		pattern := likePattern(query.Search)
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if query.Cuisine != "" {
		tx = tx.Where("cuisine_type ILIKE ?", likePattern(query.Cuisine))
	}

	return tx
}

// List retrieves the page of active restaurants matching the query.
func (repo *restaurantRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Restaurant, error) {
	order := "name asc"
	if column, ok := sortColumns[query.SortBy]; ok {
		direction := "asc"
		if query.SortOrder == repository.SortDesc {
			direction = "desc"
		}
		order = column + " " + direction
	}

	var restaurantModels []*model.RestaurantModel

	if err := repo.filtered(ctx, query).
		Order(order).
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// Count returns the total number of active restaurants matching the query's
// filters, ignoring its offset and limit.
func (repo *restaurantRepository) Count(ctx context.Context, query repository.ListQuery) (int64, error) {
	var total int64

	if err := repo.filtered(ctx, query).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants")
	}

	return total, nil
}

// FindByID retrieves a single restaurant by its unique ID, with addresses preloaded.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Preload("Addresses").
		Where("id = ?", id).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by id")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// FindByOwnerAndName retrieves a restaurant owned by ownerID whose name
// matches exactly. Name matching is deliberately case-sensitive.
func (repo *restaurantRepository) FindByOwnerAndName(ctx context.Context, ownerID uint, name string) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("owner_user_id = ? AND name = ?", ownerID, name).
		First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by owner and name")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// Create persists a new restaurant together with its nested addresses.
// GORM writes the restaurant row and all address rows through association
// handling, so inside a transaction the write is all-or-nothing.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM, err := fromRestaurantDomain(restaurant)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRestaurantNameTaken.WrapMessage("owner/name pair already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	// Update the entity with generated values
	restaurant.ID = restaurantM.ID
	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt
	for i, addressM := range restaurantM.Addresses {
		restaurant.Addresses[i].ID = addressM.ID
		restaurant.Addresses[i].RestaurantID = addressM.RestaurantID
		restaurant.Addresses[i].CreatedAt = addressM.CreatedAt
		restaurant.Addresses[i].UpdatedAt = addressM.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	var hours map[string]any
	if len(data.OperatingHoursInfo) > 0 {
		// A malformed jsonb payload only loses the free-form hours blob.
		_ = json.Unmarshal(data.OperatingHoursInfo, &hours)
	}

	addresses := make([]*entity.Address, 0, len(data.Addresses))
	for i := range data.Addresses {
		addresses = append(addresses, toAddressDomain(&data.Addresses[i]))
	}

	return &entity.Restaurant{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		CuisineType:        data.CuisineType,
		LogoImageURL:       data.LogoImageURL,
		HeaderImageURL:     data.HeaderImageURL,
		PriceRange:         data.PriceRange,
		OperatingHoursInfo: hours,
		ContactPhone:       data.ContactPhone,
		ContactEmail:       data.ContactEmail,
		AverageRating:      data.AverageRating,
		IsActive:           data.IsActive,
		OwnerUserID:        data.OwnerUserID,
		Addresses:          addresses,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) (*model.RestaurantModel, error) {
	if data == nil {
		return nil, nil
	}

	var hours datatypes.JSON
	if data.OperatingHoursInfo != nil {
		raw, err := json.Marshal(data.OperatingHoursInfo)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode operating hours")
		}
		hours = datatypes.JSON(raw)
	}

	addresses := make([]model.AddressModel, 0, len(data.Addresses))
	for _, address := range data.Addresses {
		addresses = append(addresses, *fromAddressDomain(address))
	}

	return &model.RestaurantModel{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		CuisineType:        data.CuisineType,
		LogoImageURL:       data.LogoImageURL,
		HeaderImageURL:     data.HeaderImageURL,
		PriceRange:         data.PriceRange,
		OperatingHoursInfo: hours,
		ContactPhone:       data.ContactPhone,
		ContactEmail:       data.ContactEmail,
		AverageRating:      data.AverageRating,
		IsActive:           data.IsActive,
		OwnerUserID:        data.OwnerUserID,
		Addresses:          addresses,
	}, nil
}

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:             data.ID,
		RestaurantID:   data.RestaurantID,
		StreetAddress1: data.StreetAddress1,
		StreetAddress2: data.StreetAddress2,
		City:           data.City,
		StateProvince:  data.StateProvince,
		Country:        data.Country,
		PostalCode:     data.PostalCode,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Label:          data.Label,
		IsPrimary:      data.IsPrimary,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:             data.ID,
		RestaurantID:   data.RestaurantID,
		StreetAddress1: data.StreetAddress1,
		StreetAddress2: data.StreetAddress2,
		City:           data.City,
		StateProvince:  data.StateProvince,
		Country:        data.Country,
		PostalCode:     data.PostalCode,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Label:          data.Label,
		IsPrimary:      data.IsPrimary,
	}
}
