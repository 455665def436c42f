package impl

import (
	"context"
	"log/slog"

	deliverycontext "feastly/internal/delivery/context"
	"feastly/internal/domain/entity"
	domainerrors "feastly/internal/domain/errors"
	"feastly/internal/domain/repository"
	"feastly/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(
	txManager repository.TransactionManager,
	restaurantRepo repository.RestaurantRepository,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		txManager:      txManager,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of active restaurants together with a pagination
// envelope. The page rows and the total count are fetched concurrently since
// neither depends on the other.
func (srv *restaurantService) List(ctx context.Context, input *usecase.ListRestaurantsInput) (*usecase.ListRestaurantsOutput, error) {
	page := input.Page
	if page < 1 {
		page = usecase.DefaultPage
	}

	limit := input.Limit
	if limit < 1 {
		limit = usecase.DefaultLimit
	}
	if limit > usecase.MaxLimit {
		limit = usecase.MaxLimit
	}

	query := repository.ListQuery{
		Search:    input.Search,
		Cuisine:   input.Cuisine,
		SortBy:    repository.SortField(input.SortBy),
		SortOrder: repository.SortOrder(input.SortOrder),
		Offset:    (page - 1) * limit,
		Limit:     limit,
	}

	var (
		restaurants []*entity.Restaurant
		total       int64
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		restaurants, err = srv.restaurantRepo.List(groupCtx, query)

		return errors.Wrap(err, "failed to list restaurants")
	})
	group.Go(func() error {
		var err error
		total, err = srv.restaurantRepo.Count(groupCtx, query)

		return errors.Wrap(err, "failed to count restaurants")
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.ListRestaurantsOutput{
		Data: restaurants,
		Meta: usecase.PageMeta{
			TotalItems:   total,
			ItemCount:    len(restaurants),
			ItemsPerPage: limit,
			TotalPages:   totalPages,
			CurrentPage:  page,
		},
	}, nil
}

// GetByID returns one restaurant with its addresses preloaded. The lookup
// is by ID only, inactive restaurants are hidden from listings but remain
// fetchable directly.
func (srv *restaurantService) GetByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrRestaurantNotFound.WrapMessage("restaurant not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

// Create stores a restaurant and all of its addresses in a single
// transaction. A pre-check keeps the per-owner name unique with a friendly
// conflict error; the composite unique index in the store backstops the
// race between check and insert.
func (srv *restaurantService) Create(ctx context.Context, input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	srv.log(ctx).Info("Creating restaurant",
		slog.Uint64("ownerID", uint64(input.OwnerID)),
		slog.String("name", input.Name),
	)

	restaurant := buildRestaurant(input)

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.RestaurantRepo()

		existing, err := repo.FindByOwnerAndName(ctx, input.OwnerID, input.Name)
		if err != nil && !errors.Is(err, repository.ErrRestaurantNotFound) {
			return errors.Wrap(err, "failed to check restaurant name availability")
		}
		if existing != nil {
			srv.log(ctx).Warn("Restaurant creation rejected, duplicate name for owner",
				slog.Uint64("ownerID", uint64(input.OwnerID)),
				slog.String("name", input.Name),
			)

			return domainerrors.ErrRestaurantNameTaken.WrapMessage("duplicate restaurant name for owner")
		}

		return repo.Create(ctx, restaurant)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Restaurant created", slog.Uint64("restaurantID", uint64(restaurant.ID)))

	return restaurant, nil
}

// buildRestaurant maps the validated input onto a domain entity. A restaurant
// is active unless the caller explicitly disables it, and when no address is
// flagged primary the first one becomes primary.
func buildRestaurant(input *usecase.CreateRestaurantInput) *entity.Restaurant {
	ownerID := input.OwnerID

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	addresses := make([]*entity.Address, 0, len(input.Addresses))
	hasPrimary := false
	for _, addr := range input.Addresses {
		isPrimary := addr.IsPrimary != nil && *addr.IsPrimary
		if isPrimary {
			hasPrimary = true
		}
		addresses = append(addresses, &entity.Address{
			StreetAddress1: addr.StreetAddress1,
			StreetAddress2: addr.StreetAddress2,
			City:           addr.City,
			StateProvince:  addr.StateProvince,
			Country:        addr.Country,
			PostalCode:     addr.PostalCode,
			Latitude:       addr.Latitude,
			Longitude:      addr.Longitude,
			Label:          addr.Label,
			IsPrimary:      isPrimary,
		})
	}
	if !hasPrimary && len(addresses) > 0 {
		addresses[0].IsPrimary = true
	}

	return &entity.Restaurant{
		Name:               input.Name,
		Description:        input.Description,
		CuisineType:        input.CuisineType,
		LogoImageURL:       input.LogoImageURL,
		HeaderImageURL:     input.HeaderImageURL,
		PriceRange:         input.PriceRange,
		OperatingHoursInfo: input.OperatingHoursInfo,
		ContactPhone:       input.ContactPhone,
		ContactEmail:       input.ContactEmail,
		IsActive:           isActive,
		OwnerUserID:        &ownerID,
		Addresses:          addresses,
	}
}
