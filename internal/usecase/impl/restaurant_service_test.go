package impl

import (
	"context"
	"testing"

	"feastly/internal/domain/entity"
	domainerrors "feastly/internal/domain/errors"
	"feastly/internal/domain/repository"
	"feastly/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRestaurantRepo is a hand-written RestaurantRepository test double.
type stubRestaurantRepo struct {
	listFn               func(ctx context.Context, query repository.ListQuery) ([]*entity.Restaurant, error)
	countFn              func(ctx context.Context, query repository.ListQuery) (int64, error)
	findByIDFn           func(ctx context.Context, id uint) (*entity.Restaurant, error)
	findByOwnerAndNameFn func(ctx context.Context, ownerID uint, name string) (*entity.Restaurant, error)
	createFn             func(ctx context.Context, restaurant *entity.Restaurant) error
}

func (s *stubRestaurantRepo) List(ctx context.Context, query repository.ListQuery) ([]*entity.Restaurant, error) {
	return s.listFn(ctx, query)
}

func (s *stubRestaurantRepo) Count(ctx context.Context, query repository.ListQuery) (int64, error) {
	return s.countFn(ctx, query)
}

func (s *stubRestaurantRepo) FindByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubRestaurantRepo) FindByOwnerAndName(ctx context.Context, ownerID uint, name string) (*entity.Restaurant, error) {
	return s.findByOwnerAndNameFn(ctx, ownerID, name)
}

func (s *stubRestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return s.createFn(ctx, restaurant)
}

// stubTxManager runs the transactional function directly against the stub
// repositories, no database involved.
type stubTxManager struct {
	factory *stubRepositoryFactory
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

type stubRepositoryFactory struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
}

func (s *stubRepositoryFactory) UserRepo() repository.UserRepository { return s.userRepo }

func (s *stubRepositoryFactory) RestaurantRepo() repository.RestaurantRepository {
	return s.restaurantRepo
}

func newRestaurantService(repo *stubRestaurantRepo) usecase.RestaurantUsecase {
	txManager := &stubTxManager{factory: &stubRepositoryFactory{restaurantRepo: repo}}

	return NewRestaurantService(txManager, repo, discardLogger())
}

func TestRestaurantService_List(t *testing.T) {
	rows := []*entity.Restaurant{
		{ID: 1, Name: "Koshary El Tahrir"},
		{ID: 2, Name: "Sea Breeze"},
	}
	var capturedQuery repository.ListQuery
	repo := &stubRestaurantRepo{
		listFn: func(_ context.Context, query repository.ListQuery) ([]*entity.Restaurant, error) {
			capturedQuery = query

			return rows, nil
		},
		countFn: func(_ context.Context, _ repository.ListQuery) (int64, error) {
			return 12, nil
		},
	}

	out, err := newRestaurantService(repo).List(context.Background(), &usecase.ListRestaurantsInput{
		Search:    "koshary",
		Page:      2,
		Limit:     5,
		SortBy:    repository.SortByRating,
		SortOrder: repository.SortDesc,
	})
	require.NoError(t, err)

	assert.Equal(t, "koshary", capturedQuery.Search)
	assert.Equal(t, 5, capturedQuery.Offset, "offset should be (page-1)*limit")
	assert.Equal(t, 5, capturedQuery.Limit)
	assert.Equal(t, repository.SortByRating, capturedQuery.SortBy)

	assert.Equal(t, rows, out.Data)
	assert.Equal(t, int64(12), out.Meta.TotalItems)
	assert.Equal(t, 2, out.Meta.ItemCount)
	assert.Equal(t, 5, out.Meta.ItemsPerPage)
	assert.Equal(t, 3, out.Meta.TotalPages, "12 items at 5 per page is 3 pages")
	assert.Equal(t, 2, out.Meta.CurrentPage)
}

func TestRestaurantService_List_ClampsWindow(t *testing.T) {
	var capturedQuery repository.ListQuery
	repo := &stubRestaurantRepo{
		listFn: func(_ context.Context, query repository.ListQuery) ([]*entity.Restaurant, error) {
			capturedQuery = query

			return nil, nil
		},
		countFn: func(_ context.Context, _ repository.ListQuery) (int64, error) { return 0, nil },
	}

	svc := newRestaurantService(repo)

	out, err := svc.List(context.Background(), &usecase.ListRestaurantsInput{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, capturedQuery.Offset)
	assert.Equal(t, usecase.DefaultLimit, capturedQuery.Limit)
	assert.Equal(t, usecase.DefaultPage, out.Meta.CurrentPage)
	assert.Equal(t, 0, out.Meta.TotalPages)

	_, err = svc.List(context.Background(), &usecase.ListRestaurantsInput{Page: 1, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, usecase.MaxLimit, capturedQuery.Limit)
}

func TestRestaurantService_List_CountFailure(t *testing.T) {
	repo := &stubRestaurantRepo{
		listFn: func(_ context.Context, _ repository.ListQuery) ([]*entity.Restaurant, error) {
			return nil, nil
		},
		countFn: func(_ context.Context, _ repository.ListQuery) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}

	_, err := newRestaurantService(repo).List(context.Background(), &usecase.ListRestaurantsInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count restaurants")
}

func TestRestaurantService_GetByID(t *testing.T) {
	repo := &stubRestaurantRepo{
		findByIDFn: func(_ context.Context, id uint) (*entity.Restaurant, error) {
			return &entity.Restaurant{ID: id, Name: "Sea Breeze"}, nil
		},
	}

	restaurant, err := newRestaurantService(repo).GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), restaurant.ID)
}

func TestRestaurantService_GetByID_NotFound(t *testing.T) {
	repo := &stubRestaurantRepo{
		findByIDFn: func(_ context.Context, _ uint) (*entity.Restaurant, error) {
			return nil, repository.ErrRestaurantNotFound
		},
	}

	_, err := newRestaurantService(repo).GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNotFound))
}

func TestRestaurantService_Create(t *testing.T) {
	var created *entity.Restaurant
	repo := &stubRestaurantRepo{
		findByOwnerAndNameFn: func(_ context.Context, _ uint, _ string) (*entity.Restaurant, error) {
			return nil, repository.ErrRestaurantNotFound
		},
		createFn: func(_ context.Context, restaurant *entity.Restaurant) error {
			restaurant.ID = 10
			created = restaurant

			return nil
		},
	}

	lat, lng := 31.2001, 29.9187
	out, err := newRestaurantService(repo).Create(context.Background(), &usecase.CreateRestaurantInput{
		OwnerID:     5,
		Name:        "Sea Breeze",
		CuisineType: "Seafood",
		Addresses: []usecase.AddressInput{
			{StreetAddress1: "12 Corniche Rd", City: "Alexandria", Country: "Egypt", Latitude: &lat, Longitude: &lng},
			{StreetAddress1: "3 Station Sq", City: "Alexandria", Country: "Egypt"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, uint(10), out.ID)
	require.NotNil(t, created.OwnerUserID)
	assert.Equal(t, uint(5), *created.OwnerUserID)
	assert.True(t, created.IsActive, "restaurants default to active")

	require.Len(t, created.Addresses, 2)
	assert.True(t, created.Addresses[0].IsPrimary, "first address becomes primary when none is flagged")
	assert.False(t, created.Addresses[1].IsPrimary)
}

func TestRestaurantService_Create_RespectsExplicitFlags(t *testing.T) {
	repo := &stubRestaurantRepo{
		findByOwnerAndNameFn: func(_ context.Context, _ uint, _ string) (*entity.Restaurant, error) {
			return nil, repository.ErrRestaurantNotFound
		},
		createFn: func(_ context.Context, _ *entity.Restaurant) error { return nil },
	}

	inactive := false
	primary := true
	out, err := newRestaurantService(repo).Create(context.Background(), &usecase.CreateRestaurantInput{
		OwnerID:  5,
		Name:     "Night Kitchen",
		IsActive: &inactive,
		Addresses: []usecase.AddressInput{
			{StreetAddress1: "1 First St", City: "Alexandria", Country: "Egypt"},
			{StreetAddress1: "2 Second St", City: "Alexandria", Country: "Egypt", IsPrimary: &primary},
		},
	})
	require.NoError(t, err)

	assert.False(t, out.IsActive)
	assert.False(t, out.Addresses[0].IsPrimary)
	assert.True(t, out.Addresses[1].IsPrimary)
}

func TestRestaurantService_Create_DuplicateName(t *testing.T) {
	repo := &stubRestaurantRepo{
		findByOwnerAndNameFn: func(_ context.Context, ownerID uint, name string) (*entity.Restaurant, error) {
			return &entity.Restaurant{ID: 1, Name: name, OwnerUserID: &ownerID}, nil
		},
		createFn: func(_ context.Context, _ *entity.Restaurant) error {
			t.Fatal("Create should not be called when the name is taken")

			return nil
		},
	}

	_, err := newRestaurantService(repo).Create(context.Background(), &usecase.CreateRestaurantInput{
		OwnerID:   5,
		Name:      "Sea Breeze",
		Addresses: []usecase.AddressInput{{StreetAddress1: "12 Corniche Rd", City: "Alexandria", Country: "Egypt"}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRestaurantNameTaken))
}
