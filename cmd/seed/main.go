// Command seed migrates the schema and loads a small set of sample
// restaurants for local development. It wipes existing restaurant and
// address rows first, so never point it at a real database.
package main

import (
	"context"
	"encoding/json"
	"log/slog"

	"feastly/config"
	logs "feastly/internal/infra/log"
	"feastly/internal/infra/persistence/model"
	"feastly/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		fx.Invoke(run),
	).Run()
}

func run(db *gorm.DB, logger *slog.Logger, shutdowner fx.Shutdowner) {
	if err := seed(db, logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		_ = shutdowner.Shutdown(fx.ExitCode(1))

		return
	}

	logger.Info("Seeding finished")
	_ = shutdowner.Shutdown()
}

func seed(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(&model.UserModel{}, &model.RestaurantModel{}, &model.AddressModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	logger.Info("Cleaning old data")
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.AddressModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clean addresses")
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.RestaurantModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clean restaurants")
	}

	logger.Info("Seeding restaurants and addresses")
	for _, restaurant := range sampleRestaurants() {
		if err := db.Create(restaurant).Error; err != nil {
			return errors.Wrapf(err, "failed to seed restaurant %q", restaurant.Name)
		}
		logger.Info("Created restaurant",
			slog.String("name", restaurant.Name),
			slog.Uint64("id", uint64(restaurant.ID)),
		)
	}

	return nil
}

func mustHours(hours map[string]string) datatypes.JSON {
	raw, err := json.Marshal(hours)
	if err != nil {
		panic(err)
	}

	return datatypes.JSON(raw)
}

func ptr[T any](v T) *T {
	return &v
}

// sampleRestaurants returns Alexandria restaurants, one of them inactive so
// the listing filter can be exercised locally.
func sampleRestaurants() []*model.RestaurantModel {
	return []*model.RestaurantModel{
		{
			Name:        "Gad Restaurant (Smouha)",
			Description: "Classic Egyptian fast food and staples. Known for foul and falafel.",
			CuisineType: "Egyptian, Fast Food",
			PriceRange:  "EGP 20-80",
			OperatingHoursInfo: mustHours(map[string]string{
				"Mon": "7am-2am", "Tue": "7am-2am", "Wed": "7am-2am", "Thu": "7am-2am",
				"Fri": "7am-3am", "Sat": "7am-3am", "Sun": "7am-2am",
			}),
			ContactPhone: "03-4201111",
			IsActive:     true,
			Addresses: []model.AddressModel{
				{
					StreetAddress1: "10 Fawzy Moaz St",
					City:           "Alexandria",
					StateProvince:  "Alexandria Governorate",
					Country:        "Egypt",
					PostalCode:     "21615",
					Latitude:       ptr(31.2233),
					Longitude:      ptr(29.9567),
					Label:          "Smouha Branch",
					IsPrimary:      true,
				},
			},
		},
		{
			Name:               "Abou Anas Al-Shamy (Miami)",
			Description:        "Famous Syrian shawerma and grilled dishes.",
			CuisineType:        "Syrian, Grills, Shawerma",
			PriceRange:         "EGP 40-150",
			OperatingHoursInfo: mustHours(map[string]string{"Everyday": "11am-3am"}),
			IsActive:           true,
			Addresses: []model.AddressModel{
				{
					StreetAddress1: "45 Gamal Abdel Nasser Rd, Miami",
					City:           "Alexandria",
					StateProvince:  "Alexandria Governorate",
					Country:        "Egypt",
					PostalCode:     "21929",
					Latitude:       ptr(31.2800),
					Longitude:      ptr(30.0011),
					Label:          "Miami Branch",
					IsPrimary:      true,
				},
			},
		},
		{
			Name:        "Hosny For Seafood (Bahary)",
			Description: "Well-known spot for fresh seafood with sea views.",
			CuisineType: "Seafood, Egyptian",
			PriceRange:  "EGP 100-400",
			IsActive:    true,
			Addresses: []model.AddressModel{
				{
					StreetAddress1: "Qaitbay St, Anfoushi",
					City:           "Alexandria",
					StateProvince:  "Alexandria Governorate",
					Country:        "Egypt",
					PostalCode:     "21599",
					Latitude:       ptr(31.2130),
					Longitude:      ptr(29.8850),
					Label:          "Bahary Main",
					IsPrimary:      true,
				},
			},
		},
		{
			Name:        "Balbaa Village (Sidi Gaber)",
			Description: "Large venue offering diverse grills and Egyptian cuisine.",
			CuisineType: "Egyptian, Grills, Middle Eastern",
			PriceRange:  "EGP 80-250",
			IsActive:    true,
			Addresses: []model.AddressModel{
				{
					StreetAddress1: "Near Sidi Gaber Station",
					City:           "Alexandria",
					StateProvince:  "Alexandria Governorate",
					Country:        "Egypt",
					PostalCode:     "21529",
					Latitude:       ptr(31.2195),
					Longitude:      ptr(29.9417),
					IsPrimary:      true,
				},
			},
		},
		{
			Name:        "Pizza King (Inactive Branch)",
			Description: "Pizza place - currently inactive test.",
			CuisineType: "Pizza, Italian",
			PriceRange:  "EGP 50-200",
			IsActive:    false,
			Addresses: []model.AddressModel{
				{
					StreetAddress1: "1 Test St",
					City:           "Alexandria",
					StateProvince:  "Alexandria Governorate",
					Country:        "Egypt",
					PostalCode:     "00000",
					IsPrimary:      true,
				},
			},
		},
	}
}
