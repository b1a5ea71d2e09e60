package infra

import (
	"fmt"

	"planiftchop/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables. The schema is small and greenfield, so GORM
// migrations are sufficient — no hand-written SQL patch layer.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations applies the schema. Also used by the integration test suite.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Dish{},
		&model.DishIngredient{},
		&model.StockItem{},
		&model.MealPlan{},
		&model.FamilyMember{},
	)
}
