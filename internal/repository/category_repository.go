//go:generate mockery --name CategoryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, category *model.Category) error
	FindByID(ctx context.Context, db *gorm.DB, profileID, categoryID uuid.UUID) (*model.Category, error)
	FindByProfile(ctx context.Context, db *gorm.DB, profileID uuid.UUID) ([]*model.Category, error)
	Delete(ctx context.Context, db *gorm.DB, profileID, categoryID uuid.UUID) error
}

type gormCategoryRepository struct{}

func NewGormCategoryRepository() CategoryRepository {
	return &gormCategoryRepository{}
}

func (r *gormCategoryRepository) Create(ctx context.Context, db *gorm.DB, category *model.Category) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(category)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create category",
				"error", result.Error,
				"profile_id", category.ProfileID.String(),
				"name", category.Name,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating category in DB",
			"error", result.Error,
			"profile_id", category.ProfileID.String(),
			"name", category.Name,
		)
		return fmt.Errorf("gormCategoryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCategoryRepository) FindByID(ctx context.Context, db *gorm.DB, profileID, categoryID uuid.UUID) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var category model.Category
	result := db.WithContext(ctx).Where("profile_id = ? AND category_id = ?", profileID, categoryID).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding category by ID in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
			"category_id", categoryID.String(),
		)
		return nil, fmt.Errorf("gormCategoryRepository.FindByID: %w", result.Error)
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindByProfile(ctx context.Context, db *gorm.DB, profileID uuid.UUID) ([]*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var categories []*model.Category
	result := db.WithContext(ctx).Where("profile_id = ?", profileID).Order("created_at ASC").Find(&categories)
	if result.Error != nil {
		logger.Error("Error finding categories by profile in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return nil, fmt.Errorf("gormCategoryRepository.FindByProfile: %w", result.Error)
	}
	return categories, nil
}

func (r *gormCategoryRepository) Delete(ctx context.Context, db *gorm.DB, profileID, categoryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("profile_id = ?", profileID).Delete(&model.Category{}, categoryID)
	if result.Error != nil {
		logger.Error("Error deleting category in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
			"category_id", categoryID.String(),
		)
		return fmt.Errorf("gormCategoryRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
