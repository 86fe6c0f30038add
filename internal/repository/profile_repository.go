//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
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

type ProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error
	FindByID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) (*model.Profile, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Profile, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Profile, error)
	Update(ctx context.Context, db *gorm.DB, profileID uuid.UUID, updates map[string]interface{}) error
	// UpdateCredential はAPIキーの暗号封筒(JSON文字列)を差し替えます。nilで削除
	UpdateCredential(ctx context.Context, db *gorm.DB, profileID uuid.UUID, encrypted *string) error
	Delete(ctx context.Context, db *gorm.DB, profileID uuid.UUID) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(profile)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn(
				"Duplicate key error on create profile",
				"error", result.Error,
				"profile_name", profile.Name,
				"email", profile.Email,
			)
			return model.ErrConflict
		}

		logger.Error(
			"Error creating profile in DB",
			"error", result.Error,
			"profile_name", profile.Name,
		)
		return fmt.Errorf("gormProfileRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormProfileRepository) FindByID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.Profile

	result := db.WithContext(ctx).Where("profile_id = ?", profileID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding profile by ID in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return nil, fmt.Errorf("gormProfileRepository.FindByID: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.Profile

	result := db.WithContext(ctx).Where("name = ?", name).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding profile by name in DB",
			"error", result.Error,
			"profile_name", name,
		)
		return nil, fmt.Errorf("gormProfileRepository.FindByName: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.Profile

	result := db.WithContext(ctx).Where("email = ?", email).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding profile by email in DB",
			"error", result.Error,
		)
		return nil, fmt.Errorf("gormProfileRepository.FindByEmail: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) Update(ctx context.Context, db *gorm.DB, profileID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.Profile{}).Where("profile_id = ?", profileID).Updates(updates)
	if result.Error != nil {
		logger.Error(
			"Error updating profile in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return fmt.Errorf("gormProfileRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProfileRepository) UpdateCredential(ctx context.Context, db *gorm.DB, profileID uuid.UUID, encrypted *string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Profile{}).Where("profile_id = ?", profileID).Update("encrypted_api_key", encrypted)
	if result.Error != nil {
		logger.Error(
			"Error updating encrypted credential in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return fmt.Errorf("gormProfileRepository.UpdateCredential: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProfileRepository) Delete(ctx context.Context, db *gorm.DB, profileID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Delete(&model.Profile{}, profileID)
	if result.Error != nil {
		logger.Error(
			"Error deleting profile in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return fmt.Errorf("gormProfileRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
