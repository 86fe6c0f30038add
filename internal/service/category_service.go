// internal/service/category_service.go
package service

import (
	"context"
	"errors"

	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, profileID uuid.UUID, req *model.PostCategoryRequest) (*model.Category, error)
	ListCategories(ctx context.Context, profileID uuid.UUID) ([]*model.Category, error)
	DeleteCategory(ctx context.Context, profileID, categoryID uuid.UUID) error
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo repository.CategoryRepository
	vocabRepo    repository.VocabularyRepository
}

func NewCategoryService(db *gorm.DB, categoryRepo repository.CategoryRepository, vocabRepo repository.VocabularyRepository) CategoryService {
	return &categoryService{
		db:           db,
		categoryRepo: categoryRepo,
		vocabRepo:    vocabRepo,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, profileID uuid.UUID, req *model.PostCategoryRequest) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)

	category := &model.Category{
		CategoryID: uuid.New(),
		ProfileID:  profileID,
		Name:       req.Name,
	}
	if err := s.categoryRepo.Create(ctx, s.db, category); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("DUPLICATE_CATEGORY", "同じ名前のカテゴリが既にあります。", "name", model.ErrConflict)
		}
		logger.Error("Error creating category", "error", err)
		return nil, model.ErrInternalServer
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, profileID uuid.UUID) ([]*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	categories, err := s.categoryRepo.FindByProfile(ctx, s.db, profileID)
	if err != nil {
		logger.Error("Error listing categories", "error", err)
		return nil, model.ErrInternalServer
	}
	return categories, nil
}

// DeleteCategory はカテゴリを削除します。所属していた単語は未分類に戻す
func (s *categoryService) DeleteCategory(ctx context.Context, profileID, categoryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.categoryRepo.FindByID(ctx, tx, profileID, categoryID); err != nil {
			return err
		}

		result := tx.Model(&model.Vocabulary{}).
			Where("profile_id = ? AND category_id = ?", profileID, categoryID).
			Update("category_id", nil)
		if result.Error != nil {
			logger.Error("Error detaching vocabularies from category", "error", result.Error)
			return model.ErrInternalServer
		}

		return s.categoryRepo.Delete(ctx, tx, profileID, categoryID)
	})
}
