//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VocabularyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error
	FindByID(ctx context.Context, db *gorm.DB, profileID, vocabID uuid.UUID) (*model.Vocabulary, error)
	FindByProfile(ctx context.Context, db *gorm.DB, profileID uuid.UUID, categoryID *uuid.UUID) ([]*model.Vocabulary, error)
	Update(ctx context.Context, tx *gorm.DB, profileID, vocabID uuid.UUID, updates map[string]interface{}) error
	// SetGenerating は所有者の検証なしでis_generatingだけを書き換えます。
	// 失敗経路の後始末では record_id 以外に確かな情報がないため
	SetGenerating(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID, generating bool) error
	Delete(ctx context.Context, tx *gorm.DB, profileID, vocabID uuid.UUID) error
	CheckTermExists(ctx context.Context, db *gorm.DB, profileID uuid.UUID, term string, excludeVocabID *uuid.UUID) (bool, error)
	// SearchSimilar は埋め込みのコサイン距離で近い語を探します。
	// minSim/maxSim は類似度(1-距離)の下限と上限
	SearchSimilar(ctx context.Context, db *gorm.DB, profileID uuid.UUID, embedding pgvector.Vector, minSim, maxSim float64, limit int, excludeVocabID uuid.UUID) ([]*model.Vocabulary, error)
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, vocab *model.Vocabulary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vocab)
	if result.Error != nil {
		logger.Error("Error creating vocabulary in DB",
			"error", result.Error,
			"profile_id", vocab.ProfileID.String(),
			"term", vocab.Term,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVocabularyRepository) FindByID(ctx context.Context, db *gorm.DB, profileID, vocabID uuid.UUID) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocab model.Vocabulary
	result := db.WithContext(ctx).Where("profile_id = ? AND vocabulary_id = ?", profileID, vocabID).First(&vocab)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary by ID in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
			"vocabulary_id", vocabID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByID: %w", result.Error)
	}
	return &vocab, nil
}

func (r *gormVocabularyRepository) FindByProfile(ctx context.Context, db *gorm.DB, profileID uuid.UUID, categoryID *uuid.UUID) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary
	query := db.WithContext(ctx).Where("profile_id = ?", profileID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	result := query.Order("created_at DESC").Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error finding vocabularies by profile in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByProfile: %w", result.Error)
	}
	return vocabs, nil
}

func (r *gormVocabularyRepository) Update(ctx context.Context, tx *gorm.DB, profileID, vocabID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Vocabulary{}).Where("profile_id = ? AND vocabulary_id = ?", profileID, vocabID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating vocabulary in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
			"vocabulary_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) SetGenerating(ctx context.Context, tx *gorm.DB, vocabID uuid.UUID, generating bool) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Vocabulary{}).Where("vocabulary_id = ?", vocabID).Update("is_generating", generating)
	if result.Error != nil {
		logger.Error("Error updating is_generating flag in DB",
			"error", result.Error,
			"vocabulary_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.SetGenerating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) Delete(ctx context.Context, tx *gorm.DB, profileID, vocabID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("profile_id = ?", profileID).Delete(&model.Vocabulary{}, vocabID)
	if result.Error != nil {
		logger.Error("Error deleting vocabulary in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
			"vocabulary_id", vocabID.String(),
		)
		return fmt.Errorf("gormVocabularyRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormVocabularyRepository) CheckTermExists(ctx context.Context, db *gorm.DB, profileID uuid.UUID, term string, excludeVocabID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Vocabulary{}).Where("profile_id = ? AND term = ?", profileID, term)
	if excludeVocabID != nil {
		query = query.Where("vocabulary_id != ?", *excludeVocabID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
			"term", term,
		)
		return false, fmt.Errorf("gormVocabularyRepository.CheckTermExists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormVocabularyRepository) SearchSimilar(ctx context.Context, db *gorm.DB, profileID uuid.UUID, embedding pgvector.Vector, minSim, maxSim float64, limit int, excludeVocabID uuid.UUID) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabs []*model.Vocabulary

	// pgvectorの <=> はコサイン距離。類似度の窓を距離の窓に読み替える
	maxDistance := 1 - minSim
	minDistance := 1 - maxSim

	result := db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Where("vocabulary_id != ?", excludeVocabID).
		Where("embedding IS NOT NULL").
		Where("(embedding <=> ?) BETWEEN ? AND ?", embedding, minDistance, maxDistance).
		Clauses(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []interface{}{embedding}}}).
		Limit(limit).
		Find(&vocabs)
	if result.Error != nil {
		logger.Error("Error searching similar vocabularies in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return nil, fmt.Errorf("gormVocabularyRepository.SearchSimilar: %w", result.Error)
	}
	return vocabs, nil
}
