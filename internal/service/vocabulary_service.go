// internal/service/vocabulary_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_vocab_ai/internal/events"
	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VocabularyService interface {
	CreateVocabulary(ctx context.Context, profileID uuid.UUID, req *model.PostVocabularyRequest) (*model.Vocabulary, error)
	GetVocabulary(ctx context.Context, profileID, vocabID uuid.UUID) (*model.Vocabulary, error)
	ListVocabularies(ctx context.Context, profileID uuid.UUID, categoryID *uuid.UUID) ([]*model.Vocabulary, error)
	UpdateVocabulary(ctx context.Context, profileID, vocabID uuid.UUID, req *model.PatchVocabularyRequest) (*model.Vocabulary, error)
	DeleteVocabulary(ctx context.Context, profileID, vocabID uuid.UUID) error
	SubmitReview(ctx context.Context, profileID, vocabID uuid.UUID, isCorrect bool) (*model.Vocabulary, error)
}

type vocabularyService struct {
	db        *gorm.DB // トランザクション用にDB接続を持つ
	vocabRepo repository.VocabularyRepository
	bus       *events.Bus
}

func NewVocabularyService(db *gorm.DB, vocabRepo repository.VocabularyRepository, bus *events.Bus) VocabularyService {
	return &vocabularyService{
		db:        db,
		vocabRepo: vocabRepo,
		bus:       bus,
	}
}

func (s *vocabularyService) CreateVocabulary(ctx context.Context, profileID uuid.UUID, req *model.PostVocabularyRequest) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)

	if req.Term == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語は必須項目です。", "term", model.ErrInvalidInput)
	}

	var created *model.Vocabulary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 重複チェック
		exists, err := s.vocabRepo.CheckTermExists(ctx, tx, profileID, req.Term, nil)
		if err != nil {
			logger.Error("Error checking term existence in transaction", "error", err)
			return model.ErrInternalServer
		}
		if exists {
			return model.NewAppError("DUPLICATE_TERM", "この単語は既に登録されています。", "term", model.ErrConflict)
		}

		// 意味がまだ無い語は未入力ステータスで作る。AI補完が後から埋める
		status := model.StatusInputted
		if req.Definition == "" {
			status = model.StatusUninput
		}

		vocab := &model.Vocabulary{
			VocabularyID: uuid.New(),
			ProfileID:    profileID,
			CategoryID:   req.CategoryID,
			Term:         req.Term,
			Definition:   req.Definition,
			PartOfSpeech: req.PartOfSpeech,
			IPA:          req.IPA,
			Example:      req.Example,
			Etymology:    req.Etymology,
			Synonyms:     req.Synonyms,
			Collocations: req.Collocations,
			SourceMemo:   req.SourceMemo,
			Status:       status,
		}
		if err := s.vocabRepo.Create(ctx, tx, vocab); err != nil {
			logger.Error("Error creating vocabulary in transaction", "error", err)
			return model.ErrInternalServer
		}

		created = vocab
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateVocabulary", "error", err)
		return nil, model.ErrInternalServer
	}

	s.bus.Publish(events.Change{
		Table:    "vocabularies",
		Action:   events.ActionInsert,
		RecordID: created.VocabularyID,
		UserID:   profileID,
	})
	return created, nil
}

func (s *vocabularyService) GetVocabulary(ctx context.Context, profileID, vocabID uuid.UUID) (*model.Vocabulary, error) {
	vocab, err := s.vocabRepo.FindByID(ctx, s.db, profileID, vocabID)
	if err != nil {
		// エラーはリポジトリで変換済み
		return nil, err
	}
	return vocab, nil
}

func (s *vocabularyService) ListVocabularies(ctx context.Context, profileID uuid.UUID, categoryID *uuid.UUID) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	vocabs, err := s.vocabRepo.FindByProfile(ctx, s.db, profileID, categoryID)
	if err != nil {
		logger.Error("Error listing vocabularies", "error", err)
		return nil, model.ErrInternalServer
	}
	return vocabs, nil
}

func (s *vocabularyService) UpdateVocabulary(ctx context.Context, profileID, vocabID uuid.UUID, req *model.PatchVocabularyRequest) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Vocabulary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vocab, err := s.vocabRepo.FindByID(ctx, tx, profileID, vocabID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Term != nil && *req.Term != "" && *req.Term != vocab.Term {
			exists, err := s.vocabRepo.CheckTermExists(ctx, tx, profileID, *req.Term, &vocabID)
			if err != nil {
				logger.Error("Error checking term existence during update", "error", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.NewAppError("DUPLICATE_TERM", "この単語は既に登録されています。", "term", model.ErrConflict)
			}
			updates["term"] = *req.Term
			// 単語自体が変わったら古い埋め込みは意味を失う
			updates["embedding"] = nil
		}
		if req.Definition != nil {
			updates["definition"] = *req.Definition
			if vocab.Status == model.StatusUninput && *req.Definition != "" {
				updates["status"] = model.StatusInputted
			}
		}
		if req.PartOfSpeech != nil {
			updates["part_of_speech"] = *req.PartOfSpeech
		}
		if req.IPA != nil {
			updates["ipa"] = *req.IPA
		}
		if req.Example != nil {
			updates["example"] = *req.Example
		}
		if req.Etymology != nil {
			updates["etymology"] = *req.Etymology
		}
		if req.Synonyms != nil {
			updates["synonyms"] = *req.Synonyms
		}
		if req.Collocations != nil {
			updates["collocations"] = *req.Collocations
		}
		if req.SourceMemo != nil {
			updates["source_memo"] = *req.SourceMemo
		}
		if req.CategoryID != nil {
			updates["category_id"] = *req.CategoryID
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}

		if len(updates) > 0 {
			if err := s.vocabRepo.Update(ctx, tx, profileID, vocabID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				logger.Error("Error updating vocabulary in transaction", "error", err)
				return model.ErrInternalServer
			}
		}

		updated, err = s.vocabRepo.FindByID(ctx, tx, profileID, vocabID)
		if err != nil {
			logger.Error("Error fetching updated vocabulary in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.Is(err, model.ErrNotFound) || errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateVocabulary", "error", err)
		return nil, model.ErrInternalServer
	}

	s.bus.Publish(events.Change{
		Table:        "vocabularies",
		Action:       events.ActionUpdate,
		RecordID:     vocabID,
		UserID:       profileID,
		IsGenerating: updated.IsGenerating,
	})
	return updated, nil
}

func (s *vocabularyService) DeleteVocabulary(ctx context.Context, profileID, vocabID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.vocabRepo.Delete(ctx, tx, profileID, vocabID)
	})
	if err != nil {
		return err
	}

	s.bus.Publish(events.Change{
		Table:    "vocabularies",
		Action:   events.ActionDelete,
		RecordID: vocabID,
		UserID:   profileID,
	})
	return nil
}

// SubmitReview は復習の正誤を記録します。正誤カウンタの加算はSQL側で行い、
// 並行した回答で取りこぼしが起きないようにする
func (s *vocabularyService) SubmitReview(ctx context.Context, profileID, vocabID uuid.UUID, isCorrect bool) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var reviewed *model.Vocabulary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.vocabRepo.FindByID(ctx, tx, profileID, vocabID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"last_reviewed_at": time.Now(),
		}
		if isCorrect {
			updates["correct_count"] = gorm.Expr("correct_count + 1")
		} else {
			updates["incorrect_count"] = gorm.Expr("incorrect_count + 1")
		}

		if err := s.vocabRepo.Update(ctx, tx, profileID, vocabID, updates); err != nil {
			logger.Error("Error recording review result", "error", err)
			return model.ErrInternalServer
		}

		var err error
		reviewed, err = s.vocabRepo.FindByID(ctx, tx, profileID, vocabID)
		if err != nil {
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for SubmitReview", "error", err)
		return nil, model.ErrInternalServer
	}

	s.bus.Publish(events.Change{
		Table:    "vocabularies",
		Action:   events.ActionUpdate,
		RecordID: vocabID,
		UserID:   profileID,
	})
	return reviewed, nil
}
