// internal/service/quiz_service.go
package service

import (
	"context"
	"math/rand"

	"go_5_vocab_ai/internal/config"
	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	// GenerateQuiz は対象の単語の「意味」を問題文に、類似語の単語を誤答候補に
	// した四択クイズを作ります
	GenerateQuiz(ctx context.Context, profileID uuid.UUID, req *model.PostQuizRequest) (*model.Quiz, error)
}

type quizService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	cfg       *config.Config
}

func NewQuizService(db *gorm.DB, vocabRepo repository.VocabularyRepository, cfg *config.Config) QuizService {
	return &quizService{
		db:        db,
		vocabRepo: vocabRepo,
		cfg:       cfg,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, profileID uuid.UUID, req *model.PostQuizRequest) (*model.Quiz, error) {
	logger := middleware.GetLogger(ctx)

	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "出題対象のIDが正しくありません。", "target_id", model.ErrInvalidInput)
	}

	target, err := s.vocabRepo.FindByID(ctx, s.db, profileID, targetID)
	if err != nil {
		return nil, err
	}
	if target.Definition == "" {
		return nil, model.NewAppError("QUIZ_NOT_READY", "意味が未入力の単語からはクイズを作成できません。", "target_id", model.ErrInvalidInput)
	}
	if target.Embedding == nil {
		return nil, model.NewAppError("QUIZ_NOT_READY", "この単語はまだ類似検索の準備ができていません。AI補完を実行してください。", "target_id", model.ErrInvalidInput)
	}

	// 似すぎず遠すぎない語を誤答候補にする
	distractors, err := s.vocabRepo.SearchSimilar(ctx, s.db, profileID, *target.Embedding,
		s.cfg.Quiz.MinSimilarity, s.cfg.Quiz.MaxSimilarity, s.cfg.Quiz.DistractorCount, targetID)
	if err != nil {
		logger.Error("Error searching distractors", "error", err)
		return nil, model.ErrInternalServer
	}
	if len(distractors) < s.cfg.Quiz.DistractorCount {
		return nil, model.NewAppError("QUIZ_NOT_READY", "誤答候補になる単語が足りません。もう少し単語を登録してください。", "", model.ErrInvalidInput)
	}

	options := make([]model.QuizOption, 0, len(distractors)+1)
	options = append(options, model.QuizOption{
		VocabularyID: target.VocabularyID,
		Term:         target.Term,
		IsCorrect:    true,
	})
	for _, d := range distractors {
		options = append(options, model.QuizOption{
			VocabularyID: d.VocabularyID,
			Term:         d.Term,
		})
	}

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &model.Quiz{
		Question: target.Definition,
		Answer:   target.Term,
		Options:  options,
	}, nil
}
