// internal/service/enrichment_service.go
package service

import (
	"context"
	"fmt"

	"go_5_vocab_ai/internal/config"
	"go_5_vocab_ai/internal/events"
	"go_5_vocab_ai/internal/llm"
	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/repository"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type EnrichmentService interface {
	// Enrich はAI補完のエントリポイントです。modeにより3通りの動作をします。
	//   register: 空欄をすべて埋める
	//   predict:  変更対象フィールドの予測のみ（書き込みなし）
	//   edit:     指示されたフィールドだけを修正
	Enrich(ctx context.Context, profileID uuid.UUID, apiKey string, req *model.EnrichmentRequest) (*model.EnrichmentResult, error)
}

type enrichmentService struct {
	db        *gorm.DB
	vocabRepo repository.VocabularyRepository
	textModel llm.TextModel
	bus       *events.Bus
	cfg       *config.Config
}

func NewEnrichmentService(db *gorm.DB, vocabRepo repository.VocabularyRepository, textModel llm.TextModel, bus *events.Bus, cfg *config.Config) EnrichmentService {
	return &enrichmentService{
		db:        db,
		vocabRepo: vocabRepo,
		textModel: textModel,
		bus:       bus,
		cfg:       cfg,
	}
}

func (s *enrichmentService) Enrich(ctx context.Context, profileID uuid.UUID, apiKey string, req *model.EnrichmentRequest) (*model.EnrichmentResult, error) {
	mode, err := llm.ParseMode(req.Mode)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "補完モードの指定が正しくありません。", "mode", model.ErrInvalidInput)
	}

	vocabID, err := uuid.Parse(req.RecordID)
	if err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "レコードIDの形式が正しくありません。", "record_id", model.ErrInvalidInput)
	}

	// キーの優先順位: リクエストヘッダー > サーバー設定のフォールバック。
	// 外部呼び出しに入る前にキー不在で落とす
	if apiKey == "" {
		apiKey = s.cfg.Gemini.SystemAPIKey
	}
	if apiKey == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "AIモデルのAPIキーが指定されていません。", "", model.ErrInvalidInput)
	}

	switch mode {
	case llm.ModePredict:
		return s.predict(ctx, profileID, vocabID, req.ChatContext, apiKey)
	default:
		return s.generate(ctx, profileID, vocabID, mode, req.ChatContext, apiKey)
	}
}

// predict は読み取り専用です。どこにも書き込まない
func (s *enrichmentService) predict(ctx context.Context, profileID, vocabID uuid.UUID, chatContext, apiKey string) (*model.EnrichmentResult, error) {
	vocab, err := s.vocabRepo.FindByID(ctx, s.db, profileID, vocabID)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildPrompt(llm.ModePredict, vocab, chatContext)
	raw, err := s.textModel.GenerateJSON(ctx, apiKey, prompt)
	if err != nil {
		return nil, err
	}

	targets, err := llm.ParseTargets(raw)
	if err != nil {
		return nil, err
	}
	// 空のtargetsも正常応答として返す
	return &model.EnrichmentResult{Targets: targets}, nil
}

// generate は register / edit の書き込みパスです。処理中はis_generatingを
// 立て、成功・失敗を問わず必ず戻します
func (s *enrichmentService) generate(ctx context.Context, profileID, vocabID uuid.UUID, mode llm.Mode, chatContext, apiKey string) (*model.EnrichmentResult, error) {
	logger := middleware.GetLogger(ctx)

	if err := s.setGenerating(ctx, vocabID, profileID, true); err != nil {
		return nil, err
	}

	// 途中でどんな失敗をしてもフラグを残さない。この時点で確実に分かって
	// いるのはvocabIDだけなので、リセットはIDのみで行う
	completed := false
	defer func() {
		if completed {
			return
		}
		cleanupCtx := context.WithoutCancel(ctx)
		if err := s.setGenerating(cleanupCtx, vocabID, profileID, false); err != nil {
			logger.Error("Failed to reset is_generating flag after enrichment failure",
				"error", err, "vocabulary_id", vocabID.String())
		}
	}()

	vocab, err := s.vocabRepo.FindByID(ctx, s.db, profileID, vocabID)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildPrompt(mode, vocab, chatContext)
	raw, err := s.textModel.GenerateJSON(ctx, apiKey, prompt)
	if err != nil {
		return nil, err
	}

	patch, err := llm.ParseFieldPatch(raw)
	if err != nil {
		return nil, err
	}

	updates := patch.Updates()

	// 埋め込みは registerでは常に、editでは意味内容が変わったときだけ作り直す。
	// 失敗しても補完自体は成立させる
	if mode == llm.ModeRegister || patch.Term != nil || patch.Definition != nil {
		term := vocab.Term
		if patch.Term != nil {
			term = *patch.Term
		}
		definition := vocab.Definition
		if patch.Definition != nil {
			definition = *patch.Definition
		}

		values, err := s.textModel.Embed(ctx, apiKey, fmt.Sprintf("%s: %s", term, definition))
		if err != nil {
			logger.Warn("Embedding generation failed, continuing without embedding",
				"error", err, "vocabulary_id", vocabID.String())
		} else if len(values) != model.EmbeddingDimensions {
			logger.Warn("Embedding has unexpected dimensions, discarding",
				"got", len(values), "want", model.EmbeddingDimensions)
		} else {
			vec := pgvector.NewVector(values)
			updates["embedding"] = &vec
		}
	}

	updates["is_generating"] = false
	// 補完が成功した時点でステータスを昇格させる。意味が空でも昇格する
	if vocab.Status == model.StatusUninput {
		updates["status"] = model.StatusInputted
	}

	if err := s.vocabRepo.Update(ctx, s.db, profileID, vocabID, updates); err != nil {
		return nil, err
	}
	completed = true

	s.bus.Publish(events.Change{
		Table:        "vocabularies",
		Action:       events.ActionUpdate,
		RecordID:     vocabID,
		UserID:       profileID,
		IsGenerating: false,
	})

	return &model.EnrichmentResult{UpdatedFields: patch.FieldNames()}, nil
}

func (s *enrichmentService) setGenerating(ctx context.Context, vocabID, profileID uuid.UUID, generating bool) error {
	if err := s.vocabRepo.SetGenerating(ctx, s.db, vocabID, generating); err != nil {
		return err
	}
	s.bus.Publish(events.Change{
		Table:        "vocabularies",
		Action:       events.ActionUpdate,
		RecordID:     vocabID,
		UserID:       profileID,
		IsGenerating: generating,
	})
	return nil
}
