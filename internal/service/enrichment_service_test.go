// internal/service/enrichment_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_vocab_ai/internal/config"
	"go_5_vocab_ai/internal/events"
	llmmocks "go_5_vocab_ai/internal/llm/mocks"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBEnrich() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func enrichTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Gemini.GenerationModel = "gemini-2.0-flash"
	cfg.Gemini.EmbeddingModel = "text-embedding-004"
	return cfg
}

func Test_enrichmentService_Enrich_Validation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBEnrich()
	profileID := uuid.New()

	tests := []struct {
		name         string
		apiKey       string
		systemKey    string
		req          *model.EnrichmentRequest
		wantErrField string
	}{
		{
			name:         "異常系: 未知のモード",
			apiKey:       "key",
			req:          &model.EnrichmentRequest{RecordID: uuid.New().String(), Mode: "bulk"},
			wantErrField: "mode",
		},
		{
			name:         "異常系: レコードIDがUUIDでない",
			apiKey:       "key",
			req:          &model.EnrichmentRequest{RecordID: "not-a-uuid", Mode: "register"},
			wantErrField: "record_id",
		},
		{
			name:         "異常系: ヘッダーにもサーバー設定にもキーが無い",
			apiKey:       "",
			systemKey:    "",
			req:          &model.EnrichmentRequest{RecordID: uuid.New().String(), Mode: "register"},
			wantErrField: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockVocabRepo := new(mocks.VocabularyRepository)
			mockModel := new(llmmocks.TextModel)
			cfg := enrichTestConfig()
			cfg.Gemini.SystemAPIKey = tc.systemKey
			svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), cfg)

			result, err := svc.Enrich(ctx, profileID, tc.apiKey, tc.req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, model.ErrInvalidInput)

			var appErr *model.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
			assert.Equal(t, tc.wantErrField, appErr.Detail.Field)

			// 外部呼び出しにもリポジトリにも到達しないこと
			mockModel.AssertNotCalled(t, "GenerateJSON", mock.Anything, mock.Anything, mock.Anything)
			mockVocabRepo.AssertNotCalled(t, "SetGenerating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func Test_enrichmentService_Enrich_Register(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBEnrich()
	profileID := uuid.New()
	vocabID := uuid.New()

	vocab := &model.Vocabulary{
		VocabularyID: vocabID,
		ProfileID:    profileID,
		Term:         "ephemeral",
		Status:       model.StatusUninput,
	}
	fullResponse := `{
		"definition": "儚い、つかの間の",
		"part_of_speech": "adjective",
		"ipa": "/ɪˈfemərəl/",
		"example": "Fame is ephemeral. (名声は儚い)",
		"etymology": "ギリシャ語 ephemeros から",
		"synonyms": ["transient 一時的な"],
		"collocations": ["ephemeral beauty 儚い美しさ"]
	}`

	t.Run("正常系: 空欄が埋まりステータスが昇格する", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		bus := events.NewBus()
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, bus, enrichTestConfig())

		notifications, cancel := bus.Subscribe("vocabularies", nil)
		defer cancel()

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return(fullResponse, nil).Once()
		mockModel.On("Embed", ctx, "user-key", "ephemeral: 儚い、つかの間の").
			Return(make([]float32, model.EmbeddingDimensions), nil).Once()
		mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				assert.Equal(t, false, updates["is_generating"])
				assert.Equal(t, model.StatusInputted, updates["status"])
				assert.Equal(t, "儚い、つかの間の", updates["definition"])
				assert.NotNil(t, updates["embedding"])
			}).Return(nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "register", ChatContext: "チャットで出てきた",
		})
		require.NoError(t, err)
		assert.Contains(t, result.UpdatedFields, "definition")
		assert.Contains(t, result.UpdatedFields, "ipa")

		// 処理開始と完了の2回の通知が飛ぶ
		first := <-notifications
		assert.True(t, first.IsGenerating)
		second := <-notifications
		assert.False(t, second.IsGenerating)
		assert.Equal(t, vocabID, second.RecordID)

		mockVocabRepo.AssertExpectations(t)
		mockModel.AssertExpectations(t)
	})

	t.Run("正常系: 埋め込み生成の失敗は補完を妨げない", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return(fullResponse, nil).Once()
		mockModel.On("Embed", ctx, "user-key", mock.AnythingOfType("string")).
			Return(nil, errors.New("embedding quota exceeded")).Once()
		mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				_, hasEmbedding := updates["embedding"]
				assert.False(t, hasEmbedding)
				assert.Equal(t, false, updates["is_generating"])
			}).Return(nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "register",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.UpdatedFields)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("正常系: 次元数が想定外の埋め込みは破棄する", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return(fullResponse, nil).Once()
		mockModel.On("Embed", ctx, "user-key", mock.AnythingOfType("string")).
			Return(make([]float32, 1536), nil).Once()
		mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				_, hasEmbedding := updates["embedding"]
				assert.False(t, hasEmbedding)
			}).Return(nil).Once()

		_, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "register",
		})
		require.NoError(t, err)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("異常系: 生成失敗時はis_generatingを必ず戻す", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return("", model.ErrUpstreamModel).Once()
		// リセットはキャンセル耐性のあるコンテキストで呼ばれる
		mockVocabRepo.On("SetGenerating", mock.Anything, mock.AnythingOfType("*gorm.DB"), vocabID, false).
			Return(nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "register",
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, model.ErrUpstreamModel)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("異常系: レスポンスが解析できない場合もフラグを戻す", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return("I cannot help with that.", nil).Once()
		mockVocabRepo.On("SetGenerating", mock.Anything, mock.AnythingOfType("*gorm.DB"), vocabID, false).
			Return(nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "register",
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, model.ErrUpstreamModel)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("異常系: 対象レコードが存在しない", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(nil, model.ErrNotFound).Once()
		mockVocabRepo.On("SetGenerating", mock.Anything, mock.AnythingOfType("*gorm.DB"), vocabID, false).
			Return(nil).Once()

		_, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "register",
		})
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockVocabRepo.AssertExpectations(t)
		mockModel.AssertNotCalled(t, "GenerateJSON", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_enrichmentService_Enrich_Edit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBEnrich()
	profileID := uuid.New()
	vocabID := uuid.New()

	vocab := &model.Vocabulary{
		VocabularyID: vocabID,
		ProfileID:    profileID,
		Term:         "run",
		Definition:   "走る",
		Status:       model.StatusInputted,
	}

	t.Run("正常系: 意味が変わったら埋め込みを作り直す", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return(`{"definition": "経営する"}`, nil).Once()
		// 新しい意味でテキストを組み直して埋め込む
		mockModel.On("Embed", ctx, "user-key", "run: 経営する").
			Return(make([]float32, model.EmbeddingDimensions), nil).Once()
		mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				assert.Equal(t, "経営する", updates["definition"])
				assert.NotNil(t, updates["embedding"])
				// 入力済みの語はステータスを触らない
				_, hasStatus := updates["status"]
				assert.False(t, hasStatus)
			}).Return(nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "edit", ChatContext: "意味を経営の文脈に直して",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"definition"}, result.UpdatedFields)
		mockVocabRepo.AssertExpectations(t)
		mockModel.AssertExpectations(t)
	})

	t.Run("正常系: 意味に関わらない修正では埋め込みを触らない", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return(`{"example": "She runs a small bakery. (彼女は小さなパン屋を経営している)"}`, nil).Once()
		mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				_, hasEmbedding := updates["embedding"]
				assert.False(t, hasEmbedding)
			}).Return(nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "edit", ChatContext: "例文を直して",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"example"}, result.UpdatedFields)
		// Embedは呼ばれない
		mockModel.AssertNotCalled(t, "Embed", mock.Anything, mock.Anything, mock.Anything)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("正常系: 意味が付かなくても未入力の語は入力済みに昇格する", func(t *testing.T) {
		uninput := &model.Vocabulary{
			VocabularyID: vocabID,
			ProfileID:    profileID,
			Term:         "run",
			Status:       model.StatusUninput,
		}
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("SetGenerating", ctx, mock.AnythingOfType("*gorm.DB"), vocabID, true).
			Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(uninput, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return(`{"example": "Run! (走れ！)"}`, nil).Once()
		mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				assert.Equal(t, model.StatusInputted, updates["status"])
			}).Return(nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "edit", ChatContext: "例文だけ付けて",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"example"}, result.UpdatedFields)
		mockVocabRepo.AssertExpectations(t)
	})
}

func Test_enrichmentService_Enrich_Predict(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBEnrich()
	profileID := uuid.New()
	vocabID := uuid.New()

	vocab := &model.Vocabulary{
		VocabularyID: vocabID,
		ProfileID:    profileID,
		Term:         "run",
		Definition:   "走る",
	}

	t.Run("正常系: 読み取り専用で対象フィールドを返す", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return(`{"targets": ["definition", "example"]}`, nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "predict", ChatContext: "意味を直して",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"definition", "example"}, result.Targets)

		// predictでは一切書き込まない
		mockVocabRepo.AssertNotCalled(t, "SetGenerating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockVocabRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("正常系: 空のtargetsも有効な応答", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), enrichTestConfig())

		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "user-key", mock.AnythingOfType("llm.Prompt")).
			Return(`{"targets": []}`, nil).Once()

		result, err := svc.Enrich(ctx, profileID, "user-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "predict",
		})
		require.NoError(t, err)
		assert.NotNil(t, result.Targets)
		assert.Empty(t, result.Targets)
	})
}

func Test_enrichmentService_Enrich_KeyFallback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBEnrich()
	profileID := uuid.New()
	vocabID := uuid.New()

	vocab := &model.Vocabulary{VocabularyID: vocabID, ProfileID: profileID, Term: "run", Definition: "走る"}

	t.Run("正常系: ヘッダーのキーがサーバー設定より優先される", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		cfg := enrichTestConfig()
		cfg.Gemini.SystemAPIKey = "system-key"
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), cfg)

		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "header-key", mock.AnythingOfType("llm.Prompt")).
			Return(`{"targets": []}`, nil).Once()

		_, err := svc.Enrich(ctx, profileID, "header-key", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "predict",
		})
		require.NoError(t, err)
		mockModel.AssertExpectations(t)
	})

	t.Run("正常系: ヘッダーが空ならサーバー設定のキーを使う", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		mockModel := new(llmmocks.TextModel)
		cfg := enrichTestConfig()
		cfg.Gemini.SystemAPIKey = "system-key"
		svc := NewEnrichmentService(db, mockVocabRepo, mockModel, events.NewBus(), cfg)

		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(vocab, nil).Once()
		mockModel.On("GenerateJSON", ctx, "system-key", mock.AnythingOfType("llm.Prompt")).
			Return(`{"targets": []}`, nil).Once()

		_, err := svc.Enrich(ctx, profileID, "", &model.EnrichmentRequest{
			RecordID: vocabID.String(), Mode: "predict",
		})
		require.NoError(t, err)
		mockModel.AssertExpectations(t)
	})
}

// 補完完了の通知が遅延なく届くことを確認する回帰テスト
func Test_enrichmentService_NotificationDelivery(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBEnrich()
	profileID := uuid.New()
	vocabID := uuid.New()

	mockVocabRepo := new(mocks.VocabularyRepository)
	mockModel := new(llmmocks.TextModel)
	bus := events.NewBus()
	svc := NewEnrichmentService(db, mockVocabRepo, mockModel, bus, enrichTestConfig())

	// 自ユーザーの通知だけを購読
	ch, cancel := bus.Subscribe("vocabularies", func(c events.Change) bool {
		return c.UserID == profileID
	})
	defer cancel()

	mockVocabRepo.On("SetGenerating", mock.Anything, mock.AnythingOfType("*gorm.DB"), vocabID, mock.AnythingOfType("bool")).
		Return(nil)
	mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
		Return(nil, model.ErrNotFound).Once()

	_, err := svc.Enrich(ctx, profileID, "key", &model.EnrichmentRequest{
		RecordID: vocabID.String(), Mode: "register",
	})
	require.ErrorIs(t, err, model.ErrNotFound)

	// 失敗経路でも開始(true)とリセット(false)の両方が通知される
	var seen []bool
	timeout := time.After(time.Second)
	for len(seen) < 2 {
		select {
		case c := <-ch:
			seen = append(seen, c.IsGenerating)
		case <-timeout:
			t.Fatalf("expected 2 notifications, got %d", len(seen))
		}
	}
	assert.Equal(t, []bool{true, false}, seen)
}
