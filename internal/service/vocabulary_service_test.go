// internal/service/vocabulary_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_vocab_ai/internal/events"
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

func setupTestDBVocab() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_vocabularyService_CreateVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVocab()
	profileID := uuid.New()
	testTerm := "serendipity"

	tests := []struct {
		name       string
		req        *model.PostVocabularyRequest
		setupMock  func(vocabRepo *mocks.VocabularyRepository)
		wantErr    error
		wantStatus model.LearningStatus
	}{
		{
			name: "正常系: 意味ありの単語は入力済みステータスで作成",
			req: &model.PostVocabularyRequest{
				Term:       testTerm,
				Definition: "思いがけない幸運な発見",
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository) {
				vocabRepo.On("CheckTermExists", ctx, mock.AnythingOfType("*gorm.DB"), profileID, testTerm, (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				vocabRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vocabulary")).
					Run(func(args mock.Arguments) {
						vocab := args.Get(2).(*model.Vocabulary)
						assert.Equal(t, profileID, vocab.ProfileID)
						assert.Equal(t, testTerm, vocab.Term)
						assert.NotEqual(t, uuid.Nil, vocab.VocabularyID)
						assert.Equal(t, model.StatusInputted, vocab.Status)
					}).Return(nil).Once()
			},
			wantStatus: model.StatusInputted,
		},
		{
			name: "正常系: 意味なしの単語は未入力ステータスで作成",
			req: &model.PostVocabularyRequest{
				Term:       testTerm,
				SourceMemo: "ポッドキャストで聞いた",
			},
			setupMock: func(vocabRepo *mocks.VocabularyRepository) {
				vocabRepo.On("CheckTermExists", ctx, mock.AnythingOfType("*gorm.DB"), profileID, testTerm, (*uuid.UUID)(nil)).
					Return(false, nil).Once()
				vocabRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Vocabulary")).
					Run(func(args mock.Arguments) {
						vocab := args.Get(2).(*model.Vocabulary)
						assert.Equal(t, model.StatusUninput, vocab.Status)
						assert.Equal(t, "ポッドキャストで聞いた", vocab.SourceMemo)
					}).Return(nil).Once()
			},
			wantStatus: model.StatusUninput,
		},
		{
			name: "異常系: Termが空",
			req:  &model.PostVocabularyRequest{Definition: "意味だけ"},
			setupMock: func(vocabRepo *mocks.VocabularyRepository) {
				// リポジトリは呼ばれない
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: Termが重複",
			req:  &model.PostVocabularyRequest{Term: testTerm},
			setupMock: func(vocabRepo *mocks.VocabularyRepository) {
				vocabRepo.On("CheckTermExists", ctx, mock.AnythingOfType("*gorm.DB"), profileID, testTerm, (*uuid.UUID)(nil)).
					Return(true, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 重複チェックでDBエラー",
			req:  &model.PostVocabularyRequest{Term: testTerm},
			setupMock: func(vocabRepo *mocks.VocabularyRepository) {
				vocabRepo.On("CheckTermExists", ctx, mock.AnythingOfType("*gorm.DB"), profileID, testTerm, (*uuid.UUID)(nil)).
					Return(false, errors.New("db connection lost")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockVocabRepo := new(mocks.VocabularyRepository)
			tc.setupMock(mockVocabRepo)
			svc := NewVocabularyService(db, mockVocabRepo, events.NewBus())

			vocab, err := svc.CreateVocabulary(ctx, profileID, tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, vocab)
			} else {
				require.NoError(t, err)
				require.NotNil(t, vocab)
				assert.Equal(t, tc.wantStatus, vocab.Status)
			}
			mockVocabRepo.AssertExpectations(t)
		})
	}
}

func Test_vocabularyService_UpdateVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVocab()
	profileID := uuid.New()
	vocabID := uuid.New()

	strPtr := func(s string) *string { return &s }

	t.Run("正常系: 単語を変えると埋め込みが無効化される", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		svc := NewVocabularyService(db, mockVocabRepo, events.NewBus())

		current := &model.Vocabulary{VocabularyID: vocabID, ProfileID: profileID, Term: "old", Status: model.StatusInputted}
		updated := &model.Vocabulary{VocabularyID: vocabID, ProfileID: profileID, Term: "new", Status: model.StatusInputted}

		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(current, nil).Once()
		mockVocabRepo.On("CheckTermExists", ctx, mock.AnythingOfType("*gorm.DB"), profileID, "new", &vocabID).
			Return(false, nil).Once()
		mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				assert.Equal(t, "new", updates["term"])
				// 埋め込み列はnilで上書きされる
				embedding, hasEmbedding := updates["embedding"]
				assert.True(t, hasEmbedding)
				assert.Nil(t, embedding)
			}).Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(updated, nil).Once()

		got, err := svc.UpdateVocabulary(ctx, profileID, vocabID, &model.PatchVocabularyRequest{Term: strPtr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", got.Term)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("正常系: 未入力の語に意味を入れるとステータスが昇格", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		svc := NewVocabularyService(db, mockVocabRepo, events.NewBus())

		current := &model.Vocabulary{VocabularyID: vocabID, ProfileID: profileID, Term: "term", Status: model.StatusUninput}
		updated := &model.Vocabulary{VocabularyID: vocabID, ProfileID: profileID, Term: "term", Definition: "意味", Status: model.StatusInputted}

		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(current, nil).Once()
		mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(4).(map[string]interface{})
				assert.Equal(t, "意味", updates["definition"])
				assert.Equal(t, model.StatusInputted, updates["status"])
			}).Return(nil).Once()
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(updated, nil).Once()

		got, err := svc.UpdateVocabulary(ctx, profileID, vocabID, &model.PatchVocabularyRequest{Definition: strPtr("意味")})
		require.NoError(t, err)
		assert.Equal(t, model.StatusInputted, got.Status)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("異常系: 変更後のTermが既存の単語と重複", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		svc := NewVocabularyService(db, mockVocabRepo, events.NewBus())

		current := &model.Vocabulary{VocabularyID: vocabID, ProfileID: profileID, Term: "old"}
		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(current, nil).Once()
		mockVocabRepo.On("CheckTermExists", ctx, mock.AnythingOfType("*gorm.DB"), profileID, "existing", &vocabID).
			Return(true, nil).Once()

		got, err := svc.UpdateVocabulary(ctx, profileID, vocabID, &model.PatchVocabularyRequest{Term: strPtr("existing")})
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, got)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("異常系: 対象が存在しない", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		svc := NewVocabularyService(db, mockVocabRepo, events.NewBus())

		mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(nil, model.ErrNotFound).Once()

		got, err := svc.UpdateVocabulary(ctx, profileID, vocabID, &model.PatchVocabularyRequest{Definition: strPtr("x")})
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, got)
		mockVocabRepo.AssertExpectations(t)
	})
}

func Test_vocabularyService_DeleteVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVocab()
	profileID := uuid.New()
	vocabID := uuid.New()

	t.Run("正常系: 削除すると通知が飛ぶ", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		bus := events.NewBus()
		svc := NewVocabularyService(db, mockVocabRepo, bus)

		ch, cancel := bus.Subscribe("vocabularies", nil)
		defer cancel()

		mockVocabRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(nil).Once()

		err := svc.DeleteVocabulary(ctx, profileID, vocabID)
		require.NoError(t, err)

		change := <-ch
		assert.Equal(t, events.ActionDelete, change.Action)
		assert.Equal(t, vocabID, change.RecordID)
		mockVocabRepo.AssertExpectations(t)
	})

	t.Run("異常系: 対象が存在しない場合は通知しない", func(t *testing.T) {
		mockVocabRepo := new(mocks.VocabularyRepository)
		bus := events.NewBus()
		svc := NewVocabularyService(db, mockVocabRepo, bus)

		ch, cancel := bus.Subscribe("vocabularies", nil)
		defer cancel()

		mockVocabRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
			Return(model.ErrNotFound).Once()

		err := svc.DeleteVocabulary(ctx, profileID, vocabID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		select {
		case c := <-ch:
			t.Fatalf("no notification expected on failed delete, got %+v", c)
		default:
		}
		mockVocabRepo.AssertExpectations(t)
	})
}

func Test_vocabularyService_SubmitReview(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVocab()
	profileID := uuid.New()
	vocabID := uuid.New()

	vocab := &model.Vocabulary{VocabularyID: vocabID, ProfileID: profileID, Term: "term", Definition: "意味"}

	tests := []struct {
		name      string
		isCorrect bool
		wantKey   string
	}{
		{name: "正常系: 正解は正答数を加算", isCorrect: true, wantKey: "correct_count"},
		{name: "正常系: 不正解は誤答数を加算", isCorrect: false, wantKey: "incorrect_count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockVocabRepo := new(mocks.VocabularyRepository)
			svc := NewVocabularyService(db, mockVocabRepo, events.NewBus())

			mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
				Return(vocab, nil).Once()
			mockVocabRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID, mock.AnythingOfType("map[string]interface {}")).
				Run(func(args mock.Arguments) {
					updates := args.Get(4).(map[string]interface{})
					// カウンタの加算はSQL式で行う
					_, hasCounter := updates[tc.wantKey]
					assert.True(t, hasCounter)
					assert.NotNil(t, updates["last_reviewed_at"])
				}).Return(nil).Once()
			mockVocabRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), profileID, vocabID).
				Return(vocab, nil).Once()

			got, err := svc.SubmitReview(ctx, profileID, vocabID, tc.isCorrect)
			require.NoError(t, err)
			assert.NotNil(t, got)
			mockVocabRepo.AssertExpectations(t)
		})
	}
}
