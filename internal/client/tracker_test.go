// internal/client/tracker_test.go
package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_5_vocab_ai/internal/events"
	"go_5_vocab_ai/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEnricher struct {
	mock.Mock
}

func (m *mockEnricher) Enrich(ctx context.Context, req *model.EnrichmentRequest) (*model.EnrichmentResult, error) {
	args := m.Called(ctx, req)
	var result *model.EnrichmentResult
	if args.Get(0) != nil {
		result = args.Get(0).(*model.EnrichmentResult)
	}
	return result, args.Error(1)
}

func newTestTracker(enricher Enricher) *GeneratingTracker {
	return NewGeneratingTracker(enricher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func matchMode(mode string) interface{} {
	return mock.MatchedBy(func(req *model.EnrichmentRequest) bool {
		return req.Mode == mode
	})
}

func TestGeneratingTracker_SmartEdit(t *testing.T) {
	ctx := context.Background()
	recordID := uuid.New()

	t.Run("正常系: predictが対象を返したらフィールド単位で生成中になる", func(t *testing.T) {
		enricher := new(mockEnricher)
		tracker := newTestTracker(enricher)

		enricher.On("Enrich", ctx, matchMode("predict")).
			Return(&model.EnrichmentResult{Targets: []string{"definition", "example"}}, nil).Once()
		enricher.On("Enrich", ctx, matchMode("edit")).
			Run(func(args mock.Arguments) {
				// edit実行中は対象フィールドだけが生成中扱い
				assert.True(t, tracker.IsFieldGenerating(recordID, "definition"))
				assert.True(t, tracker.IsFieldGenerating(recordID, "example"))
				assert.False(t, tracker.IsFieldGenerating(recordID, "term"))
			}).
			Return(&model.EnrichmentResult{UpdatedFields: []string{"definition", "example"}}, nil).Once()

		result, err := tracker.SmartEdit(ctx, recordID, "意味を直して")
		require.NoError(t, err)
		assert.Equal(t, []string{"definition", "example"}, result.UpdatedFields)
		enricher.AssertExpectations(t)
	})

	t.Run("正常系: predictが失敗してもeditは必ず実行される", func(t *testing.T) {
		enricher := new(mockEnricher)
		tracker := newTestTracker(enricher)

		enricher.On("Enrich", ctx, matchMode("predict")).
			Return(nil, errors.New("model unavailable")).Once()
		enricher.On("Enrich", ctx, matchMode("edit")).
			Run(func(args mock.Arguments) {
				// 対象不明なのでレコード全体が生成中扱いに落ちる
				assert.True(t, tracker.IsRecordGenerating(recordID))
				assert.True(t, tracker.IsFieldGenerating(recordID, "term"))
			}).
			Return(&model.EnrichmentResult{UpdatedFields: []string{"definition"}}, nil).Once()

		result, err := tracker.SmartEdit(ctx, recordID, "意味を直して")
		require.NoError(t, err)
		assert.NotNil(t, result)
		enricher.AssertExpectations(t)
	})

	t.Run("正常系: predictの対象が空でもレコード全体表示に落ちる", func(t *testing.T) {
		enricher := new(mockEnricher)
		tracker := newTestTracker(enricher)

		enricher.On("Enrich", ctx, matchMode("predict")).
			Return(&model.EnrichmentResult{Targets: []string{}}, nil).Once()
		enricher.On("Enrich", ctx, matchMode("edit")).
			Run(func(args mock.Arguments) {
				assert.True(t, tracker.IsRecordGenerating(recordID))
			}).
			Return(&model.EnrichmentResult{}, nil).Once()

		_, err := tracker.SmartEdit(ctx, recordID, "")
		require.NoError(t, err)
		enricher.AssertExpectations(t)
	})

	t.Run("異常系: editが失敗したら生成中状態はクリアされる", func(t *testing.T) {
		enricher := new(mockEnricher)
		tracker := newTestTracker(enricher)

		enricher.On("Enrich", ctx, matchMode("predict")).
			Return(&model.EnrichmentResult{Targets: []string{"definition"}}, nil).Once()
		enricher.On("Enrich", ctx, matchMode("edit")).
			Return(nil, errors.New("request failed")).Once()

		result, err := tracker.SmartEdit(ctx, recordID, "指示")
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.False(t, tracker.IsRecordGenerating(recordID))
		enricher.AssertExpectations(t)
	})
}

func TestGeneratingTracker_Register(t *testing.T) {
	ctx := context.Background()
	recordID := uuid.New()

	t.Run("正常系: 実行中はレコード全体が生成中", func(t *testing.T) {
		enricher := new(mockEnricher)
		tracker := newTestTracker(enricher)

		enricher.On("Enrich", ctx, matchMode("register")).
			Run(func(args mock.Arguments) {
				assert.True(t, tracker.IsRecordGenerating(recordID))
			}).
			Return(&model.EnrichmentResult{UpdatedFields: []string{"definition", "ipa"}}, nil).Once()

		result, err := tracker.Register(ctx, recordID, "チャットで出てきた単語")
		require.NoError(t, err)
		assert.Len(t, result.UpdatedFields, 2)
		enricher.AssertExpectations(t)
	})

	t.Run("異常系: 失敗時は生成中状態を戻す", func(t *testing.T) {
		enricher := new(mockEnricher)
		tracker := newTestTracker(enricher)

		enricher.On("Enrich", ctx, matchMode("register")).
			Return(nil, errors.New("network error")).Once()

		_, err := tracker.Register(ctx, recordID, "")
		assert.Error(t, err)
		assert.False(t, tracker.IsRecordGenerating(recordID))
		enricher.AssertExpectations(t)
	})
}

func TestGeneratingTracker_Watch(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()

	enricher := new(mockEnricher)
	tracker := newTestTracker(enricher)
	bus := events.NewBus()

	tracker.Watch(bus, userID)
	defer tracker.Stop()

	tracker.markRecord(recordID)
	require.True(t, tracker.IsRecordGenerating(recordID))

	// 他ユーザーの通知では変化しない
	bus.Publish(events.Change{
		Table: "vocabularies", Action: events.ActionUpdate,
		RecordID: recordID, UserID: uuid.New(), IsGenerating: false,
	})
	// 自ユーザーのis_generating=falseでクリアされる
	bus.Publish(events.Change{
		Table: "vocabularies", Action: events.ActionUpdate,
		RecordID: recordID, UserID: userID, IsGenerating: false,
	})

	assert.Eventually(t, func() bool {
		return !tracker.IsRecordGenerating(recordID)
	}, time.Second, 10*time.Millisecond)
}

func TestGeneratingTracker_WatchClearsOnDelete(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()

	tracker := newTestTracker(new(mockEnricher))
	bus := events.NewBus()
	tracker.Watch(bus, userID)
	defer tracker.Stop()

	tracker.markFields(recordID, []string{"definition"})
	require.True(t, tracker.IsFieldGenerating(recordID, "definition"))

	bus.Publish(events.Change{
		Table: "vocabularies", Action: events.ActionDelete,
		RecordID: recordID, UserID: userID, IsGenerating: true,
	})

	assert.Eventually(t, func() bool {
		return !tracker.IsFieldGenerating(recordID, "definition")
	}, time.Second, 10*time.Millisecond)
}
