// internal/client/tracker.go
package client

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"go_5_vocab_ai/internal/events"
	"go_5_vocab_ai/internal/model"
)

// Enricher はAI補完APIの呼び出し口です
type Enricher interface {
	Enrich(ctx context.Context, req *model.EnrichmentRequest) (*model.EnrichmentResult, error)
}

// GeneratingTracker はレコードごとに「どのフィールドがAI生成中か」を保持します。
// UI側はこの情報でフィールド単位のスピナーを出し分けます。
// predictが対象を教えてくれない場合はレコード全体を生成中として扱う
type GeneratingTracker struct {
	mu          sync.RWMutex
	fields      map[uuid.UUID]map[string]struct{}
	recordLevel map[uuid.UUID]bool

	enricher Enricher
	logger   *slog.Logger
	cancel   func()
}

func NewGeneratingTracker(enricher Enricher, logger *slog.Logger) *GeneratingTracker {
	return &GeneratingTracker{
		fields:      make(map[uuid.UUID]map[string]struct{}),
		recordLevel: make(map[uuid.UUID]bool),
		enricher:    enricher,
		logger:      logger,
	}
}

// Watch は変更通知の購読を開始します。is_generatingが落ちた通知を受けたら
// 対象レコードの生成中状態を無条件にクリアします。成功・失敗どちらの経路でも
// サーバー側はフラグを戻すので、クリア判断はこの1点に集約できる
func (t *GeneratingTracker) Watch(bus *events.Bus, userID uuid.UUID) {
	ch, cancel := bus.Subscribe("vocabularies", func(c events.Change) bool {
		return c.UserID == userID
	})
	t.cancel = cancel

	go func() {
		for change := range ch {
			if change.Action == events.ActionDelete || !change.IsGenerating {
				t.clear(change.RecordID)
			}
		}
	}()
}

// Stop は購読を解除します
func (t *GeneratingTracker) Stop() {
	if t.cancel != nil {
		t.cancel()
	}
}

// SmartEdit は編集指示の二段階実行です。まずpredictで対象フィールドを得て
// スピナー表示を絞り、続けてeditを実行します。predictの失敗は表示の劣化
// (レコード全体スピナー)に留め、edit本体は必ず実行します
func (t *GeneratingTracker) SmartEdit(ctx context.Context, recordID uuid.UUID, chatContext string) (*model.EnrichmentResult, error) {
	predictReq := &model.EnrichmentRequest{
		RecordID:    recordID.String(),
		ChatContext: chatContext,
		Mode:        "predict",
	}
	if res, err := t.enricher.Enrich(ctx, predictReq); err != nil {
		t.logger.WarnContext(ctx, "対象フィールドの予測に失敗。レコード全体を生成中として表示します",
			slog.String("record_id", recordID.String()), slog.Any("error", err))
		t.markRecord(recordID)
	} else {
		t.markFields(recordID, res.Targets)
	}

	editReq := &model.EnrichmentRequest{
		RecordID:    recordID.String(),
		ChatContext: chatContext,
		Mode:        "edit",
	}
	result, err := t.enricher.Enrich(ctx, editReq)
	if err != nil {
		// サーバー到達済みならフラグは通知で戻る。未到達の失敗はここで戻す
		t.clear(recordID)
		return nil, err
	}
	return result, nil
}

// Register は新規登録時の全フィールド補完です
func (t *GeneratingTracker) Register(ctx context.Context, recordID uuid.UUID, chatContext string) (*model.EnrichmentResult, error) {
	t.markRecord(recordID)
	req := &model.EnrichmentRequest{
		RecordID:    recordID.String(),
		ChatContext: chatContext,
		Mode:        "register",
	}
	result, err := t.enricher.Enrich(ctx, req)
	if err != nil {
		t.clear(recordID)
		return nil, err
	}
	return result, nil
}

// IsFieldGenerating はUIのフィールド単位表示の判定です
func (t *GeneratingTracker) IsFieldGenerating(recordID uuid.UUID, field string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.recordLevel[recordID] {
		return true
	}
	_, ok := t.fields[recordID][field]
	return ok
}

// IsRecordGenerating はレコードに生成中フィールドが1つでもあるかを返します
func (t *GeneratingTracker) IsRecordGenerating(recordID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.recordLevel[recordID] || len(t.fields[recordID]) > 0
}

func (t *GeneratingTracker) markFields(recordID uuid.UUID, targets []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(targets) == 0 {
		// 対象不明は全体表示に落とす
		t.recordLevel[recordID] = true
		return
	}
	set := make(map[string]struct{}, len(targets))
	for _, f := range targets {
		set[f] = struct{}{}
	}
	t.fields[recordID] = set
}

func (t *GeneratingTracker) markRecord(recordID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recordLevel[recordID] = true
}

func (t *GeneratingTracker) clear(recordID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.fields, recordID)
	delete(t.recordLevel, recordID)
}
