// internal/events/bus.go
package events

import (
	"sync"

	"github.com/google/uuid"
)

// Action はレコードに起きた変更の種類です
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Change はテーブル単位の変更通知です。行全体ではなく、購読側の判断に
// 必要な最小限のフィールドだけを運びます
type Change struct {
	Table        string    `json:"table"`
	Action       Action    `json:"action"`
	RecordID     uuid.UUID `json:"record_id"`
	UserID       uuid.UUID `json:"user_id"`
	IsGenerating bool      `json:"is_generating"`
}

// Predicate は購読者が受け取る変更を絞り込みます
type Predicate func(Change) bool

type subscriber struct {
	ch   chan Change
	pred Predicate
}

// Bus はプロセス内のpub/subです。Publishは購読者のチャネルが詰まっていても
// ブロックしません。通知は「最新状態を読み直すきっかけ」であり、取りこぼしても
// 次のポーリングや再購読で回復できる前提です
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]*subscriber // table -> id -> subscriber
}

const subscriberBuffer = 16

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]*subscriber)}
}

// Subscribe はtableの変更ストリームを返します。predがnilなら全件。
// 返されたcancelを呼ぶとチャネルはクローズされます
func (b *Bus) Subscribe(table string, pred Predicate) (<-chan Change, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[table] == nil {
		b.subs[table] = make(map[int]*subscriber)
	}
	id := b.nextID
	b.nextID++

	sub := &subscriber{ch: make(chan Change, subscriberBuffer), pred: pred}
	b.subs[table][id] = sub

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[table], id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish は変更を全購読者に配送します。満杯のチャネルはスキップする
func (b *Bus) Publish(change Change) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[change.Table] {
		if sub.pred != nil && !sub.pred(change) {
			continue
		}
		select {
		case sub.ch <- change:
		default:
			// 遅い購読者のために配信全体を止めない
		}
	}
}
