// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// LearningStatus は単語の学習到達度を表します
type LearningStatus string

const (
	StatusUninput   LearningStatus = "uninput"   // 未入力（AI補完前）
	StatusInputted  LearningStatus = "inputted"  // 入力済み
	StatusInstant   LearningStatus = "instant"   // 即答できる
	StatusSpeakable LearningStatus = "speakable" // 使える
)

// EmbeddingDimensions は埋め込みベクトルの次元数です。
// text-embedding-004 系のモデルに合わせた 768 次元で固定。
const EmbeddingDimensions = 768

// Vocabulary は単語とその学習データを表します
type Vocabulary struct {
	VocabularyID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"vocabulary_id"`
	ProfileID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`

	Term         string   `gorm:"not null" json:"term"` // 単語
	Definition   string   `json:"definition"`           // 意味
	PartOfSpeech string   `json:"part_of_speech"`       // 品詞
	IPA          string   `gorm:"column:ipa" json:"ipa"`
	Example      string   `json:"example"`   // 例文
	Etymology    string   `json:"etymology"` // 語源
	Synonyms     []string `gorm:"serializer:json;type:jsonb" json:"synonyms"`
	Collocations []string `gorm:"serializer:json;type:jsonb" json:"collocations"`
	SourceMemo   string   `json:"source_memo"` // 出会った文脈のメモ

	// 類似検索用の埋め込みベクトル (pgvector)
	Embedding *pgvector.Vector `gorm:"type:vector(768)" json:"-"`

	// AI生成が進行中かどうか。生成呼び出しの終了時（成功・失敗問わず）に必ず false に戻る
	IsGenerating bool `gorm:"not null;default:false" json:"is_generating"`

	Status         LearningStatus `gorm:"type:varchar(20);not null;default:uninput" json:"status"`
	CorrectCount   int            `gorm:"not null;default:0" json:"correct_count"`
	IncorrectCount int            `gorm:"not null;default:0" json:"incorrect_count"`
	LastReviewedAt *time.Time     `json:"last_reviewed_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}

// 単語作成リクエストDTO
type PostVocabularyRequest struct {
	Term         string     `json:"term" validate:"required,min=1,max=200"`
	Definition   string     `json:"definition" validate:"omitempty,max=2000"`
	PartOfSpeech string     `json:"part_of_speech" validate:"omitempty,max=50"`
	IPA          string     `json:"ipa" validate:"omitempty,max=100"`
	Example      string     `json:"example" validate:"omitempty,max=2000"`
	Etymology    string     `json:"etymology" validate:"omitempty,max=2000"`
	Synonyms     []string   `json:"synonyms" validate:"omitempty,dive,max=200"`
	Collocations []string   `json:"collocations" validate:"omitempty,dive,max=200"`
	SourceMemo   string     `json:"source_memo" validate:"omitempty,max=2000"`
	CategoryID   *uuid.UUID `json:"category_id"`
}

// 単語更新（部分）リクエストDTO。nil のフィールドは変更しない
type PatchVocabularyRequest struct {
	Term         *string    `json:"term,omitempty" validate:"omitempty,min=1,max=200"`
	Definition   *string    `json:"definition,omitempty" validate:"omitempty,max=2000"`
	PartOfSpeech *string    `json:"part_of_speech,omitempty" validate:"omitempty,max=50"`
	IPA          *string    `json:"ipa,omitempty" validate:"omitempty,max=100"`
	Example      *string    `json:"example,omitempty" validate:"omitempty,max=2000"`
	Etymology    *string    `json:"etymology,omitempty" validate:"omitempty,max=2000"`
	Synonyms     *[]string  `json:"synonyms,omitempty" validate:"omitempty,dive,max=200"`
	Collocations *[]string  `json:"collocations,omitempty" validate:"omitempty,dive,max=200"`
	SourceMemo   *string    `json:"source_memo,omitempty" validate:"omitempty,max=2000"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=uninput inputted instant speakable"`
}

// SubmitReviewRequest は復習結果送信リクエストのDTO
type SubmitReviewRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
}
