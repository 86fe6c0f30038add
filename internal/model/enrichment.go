// internal/model/enrichment.go
package model

import "github.com/google/uuid"

// EnrichmentRequest はAI補完呼び出しのリクエストボディ。
// 呼び出し元のAPIキーはボディには含めず、X-Model-Key ヘッダーで1回の呼び出し限りで渡される
type EnrichmentRequest struct {
	RecordID    string `json:"record_id" validate:"required,uuid"`
	ChatContext string `json:"chat_context" validate:"omitempty,max=4000"`
	Mode        string `json:"mode" validate:"required,oneof=register predict edit"`
}

// EnrichmentResult はオーケストレータが返す処理結果。
// register/edit では UpdatedFields、predict では Targets のみが意味を持つ
type EnrichmentResult struct {
	UpdatedFields []string
	Targets       []string
}

// EnrichmentUpdateResponse は register/edit 成功時のレスポンスDTO
type EnrichmentUpdateResponse struct {
	Success       bool     `json:"success"`
	UpdatedFields []string `json:"updated_fields"`
}

// EnrichmentPredictResponse は predict 成功時のレスポンスDTO。
// targets が空でも有効（「変更対象なし」の意味）なので omitempty は付けない
type EnrichmentPredictResponse struct {
	Success bool     `json:"success"`
	Targets []string `json:"targets"`
}

// QuizOption はクイズの選択肢
type QuizOption struct {
	VocabularyID uuid.UUID `json:"vocabulary_id"`
	Term         string    `json:"term"`
	IsCorrect    bool      `json:"is_correct"`
}

// Quiz は意味→単語の4択クイズ
type Quiz struct {
	Question string       `json:"question"` // 出題する意味
	Answer   string       `json:"answer"`   // 正解の単語
	Options  []QuizOption `json:"options"`
}

// クイズ生成リクエストDTO
type PostQuizRequest struct {
	TargetID string `json:"target_id" validate:"required,uuid"`
}
