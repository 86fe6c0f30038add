// internal/llm/parse.go
package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"go_5_vocab_ai/internal/model"
)

// FieldPatch はモデルが返した部分更新です。nilのフィールドは「変更なし」を意味します
type FieldPatch struct {
	Term         *string  `json:"term"`
	Definition   *string  `json:"definition"`
	PartOfSpeech *string  `json:"part_of_speech"`
	IPA          *string  `json:"ipa"`
	Example      *string  `json:"example"`
	Etymology    *string  `json:"etymology"`
	Synonyms     []string `json:"synonyms"`
	Collocations []string `json:"collocations"`
	SourceMemo   *string  `json:"source_memo"`
}

// FieldNames は値が存在するフィールドの名前一覧を返します
func (p *FieldPatch) FieldNames() []string {
	names := make([]string, 0, 8)
	if p.Term != nil {
		names = append(names, "term")
	}
	if p.Definition != nil {
		names = append(names, "definition")
	}
	if p.PartOfSpeech != nil {
		names = append(names, "part_of_speech")
	}
	if p.IPA != nil {
		names = append(names, "ipa")
	}
	if p.Example != nil {
		names = append(names, "example")
	}
	if p.Etymology != nil {
		names = append(names, "etymology")
	}
	if p.Synonyms != nil {
		names = append(names, "synonyms")
	}
	if p.Collocations != nil {
		names = append(names, "collocations")
	}
	if p.SourceMemo != nil {
		names = append(names, "source_memo")
	}
	return names
}

// Updates はGORMの列更新に渡せる map を作ります
func (p *FieldPatch) Updates() map[string]any {
	updates := make(map[string]any)
	if p.Term != nil {
		updates["term"] = *p.Term
	}
	if p.Definition != nil {
		updates["definition"] = *p.Definition
	}
	if p.PartOfSpeech != nil {
		updates["part_of_speech"] = *p.PartOfSpeech
	}
	if p.IPA != nil {
		updates["ipa"] = *p.IPA
	}
	if p.Example != nil {
		updates["example"] = *p.Example
	}
	if p.Etymology != nil {
		updates["etymology"] = *p.Etymology
	}
	if p.Synonyms != nil {
		updates["synonyms"] = p.Synonyms
	}
	if p.Collocations != nil {
		updates["collocations"] = p.Collocations
	}
	if p.SourceMemo != nil {
		updates["source_memo"] = *p.SourceMemo
	}
	return updates
}

// StripCodeFence はモデルがJSONをマークダウンのコードブロックで包んで返した
// 場合にフェンスを剥がします。生のJSONはそのまま返す
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ParseFieldPatch は register / edit モードのレスポンスを解析します
func ParseFieldPatch(raw string) (*FieldPatch, error) {
	var patch FieldPatch
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &patch); err != nil {
		return nil, model.NewAppError(
			"UPSTREAM_MODEL_ERROR",
			"AIモデルのレスポンスを解析できませんでした。",
			"",
			fmt.Errorf("parse field patch: %w: %w", model.ErrUpstreamModel, err),
		)
	}
	return &patch, nil
}

type targetsResponse struct {
	Targets []string `json:"targets"`
}

// ParseTargets は predict モードのレスポンスを解析し、既知のフィールド名
// 以外を取り除いて返します。空のリストは正当な結果です
func ParseTargets(raw string) ([]string, error) {
	var resp targetsResponse
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &resp); err != nil {
		return nil, model.NewAppError(
			"UPSTREAM_MODEL_ERROR",
			"AIモデルのレスポンスを解析できませんでした。",
			"",
			fmt.Errorf("parse targets: %w: %w", model.ErrUpstreamModel, err),
		)
	}

	valid := make(map[string]struct{}, len(EnrichableFields))
	for _, f := range EnrichableFields {
		valid[f] = struct{}{}
	}

	targets := make([]string, 0, len(resp.Targets))
	for _, t := range resp.Targets {
		if _, ok := valid[t]; ok {
			targets = append(targets, t)
		}
	}
	return targets, nil
}
