// internal/llm/prompt.go
package llm

import (
	"fmt"
	"strings"

	"go_5_vocab_ai/internal/model"
)

// Mode はAI補完の動作モードを表すタグ付きバリアントです
type Mode string

const (
	ModeRegister Mode = "register" // 空欄をすべて埋めて完全なレコードを作る
	ModePredict  Mode = "predict"  // どのフィールドが変わるかの予測のみ（書き込みなし）
	ModeEdit     Mode = "edit"     // 指示に関係するフィールドだけを修正する
)

// ParseMode は文字列をModeに変換します。不明な値はエラー
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeRegister, ModePredict, ModeEdit:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown enrichment mode: %q", s)
	}
}

// ResponseShape はモデルに期待するレスポンスの形です
type ResponseShape int

const (
	ShapeFullRecord ResponseShape = iota // 全フィールドを持つJSONオブジェクト
	ShapePartial                         // 変更フィールドのみのJSONオブジェクト
	ShapeTargets                         // {"targets": [...]} 形式
)

// Prompt は1回の生成呼び出しの入力です。プロンプト本文は制御フローに
// 混ぜ込まず、モードごとのデータとして保持する
type Prompt struct {
	SystemInstructions string
	UserContext        string
	Shape              ResponseShape
}

// EnrichableFields は predict モードで有効な修正対象フィールド名の一覧です
var EnrichableFields = []string{
	"term", "definition", "part_of_speech", "ipa",
	"example", "etymology", "synonyms", "collocations", "source_memo",
}

const registerSystemPrompt = `
あなたは、文脈の中で言葉を学ぶのを手助けする、優秀な言語学者および語彙コーチです。
ユーザーの入力から、学習効果を高めるための詳細な構造化データを抽出・生成してください。

ルール:
1. ユーザーの「チャット文脈 (Chat Context)」と「手動入力 (Manual Input)」を分析すること。
2. 対象となる「単語 (Term)」が指定されていない場合は文脈から特定すること。
3. 文脈に即した最適な「意味 (Definition)」と「品詞 (Part of Speech)」を特定すること。
4. 正しい発音記号 (IPA) を付けること。
5. 記憶の定着を助ける「語源 (Etymology)」「類義語 (Synonyms)」「コロケーション (Collocations)」を生成すること。
   - 語源は単語のイメージが湧く簡潔な解説にする。
   - 類義語・コロケーションは英語の後に必ず日本語訳を併記する。
6. 「例文 (Example)」を抽出または生成し、必ず日本語訳を併記すること。
   文脈自体が例文として使える場合はそれを使う。
7. 解説（意味、語源など）は日本語で、単語・例文・コロケーションはターゲット言語で出力すること。
8. 出力は以下のJSON形式のみ。マークダウンは不要。

{
    "term": "...",
    "definition": "...",
    "part_of_speech": "...",
    "ipa": "...",
    "example": "...",
    "etymology": "...",
    "synonyms": ["...", "..."],
    "collocations": ["...", "..."]
}
`

const editSystemPrompt = `
あなたは優秀な語彙編集アシスタントです。
ユーザーの指示に基づいて、既存の単語データの必要なフィールドのみを修正してください。

ルール:
1. ユーザーの指示 ("User Context & Instructions") を分析し、どのフィールドを変更すべきか判断すること。
2. 変更が必要なフィールドのみを含むJSONオブジェクトを返すこと。
3. 手動入力 ("Manual Inputs") は、ユーザーが明示的に変更を指示しない限り現在の値を尊重すること。
4. 変更がないフィールドはJSONに含めないこと。
5. 出力は以下のJSON形式（の部分集合）のみ。

Possible Fields (JSON Schema):
{
    "term": "...",
    "definition": "...",
    "part_of_speech": "...",
    "ipa": "...",
    "example": "...",
    "etymology": "...",
    "synonyms": ["...", "..."],
    "collocations": ["...", "..."]
}
`

const predictSystemPrompt = `
あなたは優秀な語彙編集アシスタントです。
ユーザーの指示に基づいて、既存の単語データのどのフィールドを修正すべきかを判断してください。

ルール:
1. ユーザーの指示 ("User Context & Instructions") を分析し、修正が必要なフィールド名のリストを作ること。
2. 実際の修正は行わない。対象フィールドの特定のみが目的。
3. 出力は以下のJSON形式のみ。

Output Schema:
{
    "targets": ["term", "definition", "example"]
}
Valid Fields: "term", "definition", "part_of_speech", "ipa", "example", "etymology", "synonyms", "collocations", "source_memo"
`

var modeInstructions = map[Mode]string{
	ModeRegister: "不足している全てのフィールドを埋めて完全なJSONを作成してください。ユーザーの指示がある場合はそれを最優先してください。",
	ModeEdit:     "ユーザーの指示に従い、必要なフィールドのみを修正したJSONを返してください。",
	ModePredict:  "ユーザーの指示を分析し、修正対象となるフィールド名のリストをJSONで返してください。",
}

// BuildPrompt は現在のレコードとユーザー指示からモード別のプロンプトを組み立てます。
// 純粋関数であり、副作用は一切ありません
func BuildPrompt(mode Mode, vocab *model.Vocabulary, chatContext string) Prompt {
	var system string
	var shape ResponseShape
	switch mode {
	case ModeEdit:
		system = editSystemPrompt
		shape = ShapePartial
	case ModePredict:
		system = predictSystemPrompt
		shape = ShapeTargets
	default:
		system = registerSystemPrompt
		shape = ShapeFullRecord
	}

	if chatContext == "" {
		chatContext = "None"
	}

	user := fmt.Sprintf(`Target Term: %s

[Current Data / Manual Inputs]
- Definition: %s
- Part of Speech: %s
- Example: %s
- Synonyms: %s
- Collocations: %s
- Etymology: %s
- IPA: %s
- Source/Memo: %s

[User Context & Instructions]
"""
%s
"""

Instruction:
%s
`,
		vocab.Term,
		orEmpty(vocab.Definition),
		orEmpty(vocab.PartOfSpeech),
		orEmpty(vocab.Example),
		orEmpty(strings.Join(vocab.Synonyms, ", ")),
		orEmpty(strings.Join(vocab.Collocations, ", ")),
		orEmpty(vocab.Etymology),
		orEmpty(vocab.IPA),
		orEmpty(vocab.SourceMemo),
		chatContext,
		modeInstructions[mode],
	)

	return Prompt{SystemInstructions: system, UserContext: user, Shape: shape}
}

func orEmpty(s string) string {
	if s == "" {
		return "(Empty)"
	}
	return s
}
