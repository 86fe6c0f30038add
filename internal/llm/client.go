// internal/llm/client.go
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"go_5_vocab_ai/internal/model"
)

// TextModel は生成呼び出しの抽象です。APIキーは利用者（リクエスト）ごとに
// 異なるためサーバー側では保持せず、呼び出し単位で受け取ります
type TextModel interface {
	// GenerateJSON はプロンプトを送信し、モデルの生テキストを返します
	GenerateJSON(ctx context.Context, apiKey string, prompt Prompt) (string, error)
	// Embed はテキストの埋め込みベクトルを返します
	Embed(ctx context.Context, apiKey string, text string) ([]float32, error)
}

// GeminiClient はGoogle Gemini APIを使うTextModelの実装です
type GeminiClient struct {
	generationModel string
	embeddingModel  string
}

func NewGeminiClient(generationModel, embeddingModel string) *GeminiClient {
	return &GeminiClient{
		generationModel: generationModel,
		embeddingModel:  embeddingModel,
	}
}

// newClient はリクエストごとのキーでSDKクライアントを生成します。
// キーが平文で残らないよう、クライアントは呼び出しスコープに閉じる
func (c *GeminiClient) newClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, model.NewAppError(
			"VALIDATION_ERROR",
			"AIモデルのAPIキーが指定されていません。",
			"",
			fmt.Errorf("missing model api key: %w", model.ErrInvalidInput),
		)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

func (c *GeminiClient) GenerateJSON(ctx context.Context, apiKey string, prompt Prompt) (string, error) {
	client, err := c.newClient(ctx, apiKey)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt.UserContext, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.SystemInstructions, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}

	result, err := client.Models.GenerateContent(ctx, c.generationModel, contents, config)
	if err != nil {
		return "", model.NewAppError(
			"UPSTREAM_MODEL_ERROR",
			"AIモデルの呼び出しに失敗しました。",
			"",
			fmt.Errorf("generate content: %w: %w", model.ErrUpstreamModel, err),
		)
	}

	text := result.Text()
	if text == "" {
		return "", model.NewAppError(
			"UPSTREAM_MODEL_ERROR",
			"AIモデルが空のレスポンスを返しました。",
			"",
			fmt.Errorf("empty generation response: %w", model.ErrUpstreamModel),
		)
	}
	return text, nil
}

// embedConfig は類似語検索用の埋め込み設定を返します。
// 次元数はvocabulariesテーブルのvector列と一致させる必要がある
func embedConfig() *genai.EmbedContentConfig {
	return &genai.EmbedContentConfig{
		TaskType:             "SEMANTIC_SIMILARITY",
		OutputDimensionality: genai.Ptr(int32(model.EmbeddingDimensions)),
	}
}

func (c *GeminiClient) Embed(ctx context.Context, apiKey string, text string) ([]float32, error) {
	client, err := c.newClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	result, err := client.Models.EmbedContent(ctx, c.embeddingModel, contents, embedConfig())
	if err != nil {
		return nil, fmt.Errorf("embed content: %w: %w", model.ErrUpstreamModel, err)
	}
	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned: %w", model.ErrUpstreamModel)
	}
	return result.Embeddings[0].Values, nil
}
