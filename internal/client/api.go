// internal/client/api.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go_5_vocab_ai/internal/model"
)

// APIClient はバックエンドのAI補完エンドポイントを呼ぶHTTPクライアントです。
// 復号済みAPIキーはリクエストヘッダーで都度渡し、サーバーには保存させません
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	session    *KeySession
	token      string // アクセストークン
}

var _ Enricher = (*APIClient)(nil)

func NewAPIClient(baseURL string, session *KeySession) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 90 * time.Second, // 生成呼び出しは長い
		},
		session: session,
	}
}

// SetToken はログインで得たアクセストークンを設定します
func (c *APIClient) SetToken(token string) {
	c.token = token
}

func (c *APIClient) Enrich(ctx context.Context, req *model.EnrichmentRequest) (*model.EnrichmentResult, error) {
	key, err := c.session.Key()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal enrichment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/enrichment", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build enrichment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Model-Key", key)
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call enrichment api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read enrichment response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr model.APIErrorResponse
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("enrichment api %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("enrichment api returned status %d", resp.StatusCode)
	}

	if req.Mode == "predict" {
		var predict model.EnrichmentPredictResponse
		if err := json.Unmarshal(raw, &predict); err != nil {
			return nil, fmt.Errorf("decode predict response: %w", err)
		}
		return &model.EnrichmentResult{Targets: predict.Targets}, nil
	}

	var update model.EnrichmentUpdateResponse
	if err := json.Unmarshal(raw, &update); err != nil {
		return nil, fmt.Errorf("decode enrichment response: %w", err)
	}
	return &model.EnrichmentResult{UpdatedFields: update.UpdatedFields}, nil
}
