// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "VocabAI"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "json"
	DefaultJWTExpirationHours = 72
	DefaultAuthEnabled        = true
)

// AIモデルのデフォルト
const (
	DefaultGenerationModel = "gemini-2.0-flash"
	DefaultEmbeddingModel  = "text-embedding-004"
)

// クイズ生成のデフォルト。類似度がこの窓に入る語を誤答候補にする
const (
	DefaultQuizDistractorCount = 3
	DefaultQuizMinSimilarity   = 0.3
	DefaultQuizMaxSimilarity   = 0.95
)
