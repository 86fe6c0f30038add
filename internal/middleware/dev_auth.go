// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/webutil"

	"github.com/google/uuid"
)

// DevProfileContextMiddleware は開発時用ミドルウェアです。
// X-Profile-ID ヘッダーからUUIDを抽出し、コンテキストに設定します。
// DBでのプロフィール存在チェックは行いません。
func DevProfileContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profileIDStr := r.Header.Get("X-Profile-ID")
		if profileIDStr == "" {
			log.Println("[DEV AUTH] Failed: X-Profile-ID header missing")
			webutil.RespondWithError(w, http.StatusUnauthorized, "[DEV] Unauthorized: Missing X-Profile-ID header")
			return
		}

		profileID, err := uuid.Parse(profileIDStr)
		if err != nil {
			log.Printf("[DEV AUTH] Failed: Invalid X-Profile-ID format: %s", profileIDStr)
			webutil.RespondWithError(w, http.StatusUnauthorized, "[DEV] Unauthorized: Invalid X-Profile-ID format")
			return
		}

		// DB検証はスキップ
		ctx := context.WithValue(r.Context(), model.ProfileIDKey, profileID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
