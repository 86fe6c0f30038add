// internal/handlers/events_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go_5_vocab_ai/internal/events"
	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/webutil"
)

// EventsHandler は単語テーブルの変更をServer-Sent Eventsで配信します。
// クライアントはこれを購読してis_generatingフラグの変化などを即時反映します
type EventsHandler struct {
	bus *events.Bus
}

func NewEventsHandler(bus *events.Bus) *EventsHandler {
	return &EventsHandler{bus: bus}
}

func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("SSE not supported: response writer is not a flusher")
		appErr := model.NewAppError("INTERNAL_SERVER_ERROR", "ストリーミングに対応していません。", "", model.ErrInternalServer)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// 自分のレコードの変更だけを受け取る
	ch, cancel := h.bus.Subscribe("vocabularies", func(c events.Change) bool {
		return c.UserID == profileID
	})
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	logger.Info("SSE stream opened", "profile_id", profileID.String())

	for {
		select {
		case <-r.Context().Done():
			logger.Info("SSE stream closed by client", "profile_id", profileID.String())
			return
		case change, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(change)
			if err != nil {
				logger.Error("Failed to marshal change event", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
