// internal/handlers/events_handler_test.go
package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go_5_vocab_ai/internal/events"
	"go_5_vocab_ai/internal/handlers"
	"go_5_vocab_ai/internal/middleware"
)

func newEventsTestRouter(bus *events.Bus) *chi.Mux {
	handler := handlers.NewEventsHandler(bus)
	router := chi.NewRouter()
	router.Use(middleware.DevProfileContextMiddleware)
	router.Get("/api/v1/events", handler.Stream)
	return router
}

func TestEventsHandler_Stream(t *testing.T) {
	profileID := uuid.New()

	t.Run("正常系: 自分の変更だけがSSEで届く", func(t *testing.T) {
		bus := events.NewBus()
		router := newEventsTestRouter(bus)

		req := createRequest(t, "GET", "/api/v1/events", nil, &profileID)
		ctx, cancel := context.WithCancel(req.Context())
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		done := make(chan struct{})
		go func() {
			router.ServeHTTP(rr, req)
			close(done)
		}()

		// ハンドラが購読を開始するのを待つ
		time.Sleep(100 * time.Millisecond)

		ownChange := events.Change{
			Table:        "vocabularies",
			Action:       events.ActionUpdate,
			RecordID:     uuid.New(),
			UserID:       profileID,
			IsGenerating: true,
		}
		otherChange := events.Change{
			Table:    "vocabularies",
			Action:   events.ActionUpdate,
			RecordID: uuid.New(),
			UserID:   uuid.New(),
		}
		bus.Publish(otherChange)
		bus.Publish(ownChange)

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("SSE handler did not stop after context cancellation")
		}

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))

		body := rr.Body.String()
		assert.Contains(t, body, "event: change")
		assert.Contains(t, body, ownChange.RecordID.String())
		assert.Contains(t, body, `"is_generating":true`)
		// 他ユーザーの変更は配信されない
		assert.NotContains(t, body, otherChange.RecordID.String())
	})

	t.Run("正常系: タイムアウトの外に置いたストリームは切れない", func(t *testing.T) {
		bus := events.NewBus()
		handler := handlers.NewEventsHandler(bus)

		// 本番と同じく、SSEだけをTimeoutミドルウェアの外に置く構成
		router := chi.NewRouter()
		router.With(middleware.DevProfileContextMiddleware).Get("/api/v1/events", handler.Stream)
		router.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(50 * time.Millisecond))
			r.Use(middleware.DevProfileContextMiddleware)
			r.Get("/api/v1/vocabularies", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})

		req := createRequest(t, "GET", "/api/v1/events", nil, &profileID)
		ctx, cancel := context.WithCancel(req.Context())
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		done := make(chan struct{})
		go func() {
			router.ServeHTTP(rr, req)
			close(done)
		}()

		// タイムアウトを十分過ぎてから変更を流す
		time.Sleep(150 * time.Millisecond)
		change := events.Change{
			Table:    "vocabularies",
			Action:   events.ActionUpdate,
			RecordID: uuid.New(),
			UserID:   profileID,
		}
		bus.Publish(change)
		time.Sleep(100 * time.Millisecond)

		select {
		case <-done:
			t.Fatal("SSE stream was severed by the timeout middleware")
		default:
		}
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("SSE handler did not stop after context cancellation")
		}

		assert.Contains(t, rr.Body.String(), change.RecordID.String())
	})

	t.Run("異常系: 認証ヘッダーなし", func(t *testing.T) {
		router := newEventsTestRouter(events.NewBus())

		req := createRequest(t, "GET", "/api/v1/events", nil, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
