// internal/handlers/enrichment_handler.go
package handlers

import (
	"errors"
	"net/http"

	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/service"
	"go_5_vocab_ai/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// ModelKeyHeader は呼び出し元が自分のAPIキーを渡すヘッダー名です。
// ボディやクエリに載せないことで、アクセスログへの混入を防ぐ
const ModelKeyHeader = "X-Model-Key"

type EnrichmentHandler struct {
	service service.EnrichmentService
}

func NewEnrichmentHandler(s service.EnrichmentService) *EnrichmentHandler {
	return &EnrichmentHandler{service: s}
}

// Enrich はAI補完の実行を受け付けます
func (h *EnrichmentHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.EnrichmentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode enrichment request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for enrichment", "errors", validationErrors.Error())
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	apiKey := r.Header.Get(ModelKeyHeader)

	result, err := h.service.Enrich(r.Context(), profileID, apiKey, &req)
	if err != nil {
		// サービス層でログは出力済み
		webutil.HandleError(w, logger, err)
		return
	}

	if req.Mode == "predict" {
		webutil.RespondWithJSON(w, http.StatusOK, model.EnrichmentPredictResponse{
			Success: true,
			Targets: result.Targets,
		}, logger)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.EnrichmentUpdateResponse{
		Success:       true,
		UpdatedFields: result.UpdatedFields,
	}, logger)
}
