// internal/handlers/profile_handler.go
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

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

func toProfileResponse(p *model.Profile) *model.ProfileResponse {
	return &model.ProfileResponse{
		ProfileID:          p.ProfileID,
		Name:               p.Name,
		Email:              p.Email,
		IsActive:           p.IsActive,
		IsAIAutoCompleteOn: p.IsAIAutoCompleteOn,
		HasEncryptedAPIKey: p.EncryptedAPIKey != nil,
		CreatedAt:          p.CreatedAt,
	}
}

// GetMe はログイン中ユーザーのプロフィールを返します
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), profileID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, toProfileResponse(profile), logger)
}

// PatchMe はプロフィール設定を部分更新します
func (h *ProfileHandler) PatchMe(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PatchProfileRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			webutil.HandleError(w, logger, err)
		}
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), profileID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, toProfileResponse(profile), logger)
}

// PutCredential は暗号化済みAPIキーの封筒を保存します
func (h *ProfileHandler) PutCredential(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.PutCredentialRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for credential", "errors", validationErrors.Error())
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

	if err := h.service.PutCredential(r.Context(), profileID, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "APIキーを保存しました。",
	}, logger)
}

// GetCredential は保存済みの暗号封筒をそのまま返します。復号はクライアントの仕事
func (h *ProfileHandler) GetCredential(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	envelope, err := h.service.GetCredential(r.Context(), profileID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, envelope, logger)
}

// DeleteCredential は保存済みのAPIキー封筒を削除します
func (h *ProfileHandler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteCredential(r.Context(), profileID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
