// internal/service/profile_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"

	"go_5_vocab_ai/internal/cryptox"
	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/model"
	"go_5_vocab_ai/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, req *model.PatchProfileRequest) (*model.Profile, error)
	// PutCredential はクライアントで暗号化済みのAPIキー封筒を保存します。
	// サーバーは封筒を開けない。中身の検証はBase64形式チェックまで
	PutCredential(ctx context.Context, profileID uuid.UUID, req *model.PutCredentialRequest) error
	GetCredential(ctx context.Context, profileID uuid.UUID) (*cryptox.EncryptedCredential, error)
	DeleteCredential(ctx context.Context, profileID uuid.UUID) error
}

type profileService struct {
	db          *gorm.DB
	profileRepo repository.ProfileRepository
}

func NewProfileService(db *gorm.DB, profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{
		db:          db,
		profileRepo: profileRepo,
	}
}

func (s *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	profile, err := s.profileRepo.FindByID(ctx, s.db, profileID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("PROFILE_NOT_FOUND", "プロフィールが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding profile by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, profileID uuid.UUID, req *model.PatchProfileRequest) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)

	updates := make(map[string]interface{})
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.IsAIAutoCompleteOn != nil {
		updates["is_ai_auto_complete_on"] = *req.IsAIAutoCompleteOn
	}

	if len(updates) > 0 {
		if err := s.profileRepo.Update(ctx, s.db, profileID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, model.NewAppError("PROFILE_NOT_FOUND", "プロフィールが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error updating profile", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロフィールの更新に失敗しました。", "", err)
		}
	}

	return s.GetProfile(ctx, profileID)
}

func (s *profileService) PutCredential(ctx context.Context, profileID uuid.UUID, req *model.PutCredentialRequest) error {
	logger := middleware.GetLogger(ctx)

	envelope := cryptox.EncryptedCredential{
		Ciphertext: req.Ciphertext,
		IV:         req.IV,
		Salt:       req.Salt,
	}
	serialized, err := json.Marshal(envelope)
	if err != nil {
		logger.Error("Failed to serialize credential envelope", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "認証情報の保存に失敗しました。", "", err)
	}

	encrypted := string(serialized)
	if err := s.profileRepo.UpdateCredential(ctx, s.db, profileID, &encrypted); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("PROFILE_NOT_FOUND", "プロフィールが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error storing encrypted credential", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "認証情報の保存に失敗しました。", "", err)
	}

	logger.Info("Encrypted credential stored", "profile_id", profileID.String())
	return nil
}

func (s *profileService) GetCredential(ctx context.Context, profileID uuid.UUID) (*cryptox.EncryptedCredential, error) {
	logger := middleware.GetLogger(ctx)

	profile, err := s.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.EncryptedAPIKey == nil {
		return nil, model.NewAppError("CREDENTIAL_NOT_FOUND", "APIキーが登録されていません。", "", model.ErrNotFound)
	}

	var envelope cryptox.EncryptedCredential
	if err := json.Unmarshal([]byte(*profile.EncryptedAPIKey), &envelope); err != nil {
		logger.Error("Failed to deserialize stored credential envelope", "error", err, "profile_id", profileID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "認証情報の読み込みに失敗しました。", "", err)
	}
	return &envelope, nil
}

func (s *profileService) DeleteCredential(ctx context.Context, profileID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := s.profileRepo.UpdateCredential(ctx, s.db, profileID, nil); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("PROFILE_NOT_FOUND", "プロフィールが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error deleting encrypted credential", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "認証情報の削除に失敗しました。", "", err)
	}

	logger.Info("Encrypted credential deleted", "profile_id", profileID.String())
	return nil
}
