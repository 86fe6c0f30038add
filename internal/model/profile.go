// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile はユーザーの基本情報とAI連携設定を保持します
type Profile struct {
	ProfileID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"profile_id"`
	Name         string    `gorm:"not null;uniqueIndex" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsActive     bool      `json:"is_active" gorm:"default:false"`

	// クライアント側で暗号化されたAPIキーのエンベロープ（JSONテキスト）。
	// サーバーはこの中身を復号できず、不透明な文字列として保存するだけ
	EncryptedAPIKey *string `gorm:"type:text" json:"-"`

	IsAIAutoCompleteOn bool `gorm:"not null;default:true" json:"is_ai_auto_complete_on"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

type ContextKey string

const (
	ProfileIDKey ContextKey = "profileID"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// ProfileResponse はクライアントに返すユーザー情報の構造体
type ProfileResponse struct {
	ProfileID          uuid.UUID `json:"profile_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	IsActive           bool      `json:"is_active"`
	IsAIAutoCompleteOn bool      `json:"is_ai_auto_complete_on"`
	HasEncryptedAPIKey bool      `json:"has_encrypted_api_key"`
	CreatedAt          time.Time `json:"created_at"`
}

// PatchProfileRequest はプロファイル設定更新のDTO
type PatchProfileRequest struct {
	Name               *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	IsAIAutoCompleteOn *bool   `json:"is_ai_auto_complete_on,omitempty"`
}

// PutCredentialRequest は暗号化済みAPIキーの保存リクエスト。
// 各フィールドはクライアント側エンベロープ暗号の出力（Base64）で、サーバーは検証のみ行い復号しない
type PutCredentialRequest struct {
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
	IV         string `json:"iv" validate:"required,base64"`
	Salt       string `json:"salt" validate:"required,base64"`
}
