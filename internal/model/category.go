// internal/model/category.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Category は単語の分類用カテゴリを表します
type Category struct {
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
	ProfileID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name       string    `gorm:"not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// カテゴリ作成リクエストDTO
type PostCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
