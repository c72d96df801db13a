package model

import (
	"time"
)

// RoundModel 融资轮次模型
type RoundModel struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	CompanyName string `json:"company_name" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text;not null" binding:"required"`
	LogoURL     string `json:"logo_url"`
	DeckURL     string `json:"deck_url"`

	// 融资信息
	RaisingAmount int64  `json:"raising_amount" gorm:"not null" binding:"required,min=1"`
	Currency      string `json:"currency" gorm:"size:8;not null" binding:"required"`

	// 创建者信息（不可变，仅反向引用创建者）
	FounderId string `json:"founder_id" gorm:"not null;index"`

	// 互动计数，仅由账本逻辑和对账任务维护
	FollowerCount     int64 `json:"follower_count" gorm:"default:0"`
	IntroRequestCount int64 `json:"intro_request_count" gorm:"default:0"`
}

// TableName 自定义表名
func (RoundModel) TableName() string {
	return "round"
}
