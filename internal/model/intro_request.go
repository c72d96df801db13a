package model

import (
	"time"
)

// IntroRequestModel 引荐请求，(investor_id, round_id) 唯一
type IntroRequestModel struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	InvestorId string `json:"investor_id" gorm:"not null;size:128;uniqueIndex:idx_intro_investor_round"`
	RoundId    string `json:"round_id" gorm:"not null;size:36;uniqueIndex:idx_intro_investor_round;index"`

	// 请求时刻的公司名快照，轮次改名后不回填
	StartupName string `json:"startup_name" gorm:"not null"`

	Status IntroRequestStatus `json:"status" gorm:"default:'pending'"`
}

// IntroRequestStatus 引荐请求状态
type IntroRequestStatus string

const (
	IntroRequestStatusPending  IntroRequestStatus = "pending"  // 待处理
	IntroRequestStatusAccepted IntroRequestStatus = "accepted" // 已接受
	IntroRequestStatusDeclined IntroRequestStatus = "declined" // 已拒绝
)

// TableName 自定义表名
func (IntroRequestModel) TableName() string {
	return "intro_request"
}

// ValidIntroRequestStatus 校验状态取值
func ValidIntroRequestStatus(status IntroRequestStatus) bool {
	switch status {
	case IntroRequestStatusPending, IntroRequestStatusAccepted, IntroRequestStatusDeclined:
		return true
	}
	return false
}
