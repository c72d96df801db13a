package model

import (
	"time"
)

// FollowModel 关注关系，(user_id, round_id) 唯一
// 该表是“是否已关注”的唯一事实来源，round 上的计数只是派生值
type FollowModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	UserId  string `json:"user_id" gorm:"not null;size:128;uniqueIndex:idx_follow_user_round"`
	RoundId string `json:"round_id" gorm:"not null;size:36;uniqueIndex:idx_follow_user_round;index"`
}

// TableName 自定义表名
func (FollowModel) TableName() string {
	return "follow"
}
