package model

import (
	"time"
)

// UserProfileModel 用户档案模型，Id 与认证身份一致
type UserProfileModel struct {
	Id        string    `json:"id" gorm:"primaryKey;size:128"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string   `json:"name"`
	Role UserRole `json:"role" gorm:"default:'investor'"`
}

// UserRole 用户角色，仅作展示参考，核心逻辑不做强制校验
type UserRole string

const (
	UserRoleFounder  UserRole = "founder"  // 创始人
	UserRoleInvestor UserRole = "investor" // 投资人
	UserRoleBoth     UserRole = "both"     // 两者皆是
)

// TableName 自定义表名
func (UserProfileModel) TableName() string {
	return "user_profile"
}

// ValidUserRole 校验角色取值
func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleFounder, UserRoleInvestor, UserRoleBoth:
		return true
	}
	return false
}
