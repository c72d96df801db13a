package logic

import (
	"fmt"

	e "github.com/MuhammedMazinMH/FundFeed/internal/errors"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserLogic 用户档案业务逻辑
type UserLogic struct {
	db *gorm.DB
}

// NewUserLogic 创建用户档案业务逻辑
func NewUserLogic(db *gorm.DB) *UserLogic {
	return &UserLogic{db: db}
}

// UpsertProfile 首次认证时创建档案，之后合并更新
func (u *UserLogic) UpsertProfile(id string, name string, role model.UserRole) error {
	if id == "" {
		return fmt.Errorf("%w: 缺少用户身份", e.ErrAuthRequired)
	}
	if role == "" {
		role = model.UserRoleInvestor
	}
	if !model.ValidUserRole(role) {
		return fmt.Errorf("%w: 无效的用户角色", e.ErrValidation)
	}

	profile := model.UserProfileModel{
		Id:   id,
		Name: name,
		Role: role,
	}

	if err := u.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "updated_at"}),
	}).Create(&profile).Error; err != nil {
		return fmt.Errorf("%w: 保存用户档案失败: %v", e.ErrStoreUnavailable, err)
	}

	return nil
}

// GetProfile 获取用户档案
func (u *UserLogic) GetProfile(id string) (*model.UserProfileModel, error) {
	var profile model.UserProfileModel
	if err := u.db.First(&profile, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: 用户不存在", e.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: 获取用户档案失败: %v", e.ErrStoreUnavailable, err)
	}
	return &profile, nil
}
