package logic

import (
	"errors"
	"fmt"

	e "github.com/MuhammedMazinMH/FundFeed/internal/errors"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"gorm.io/gorm"
)

// FollowLogic 关注账本业务逻辑
// 关系行与计数增量在同一事务内落库，计数不会因两步写入而撕裂
type FollowLogic struct {
	db *gorm.DB
}

// NewFollowLogic 创建关注账本业务逻辑
func NewFollowLogic(db *gorm.DB) *FollowLogic {
	return &FollowLogic{db: db}
}

// Follow 关注轮次，重复调用为幂等空操作
func (f *FollowLogic) Follow(userId, roundId string) error {
	if userId == "" {
		return fmt.Errorf("%w: 缺少用户身份", e.ErrAuthRequired)
	}
	if roundId == "" {
		return fmt.Errorf("%w: 轮次ID不能为空", e.ErrValidation)
	}

	// 检查轮次是否存在
	var round model.RoundModel
	if err := f.db.First(&round, "id = ?", roundId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: 轮次不存在", e.ErrNotFound)
		}
		return fmt.Errorf("%w: 查询轮次失败: %v", e.ErrStoreUnavailable, err)
	}

	tx := f.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	follow := model.FollowModel{UserId: userId, RoundId: roundId}
	if err := tx.Create(&follow).Error; err != nil {
		tx.Rollback()
		// 唯一键冲突说明已在关注中，按幂等成功处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("%w: 写入关注关系失败: %v", e.ErrStoreUnavailable, err)
	}

	// 原子增量，避免读改写丢更新
	if err := tx.Model(&model.RoundModel{}).Where("id = ?", roundId).
		Update("follower_count", gorm.Expr("follower_count + ?", 1)).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: 更新关注计数失败: %v", e.ErrStoreUnavailable, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: 关注失败: %v", e.ErrStoreUnavailable, err)
	}

	return nil
}

// Unfollow 取消关注，未关注时为幂等空操作，计数下限为0
func (f *FollowLogic) Unfollow(userId, roundId string) error {
	if userId == "" {
		return fmt.Errorf("%w: 缺少用户身份", e.ErrAuthRequired)
	}
	if roundId == "" {
		return fmt.Errorf("%w: 轮次ID不能为空", e.ErrValidation)
	}

	tx := f.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	result := tx.Where("user_id = ? AND round_id = ?", userId, roundId).Delete(&model.FollowModel{})
	if result.Error != nil {
		tx.Rollback()
		return fmt.Errorf("%w: 删除关注关系失败: %v", e.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		// 本来就没在关注，计数保持不变
		tx.Rollback()
		return nil
	}

	// follower_count > 0 条件保证计数不会被减成负数
	if err := tx.Model(&model.RoundModel{}).
		Where("id = ? AND follower_count > 0", roundId).
		Update("follower_count", gorm.Expr("follower_count - ?", 1)).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: 更新关注计数失败: %v", e.ErrStoreUnavailable, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: 取消关注失败: %v", e.ErrStoreUnavailable, err)
	}

	return nil
}

// IsFollowing 查询关注状态，以关注关系表为唯一事实来源
func (f *FollowLogic) IsFollowing(userId, roundId string) (bool, error) {
	var count int64
	if err := f.db.Model(&model.FollowModel{}).
		Where("user_id = ? AND round_id = ?", userId, roundId).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: 查询关注状态失败: %v", e.ErrStoreUnavailable, err)
	}
	return count > 0, nil
}

// ListFollowedRounds 获取用户关注的全部轮次ID
func (f *FollowLogic) ListFollowedRounds(userId string) ([]string, error) {
	var roundIds []string
	if err := f.db.Model(&model.FollowModel{}).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Pluck("round_id", &roundIds).Error; err != nil {
		return nil, fmt.Errorf("%w: 查询关注列表失败: %v", e.ErrStoreUnavailable, err)
	}
	return roundIds, nil
}
