package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MuhammedMazinMH/FundFeed/internal/cache"
	e "github.com/MuhammedMazinMH/FundFeed/internal/errors"
	"github.com/MuhammedMazinMH/FundFeed/internal/logger"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultTrendingLimit = 20
	MaxTrendingLimit     = 100
)

// RoundLogic 融资轮次业务逻辑
type RoundLogic struct {
	db    *gorm.DB
	cache *cache.Cache // 可为 nil，此时趋势榜直接查库
}

// NewRoundLogic 创建融资轮次业务逻辑
func NewRoundLogic(db *gorm.DB, c *cache.Cache) *RoundLogic {
	return &RoundLogic{db: db, cache: c}
}

// CreateRound 创建融资轮次，founderId 来自已认证身份
func (r *RoundLogic) CreateRound(founderId string, round *model.RoundModel) error {
	if founderId == "" {
		return fmt.Errorf("%w: 缺少创始人身份", e.ErrAuthRequired)
	}
	if err := r.validateRound(round); err != nil {
		return err
	}

	round.Id = uuid.NewString()
	round.FounderId = founderId
	round.Currency = strings.ToUpper(round.Currency)
	// 计数只能由账本逻辑维护，创建时强制归零
	round.FollowerCount = 0
	round.IntroRequestCount = 0

	if err := r.db.Create(round).Error; err != nil {
		return fmt.Errorf("%w: 创建轮次失败: %v", e.ErrStoreUnavailable, err)
	}

	r.invalidateTrending()
	return nil
}

// GetRound 获取轮次详情
func (r *RoundLogic) GetRound(id string) (*model.RoundModel, error) {
	var round model.RoundModel
	if err := r.db.First(&round, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: 轮次不存在", e.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: 获取轮次详情失败: %v", e.ErrStoreUnavailable, err)
	}
	return &round, nil
}

// ListTrending 获取趋势榜：created_at 降序，follower_count 降序，id 升序保证平局稳定
func (r *RoundLogic) ListTrending(limit int) ([]model.RoundModel, error) {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}
	if limit > MaxTrendingLimit {
		limit = MaxTrendingLimit
	}

	// 缓存尽力而为，失败一律回源查库
	if r.cache != nil {
		payload, err := r.cache.GetTrending(context.Background(), limit)
		if err != nil {
			logger.Warn("Failed to read trending cache: %v", err)
		} else if payload != "" {
			var rounds []model.RoundModel
			if err := json.Unmarshal([]byte(payload), &rounds); err == nil {
				return rounds, nil
			}
		}
	}

	var rounds []model.RoundModel
	if err := r.db.Order("created_at DESC, follower_count DESC, id ASC").
		Limit(limit).
		Find(&rounds).Error; err != nil {
		return nil, fmt.Errorf("%w: 获取趋势榜失败: %v", e.ErrStoreUnavailable, err)
	}

	if r.cache != nil {
		if payload, err := json.Marshal(rounds); err == nil {
			if err := r.cache.SetTrending(context.Background(), limit, string(payload)); err != nil {
				logger.Warn("Failed to write trending cache: %v", err)
			}
		}
	}

	return rounds, nil
}

// ListRoundsByFounder 获取创始人发布的全部轮次
func (r *RoundLogic) ListRoundsByFounder(founderId string) ([]model.RoundModel, error) {
	var rounds []model.RoundModel
	if err := r.db.Where("founder_id = ?", founderId).
		Order("created_at DESC").
		Find(&rounds).Error; err != nil {
		return nil, fmt.Errorf("%w: 获取轮次列表失败: %v", e.ErrStoreUnavailable, err)
	}
	return rounds, nil
}

// UpdateRound 更新轮次内容字段，仅限创建者本人
// 计数、founder_id、created_at 不在可更新范围内
func (r *RoundLogic) UpdateRound(id, founderId string, updates map[string]interface{}) error {
	round, err := r.GetRound(id)
	if err != nil {
		return err
	}
	if round.FounderId != founderId {
		return fmt.Errorf("%w: 只有创建者可以修改轮次", e.ErrAuthRequired)
	}

	allowed := map[string]bool{
		"company_name":   true,
		"description":    true,
		"logo_url":       true,
		"deck_url":       true,
		"raising_amount": true,
		"currency":       true,
	}
	filtered := make(map[string]interface{})
	for k, v := range updates {
		if allowed[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return fmt.Errorf("%w: 没有要更新的字段", e.ErrValidation)
	}
	if v, ok := filtered["company_name"]; ok {
		if s, _ := v.(string); s == "" {
			return fmt.Errorf("%w: 公司名称不能为空", e.ErrValidation)
		}
	}
	if v, ok := filtered["raising_amount"]; ok {
		if n, _ := v.(int64); n <= 0 {
			return fmt.Errorf("%w: 融资金额必须大于0", e.ErrValidation)
		}
	}

	if err := r.db.Model(&model.RoundModel{}).Where("id = ?", id).Updates(filtered).Error; err != nil {
		return fmt.Errorf("%w: 更新轮次失败: %v", e.ErrStoreUnavailable, err)
	}

	r.invalidateTrending()
	return nil
}

// DeleteRound 删除轮次，仅限创建者本人
// 级联删除关注关系与引荐请求，避免留下孤儿记录
func (r *RoundLogic) DeleteRound(id, founderId string) error {
	round, err := r.GetRound(id)
	if err != nil {
		return err
	}
	if round.FounderId != founderId {
		return fmt.Errorf("%w: 只有创建者可以删除轮次", e.ErrAuthRequired)
	}

	tx := r.db.Begin()
	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("round_id = ?", id).Delete(&model.FollowModel{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: 删除关注关系失败: %v", e.ErrStoreUnavailable, err)
	}
	if err := tx.Where("round_id = ?", id).Delete(&model.IntroRequestModel{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: 删除引荐请求失败: %v", e.ErrStoreUnavailable, err)
	}
	if err := tx.Delete(&model.RoundModel{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: 删除轮次失败: %v", e.ErrStoreUnavailable, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: 删除轮次失败: %v", e.ErrStoreUnavailable, err)
	}

	r.invalidateTrending()
	return nil
}

// validateRound 校验轮次数据
func (r *RoundLogic) validateRound(round *model.RoundModel) error {
	if round.CompanyName == "" {
		return fmt.Errorf("%w: 公司名称不能为空", e.ErrValidation)
	}
	if round.Description == "" {
		return fmt.Errorf("%w: 项目描述不能为空", e.ErrValidation)
	}
	if round.RaisingAmount <= 0 {
		return fmt.Errorf("%w: 融资金额必须大于0", e.ErrValidation)
	}
	if len(round.Currency) != 3 {
		return fmt.Errorf("%w: 货币代码必须为3位", e.ErrValidation)
	}
	return nil
}

func (r *RoundLogic) invalidateTrending() {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateTrending(context.Background()); err != nil {
		logger.Warn("Failed to invalidate trending cache: %v", err)
	}
}
