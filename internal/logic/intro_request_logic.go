package logic

import (
	"errors"
	"fmt"

	e "github.com/MuhammedMazinMH/FundFeed/internal/errors"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IntroRequestLogic 引荐请求业务逻辑
// (investor_id, round_id) 唯一索引是防重的事实来源，先查后插只是快路径
type IntroRequestLogic struct {
	db *gorm.DB
}

// NewIntroRequestLogic 创建引荐请求业务逻辑
func NewIntroRequestLogic(db *gorm.DB) *IntroRequestLogic {
	return &IntroRequestLogic{db: db}
}

// RequestIntro 提交引荐请求，幂等：同一 (投资人, 轮次) 重复提交返回已有请求ID
// created 为 false 表示命中已有记录，计数不会重复增加
func (i *IntroRequestLogic) RequestIntro(investorId, roundId, startupName string) (id string, created bool, err error) {
	if investorId == "" {
		return "", false, fmt.Errorf("%w: 缺少投资人身份", e.ErrAuthRequired)
	}
	if roundId == "" {
		return "", false, fmt.Errorf("%w: 轮次ID不能为空", e.ErrValidation)
	}
	if startupName == "" {
		return "", false, fmt.Errorf("%w: 公司名称不能为空", e.ErrValidation)
	}

	// 检查轮次是否存在
	var round model.RoundModel
	if err := i.db.First(&round, "id = ?", roundId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", false, fmt.Errorf("%w: 轮次不存在", e.ErrNotFound)
		}
		return "", false, fmt.Errorf("%w: 查询轮次失败: %v", e.ErrStoreUnavailable, err)
	}

	// 快路径：已有记录直接返回
	existing, err := i.findByKey(investorId, roundId)
	if err != nil {
		return "", false, err
	}
	if existing != nil {
		return existing.Id, false, nil
	}

	request := model.IntroRequestModel{
		Id:          uuid.NewString(),
		InvestorId:  investorId,
		RoundId:     roundId,
		StartupName: startupName,
		Status:      model.IntroRequestStatusPending,
	}

	tx := i.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&request).Error; err != nil {
		tx.Rollback()
		// 并发下两个请求可能同时通过上面的检查，唯一键冲突时按幂等成功处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := i.findByKey(investorId, roundId)
			if ferr != nil {
				return "", false, ferr
			}
			if existing == nil {
				return "", false, fmt.Errorf("%w: 冲突后未找到已有请求", e.ErrStoreUnavailable)
			}
			return existing.Id, false, nil
		}
		return "", false, fmt.Errorf("%w: 写入引荐请求失败: %v", e.ErrStoreUnavailable, err)
	}

	if err := tx.Model(&model.RoundModel{}).Where("id = ?", roundId).
		Update("intro_request_count", gorm.Expr("intro_request_count + ?", 1)).Error; err != nil {
		tx.Rollback()
		return "", false, fmt.Errorf("%w: 更新引荐计数失败: %v", e.ErrStoreUnavailable, err)
	}

	if err := tx.Commit().Error; err != nil {
		return "", false, fmt.Errorf("%w: 提交引荐请求失败: %v", e.ErrStoreUnavailable, err)
	}

	return request.Id, true, nil
}

// HasIntroRequest 查询是否已提交过引荐请求
func (i *IntroRequestLogic) HasIntroRequest(investorId, roundId string) (bool, error) {
	var count int64
	if err := i.db.Model(&model.IntroRequestModel{}).
		Where("investor_id = ? AND round_id = ?", investorId, roundId).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: 查询引荐请求失败: %v", e.ErrStoreUnavailable, err)
	}
	return count > 0, nil
}

// GetIntroRequest 获取引荐请求详情
func (i *IntroRequestLogic) GetIntroRequest(id string) (*model.IntroRequestModel, error) {
	var request model.IntroRequestModel
	if err := i.db.First(&request, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: 引荐请求不存在", e.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: 获取引荐请求失败: %v", e.ErrStoreUnavailable, err)
	}
	return &request, nil
}

// ListIntroRequestsByRound 获取轮次收到的全部引荐请求
func (i *IntroRequestLogic) ListIntroRequestsByRound(roundId string) ([]model.IntroRequestModel, error) {
	var requests []model.IntroRequestModel
	if err := i.db.Where("round_id = ?", roundId).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("%w: 获取引荐请求列表失败: %v", e.ErrStoreUnavailable, err)
	}
	return requests, nil
}

// UpdateStatus 更新引荐请求状态，只校验枚举值，不限制状态间流转
func (i *IntroRequestLogic) UpdateStatus(id string, status model.IntroRequestStatus) error {
	if !model.ValidIntroRequestStatus(status) {
		return fmt.Errorf("%w: 无效的请求状态", e.ErrValidation)
	}

	result := i.db.Model(&model.IntroRequestModel{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("%w: 更新请求状态失败: %v", e.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: 引荐请求不存在", e.ErrNotFound)
	}
	return nil
}

// findByKey 按组合键查询已有请求，未找到返回 nil
func (i *IntroRequestLogic) findByKey(investorId, roundId string) (*model.IntroRequestModel, error) {
	var request model.IntroRequestModel
	err := i.db.Where("investor_id = ? AND round_id = ?", investorId, roundId).First(&request).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: 查询引荐请求失败: %v", e.ErrStoreUnavailable, err)
	}
	return &request, nil
}
