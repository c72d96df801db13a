package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/MuhammedMazinMH/FundFeed/internal/config"
	"github.com/MuhammedMazinMH/FundFeed/internal/logger"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// CounterReconcileJob 计数对账任务
// 以关注关系表和引荐请求表为准，重算每个轮次的派生计数并修正漂移
// 请求路径上的局部失败（关系已写入而计数未更新）由该任务兜底修复
type CounterReconcileJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewCounterReconcileJob 创建计数对账任务
func NewCounterReconcileJob(db *gorm.DB, cfg *config.Config) *CounterReconcileJob {
	return &CounterReconcileJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *CounterReconcileJob) GetName() string {
	return "counter_reconciler"
}

// GetSchedule 获取调度配置
func (j *CounterReconcileJob) GetSchedule() gocron.JobDefinition {
	interval := j.config.Scheduler.ReconcileInterval
	if interval <= 0 {
		interval = 300
	}
	return gocron.DurationJob(time.Duration(interval) * time.Second)
}

// Execute 执行任务
func (j *CounterReconcileJob) Execute() {
	logger.Info("Starting counter reconciliation task")

	var roundIds []string
	if err := j.db.Model(&model.RoundModel{}).Pluck("id", &roundIds).Error; err != nil {
		logger.Error("Failed to fetch round ids: %v", err)
		return
	}

	workers := j.config.Scheduler.Workers
	if workers <= 0 {
		workers = 8
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		logger.Error("Failed to create worker pool: %v", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var fixedCount int64

	for _, roundId := range roundIds {
		roundId := roundId
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			fixed, err := j.ReconcileRound(roundId)
			if err != nil {
				logger.Error("Failed to reconcile round %s: %v", roundId, err)
				return
			}
			if fixed {
				atomic.AddInt64(&fixedCount, 1)
			}
		})
		if err != nil {
			wg.Done()
			logger.Error("Failed to submit reconcile task: %v", err)
		}
	}

	wg.Wait()
	logger.Info("Counter reconciliation completed. Checked %d rounds, fixed %d", len(roundIds), atomic.LoadInt64(&fixedCount))
}

// ReconcileRound 重算单个轮次的计数，有漂移时回写，返回是否发生修正
func (j *CounterReconcileJob) ReconcileRound(roundId string) (bool, error) {
	var round model.RoundModel
	if err := j.db.First(&round, "id = ?", roundId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// 轮次在任务执行期间被删除，跳过
			return false, nil
		}
		return false, err
	}

	var followerCount int64
	if err := j.db.Model(&model.FollowModel{}).
		Where("round_id = ?", roundId).
		Count(&followerCount).Error; err != nil {
		return false, err
	}

	var introCount int64
	if err := j.db.Model(&model.IntroRequestModel{}).
		Where("round_id = ?", roundId).
		Count(&introCount).Error; err != nil {
		return false, err
	}

	if round.FollowerCount == followerCount && round.IntroRequestCount == introCount {
		return false, nil
	}

	logger.Warn("Counter drift on round %s: follower %d -> %d, intro %d -> %d",
		roundId, round.FollowerCount, followerCount, round.IntroRequestCount, introCount)

	if err := j.db.Model(&model.RoundModel{}).Where("id = ?", roundId).
		Updates(map[string]interface{}{
			"follower_count":      followerCount,
			"intro_request_count": introCount,
		}).Error; err != nil {
		return false, err
	}

	return true, nil
}
