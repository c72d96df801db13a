package logic

import (
	"sync"
	"testing"

	e "github.com/MuhammedMazinMH/FundFeed/internal/errors"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequestIntroIdempotent 同一组合键重复提交返回同一ID，计数只加一次
func TestRequestIntroIdempotent(t *testing.T) {
	db := setupTestDB(t)
	rl := NewRoundLogic(db, nil)
	il := NewIntroRequestLogic(db)

	round := model.RoundModel{CompanyName: "Acme", Description: "d", RaisingAmount: 100, Currency: "USD"}
	require.NoError(t, rl.CreateRound("founder-1", &round))

	firstId, created, err := il.RequestIntro("investor-1", round.Id, "Acme")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, firstId)

	secondId, created, err := il.RequestIntro("investor-1", round.Id, "Acme")
	require.NoError(t, err, "duplicate submission must not surface an error")
	assert.False(t, created)
	assert.Equal(t, firstId, secondId, "all calls must return the same request id")

	var rowCount int64
	require.NoError(t, db.Model(&model.IntroRequestModel{}).
		Where("investor_id = ? AND round_id = ?", "investor-1", round.Id).
		Count(&rowCount).Error)
	assert.Equal(t, int64(1), rowCount, "exactly one stored request per pair")

	stored, err := rl.GetRound(round.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.IntroRequestCount)
}

// TestRequestIntroConcurrent 并发重复提交也只落一条记录
func TestRequestIntroConcurrent(t *testing.T) {
	db := setupTestDB(t)
	rl := NewRoundLogic(db, nil)
	il := NewIntroRequestLogic(db)

	round := model.RoundModel{CompanyName: "Acme", Description: "d", RaisingAmount: 100, Currency: "USD"}
	require.NoError(t, rl.CreateRound("founder-1", &round))

	const n = 5
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, _, err := il.RequestIntro("investor-1", round.Id, "Acme")
			assert.NoError(t, err)
			ids[i] = id
		}()
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id, "every call must observe the same request id")
	}

	var rowCount int64
	require.NoError(t, db.Model(&model.IntroRequestModel{}).
		Where("investor_id = ? AND round_id = ?", "investor-1", round.Id).
		Count(&rowCount).Error)
	assert.Equal(t, int64(1), rowCount)

	stored, err := rl.GetRound(round.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.IntroRequestCount)
}

func TestRequestIntroValidation(t *testing.T) {
	db := setupTestDB(t)
	rl := NewRoundLogic(db, nil)
	il := NewIntroRequestLogic(db)

	round := model.RoundModel{CompanyName: "Acme", Description: "d", RaisingAmount: 100, Currency: "USD"}
	require.NoError(t, rl.CreateRound("founder-1", &round))

	_, _, err := il.RequestIntro("", round.Id, "Acme")
	assert.ErrorIs(t, err, e.ErrAuthRequired)

	_, _, err = il.RequestIntro("investor-1", "", "Acme")
	assert.ErrorIs(t, err, e.ErrValidation)

	_, _, err = il.RequestIntro("investor-1", round.Id, "")
	assert.ErrorIs(t, err, e.ErrValidation)

	_, _, err = il.RequestIntro("investor-1", "missing", "Acme")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

// TestRequestIntroIndependentPairs 不同组合键互不影响
func TestRequestIntroIndependentPairs(t *testing.T) {
	db := setupTestDB(t)
	rl := NewRoundLogic(db, nil)
	il := NewIntroRequestLogic(db)

	r1 := model.RoundModel{CompanyName: "A", Description: "d", RaisingAmount: 1, Currency: "USD"}
	r2 := model.RoundModel{CompanyName: "B", Description: "d", RaisingAmount: 1, Currency: "USD"}
	require.NoError(t, rl.CreateRound("founder-1", &r1))
	require.NoError(t, rl.CreateRound("founder-1", &r2))

	id1, created, err := il.RequestIntro("investor-1", r1.Id, "A")
	require.NoError(t, err)
	assert.True(t, created)

	id2, created, err := il.RequestIntro("investor-2", r1.Id, "A")
	require.NoError(t, err)
	assert.True(t, created)

	id3, created, err := il.RequestIntro("investor-1", r2.Id, "B")
	require.NoError(t, err)
	assert.True(t, created)

	assert.NotEqual(t, id1, id2)
	assert.NotEqual(t, id1, id3)

	stored, err := rl.GetRound(r1.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.IntroRequestCount)
}

// TestRequestIntroFieldCompleteness 落库记录字段齐全
func TestRequestIntroFieldCompleteness(t *testing.T) {
	db := setupTestDB(t)
	rl := NewRoundLogic(db, nil)
	il := NewIntroRequestLogic(db)

	round := model.RoundModel{CompanyName: "Acme", Description: "d", RaisingAmount: 100, Currency: "USD"}
	require.NoError(t, rl.CreateRound("founder-1", &round))

	id, _, err := il.RequestIntro("investor-1", round.Id, "Acme")
	require.NoError(t, err)

	stored, err := il.GetIntroRequest(id)
	require.NoError(t, err)
	assert.Equal(t, "investor-1", stored.InvestorId)
	assert.Equal(t, round.Id, stored.RoundId)
	assert.Equal(t, "Acme", stored.StartupName)
	assert.Equal(t, model.IntroRequestStatusPending, stored.Status)
	assert.False(t, stored.CreatedAt.IsZero())
}

// TestStartupNameSnapshot 公司名是请求时刻的快照，轮次改名后不回填
func TestStartupNameSnapshot(t *testing.T) {
	db := setupTestDB(t)
	rl := NewRoundLogic(db, nil)
	il := NewIntroRequestLogic(db)

	round := model.RoundModel{CompanyName: "Acme", Description: "d", RaisingAmount: 100, Currency: "USD"}
	require.NoError(t, rl.CreateRound("founder-1", &round))

	id, _, err := il.RequestIntro("investor-1", round.Id, "Acme")
	require.NoError(t, err)

	require.NoError(t, rl.UpdateRound(round.Id, "founder-1", map[string]interface{}{"company_name": "Acme Labs"}))

	stored, err := il.GetIntroRequest(id)
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.StartupName)
}

func TestUpdateIntroRequestStatus(t *testing.T) {
	db := setupTestDB(t)
	rl := NewRoundLogic(db, nil)
	il := NewIntroRequestLogic(db)

	round := model.RoundModel{CompanyName: "Acme", Description: "d", RaisingAmount: 100, Currency: "USD"}
	require.NoError(t, rl.CreateRound("founder-1", &round))

	id, _, err := il.RequestIntro("investor-1", round.Id, "Acme")
	require.NoError(t, err)

	require.NoError(t, il.UpdateStatus(id, model.IntroRequestStatusAccepted))
	stored, err := il.GetIntroRequest(id)
	require.NoError(t, err)
	assert.Equal(t, model.IntroRequestStatusAccepted, stored.Status)

	// 状态间不限制流转方向
	require.NoError(t, il.UpdateStatus(id, model.IntroRequestStatusPending))

	assert.ErrorIs(t, il.UpdateStatus(id, "bogus"), e.ErrValidation)
	assert.ErrorIs(t, il.UpdateStatus("missing", model.IntroRequestStatusDeclined), e.ErrNotFound)
}
