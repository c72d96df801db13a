package logic

import (
	"testing"

	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// setupTestDB 初始化内存 sqlite 测试库
// 连接数限制为1：内存库每个新连接是独立的库，且避免并发写时的 busy 错误
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.RoundModel{},
		&model.UserProfileModel{},
		&model.FollowModel{},
		&model.IntroRequestModel{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedRound 直接写入一条轮次记录，绕过业务校验
func seedRound(t *testing.T, db *gorm.DB, round *model.RoundModel) {
	t.Helper()
	require.NoError(t, db.Create(round).Error, "failed to seed round")
}
