package logic

import (
	"testing"

	e "github.com/MuhammedMazinMH/FundFeed/internal/errors"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfile(t *testing.T) {
	db := setupTestDB(t)
	ul := NewUserLogic(db)

	// 首次认证创建档案
	require.NoError(t, ul.UpsertProfile("user-1", "Alice", model.UserRoleFounder))

	profile, err := ul.GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, model.UserRoleFounder, profile.Role)

	// 再次调用合并更新而不是报错
	require.NoError(t, ul.UpsertProfile("user-1", "Alice L", model.UserRoleBoth))

	profile, err = ul.GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice L", profile.Name)
	assert.Equal(t, model.UserRoleBoth, profile.Role)
}

func TestUpsertProfileDefaults(t *testing.T) {
	db := setupTestDB(t)
	ul := NewUserLogic(db)

	require.NoError(t, ul.UpsertProfile("user-1", "Bob", ""))

	profile, err := ul.GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, model.UserRoleInvestor, profile.Role, "role defaults to investor")
}

func TestUpsertProfileValidation(t *testing.T) {
	db := setupTestDB(t)
	ul := NewUserLogic(db)

	assert.ErrorIs(t, ul.UpsertProfile("", "Bob", model.UserRoleInvestor), e.ErrAuthRequired)
	assert.ErrorIs(t, ul.UpsertProfile("user-1", "Bob", "admin"), e.ErrValidation)

	_, err := ul.GetProfile("missing")
	assert.ErrorIs(t, err, e.ErrNotFound)
}
