package handler

import (
	"net/http"

	"github.com/MuhammedMazinMH/FundFeed/internal/auth"
	"github.com/MuhammedMazinMH/FundFeed/internal/logic"
	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followLogic *logic.FollowLogic
}

func NewFollowHandler(followLogic *logic.FollowLogic) *FollowHandler {
	return &FollowHandler{followLogic: followLogic}
}

// Follow 关注轮次
func (h *FollowHandler) Follow(c *gin.Context) {
	if err := h.followLogic.Follow(auth.CallerID(c), c.Param("id")); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "已关注", nil)
}

// Unfollow 取消关注轮次
func (h *FollowHandler) Unfollow(c *gin.Context) {
	if err := h.followLogic.Unfollow(auth.CallerID(c), c.Param("id")); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "已取消关注", nil)
}

// GetFollowState 查询当前用户对轮次的关注状态
func (h *FollowHandler) GetFollowState(c *gin.Context) {
	following, err := h.followLogic.IsFollowing(auth.CallerID(c), c.Param("id"))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"following": following})
}

// GetMyFollows 获取当前用户关注的轮次ID列表
func (h *FollowHandler) GetMyFollows(c *gin.Context) {
	roundIds, err := h.followLogic.ListFollowedRounds(auth.CallerID(c))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"round_ids": roundIds})
}
