package handler

import (
	"net/http"

	"github.com/MuhammedMazinMH/FundFeed/internal/auth"
	"github.com/MuhammedMazinMH/FundFeed/internal/logic"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userLogic *logic.UserLogic
}

func NewUserHandler(userLogic *logic.UserLogic) *UserHandler {
	return &UserHandler{userLogic: userLogic}
}

// UpsertProfile 保存当前用户档案，首次调用即创建
func (h *UserHandler) UpsertProfile(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userLogic.UpsertProfile(auth.CallerID(c), req.Name, model.UserRole(req.Role)); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "用户档案已保存", nil)
}

// GetProfile 获取当前用户档案
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userLogic.GetProfile(auth.CallerID(c))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", ToUserProfileResponse(profile))
}
