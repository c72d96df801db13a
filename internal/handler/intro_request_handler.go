package handler

import (
	"net/http"

	"github.com/MuhammedMazinMH/FundFeed/internal/auth"
	"github.com/MuhammedMazinMH/FundFeed/internal/logic"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/gin-gonic/gin"
)

type IntroRequestHandler struct {
	introLogic *logic.IntroRequestLogic
}

func NewIntroRequestHandler(introLogic *logic.IntroRequestLogic) *IntroRequestHandler {
	return &IntroRequestHandler{introLogic: introLogic}
}

// CreateIntroRequest 提交引荐请求
// 重复提交返回 200 和已有请求ID，首次提交返回 201
func (h *IntroRequestHandler) CreateIntroRequest(c *gin.Context) {
	var req CreateIntroRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.RoundId == "" {
		ErrorResponse(c, http.StatusBadRequest, "轮次ID不能为空")
		return
	}
	if req.StartupName == "" {
		ErrorResponse(c, http.StatusBadRequest, "公司名称不能为空")
		return
	}

	id, created, err := h.introLogic.RequestIntro(auth.CallerID(c), req.RoundId, req.StartupName)
	if err != nil {
		FailWith(c, err)
		return
	}

	if !created {
		SuccessResponse(c, http.StatusOK, "已提交过引荐请求", gin.H{"request_id": id})
		return
	}

	SuccessResponse(c, http.StatusCreated, "引荐请求已提交", gin.H{"request_id": id})
}

// GetIntroRequestState 查询当前用户对轮次是否已提交引荐请求
func (h *IntroRequestHandler) GetIntroRequestState(c *gin.Context) {
	requested, err := h.introLogic.HasIntroRequest(auth.CallerID(c), c.Param("id"))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"requested": requested})
}

// GetRoundIntroRequests 获取轮次收到的引荐请求列表
func (h *IntroRequestHandler) GetRoundIntroRequests(c *gin.Context) {
	requests, err := h.introLogic.ListIntroRequestsByRound(c.Param("id"))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"requests": ToIntroRequestResponseList(requests)})
}

// UpdateIntroRequestStatus 更新引荐请求状态
func (h *IntroRequestHandler) UpdateIntroRequestStatus(c *gin.Context) {
	var req UpdateIntroRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.introLogic.UpdateStatus(c.Param("id"), model.IntroRequestStatus(req.Status)); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "请求状态已更新", nil)
}
