package handler

import (
	"net/http"
	"strconv"

	"github.com/MuhammedMazinMH/FundFeed/internal/auth"
	"github.com/MuhammedMazinMH/FundFeed/internal/logic"
	"github.com/MuhammedMazinMH/FundFeed/internal/model"
	"github.com/gin-gonic/gin"
)

type RoundHandler struct {
	roundLogic *logic.RoundLogic
}

func NewRoundHandler(roundLogic *logic.RoundLogic) *RoundHandler {
	return &RoundHandler{roundLogic: roundLogic}
}

// CreateRound 创建融资轮次
func (h *RoundHandler) CreateRound(c *gin.Context) {
	var req CreateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	round := model.RoundModel{
		CompanyName:   req.CompanyName,
		Description:   req.Description,
		RaisingAmount: req.RaisingAmount,
		Currency:      req.Currency,
		LogoURL:       req.LogoURL,
		DeckURL:       req.DeckURL,
	}

	// 调用logic层创建轮次，创始人身份来自令牌
	if err := h.roundLogic.CreateRound(auth.CallerID(c), &round); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "轮次创建成功", ToRoundResponse(&round))
}

// GetTrending 获取趋势榜
func (h *RoundHandler) GetTrending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rounds, err := h.roundLogic.ListTrending(limit)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"rounds": ToRoundResponseList(rounds)})
}

// GetRound 获取单个轮次详情
func (h *RoundHandler) GetRound(c *gin.Context) {
	round, err := h.roundLogic.GetRound(c.Param("id"))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", ToRoundResponse(round))
}

// GetMyRounds 获取当前用户发布的轮次
func (h *RoundHandler) GetMyRounds(c *gin.Context) {
	rounds, err := h.roundLogic.ListRoundsByFounder(auth.CallerID(c))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"rounds": ToRoundResponseList(rounds)})
}

// UpdateRound 更新轮次内容字段
func (h *RoundHandler) UpdateRound(c *gin.Context) {
	var req UpdateRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// 只允许更新内容字段
	updates := make(map[string]interface{})
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.RaisingAmount != nil {
		updates["raising_amount"] = *req.RaisingAmount
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.DeckURL != nil {
		updates["deck_url"] = *req.DeckURL
	}

	if err := h.roundLogic.UpdateRound(c.Param("id"), auth.CallerID(c), updates); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "轮次更新成功", nil)
}

// DeleteRound 删除轮次及其关联记录
func (h *RoundHandler) DeleteRound(c *gin.Context) {
	if err := h.roundLogic.DeleteRound(c.Param("id"), auth.CallerID(c)); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "轮次已删除", nil)
}
