package handler

import (
	"time"

	"github.com/MuhammedMazinMH/FundFeed/internal/model"
)

// 轮次相关响应模型

// RoundResponse 轮次响应模型
type RoundResponse struct {
	Id                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	Description       string    `json:"description"`
	LogoURL           string    `json:"logoUrl"`
	DeckURL           string    `json:"deckUrl"`
	RaisingAmount     int64     `json:"raisingAmount"`
	Currency          string    `json:"currency"`
	FounderId         string    `json:"founderId"`
	FollowerCount     int64     `json:"followerCount"`
	IntroRequestCount int64     `json:"introRequestCount"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IntroRequestResponse 引荐请求响应模型
type IntroRequestResponse struct {
	Id          string    `json:"id"`
	InvestorId  string    `json:"investorId"`
	RoundId     string    `json:"roundId"`
	StartupName string    `json:"startupName"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserProfileResponse 用户档案响应模型
type UserProfileResponse struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// 请求体模型

// CreateRoundRequest 创建轮次请求体
type CreateRoundRequest struct {
	CompanyName   string `json:"company_name" binding:"required"`
	Description   string `json:"description" binding:"required"`
	RaisingAmount int64  `json:"raising_amount" binding:"required"`
	Currency      string `json:"currency" binding:"required"`
	LogoURL       string `json:"logo_url"`
	DeckURL       string `json:"deck_url"`
}

// UpdateRoundRequest 更新轮次请求体，nil 字段不更新
type UpdateRoundRequest struct {
	CompanyName   *string `json:"company_name"`
	Description   *string `json:"description"`
	RaisingAmount *int64  `json:"raising_amount"`
	Currency      *string `json:"currency"`
	LogoURL       *string `json:"logo_url"`
	DeckURL       *string `json:"deck_url"`
}

// CreateIntroRequestRequest 提交引荐请求请求体
type CreateIntroRequestRequest struct {
	RoundId     string `json:"round_id"`
	StartupName string `json:"startup_name"`
}

// UpdateIntroRequestStatusRequest 更新引荐请求状态请求体
type UpdateIntroRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpsertProfileRequest 保存用户档案请求体
type UpsertProfileRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// 转换函数

// ToRoundResponse 将数据库模型转换为响应模型
func ToRoundResponse(round *model.RoundModel) RoundResponse {
	return RoundResponse{
		Id:                round.Id,
		CompanyName:       round.CompanyName,
		Description:       round.Description,
		LogoURL:           round.LogoURL,
		DeckURL:           round.DeckURL,
		RaisingAmount:     round.RaisingAmount,
		Currency:          round.Currency,
		FounderId:         round.FounderId,
		FollowerCount:     round.FollowerCount,
		IntroRequestCount: round.IntroRequestCount,
		CreatedAt:         round.CreatedAt,
		UpdatedAt:         round.UpdatedAt,
	}
}

// ToRoundResponseList 将数据库模型列表转换为响应模型列表
func ToRoundResponseList(rounds []model.RoundModel) []RoundResponse {
	result := make([]RoundResponse, len(rounds))
	for i, round := range rounds {
		result[i] = ToRoundResponse(&round)
	}
	return result
}

// ToIntroRequestResponse 将引荐请求数据库模型转换为响应模型
func ToIntroRequestResponse(request *model.IntroRequestModel) IntroRequestResponse {
	return IntroRequestResponse{
		Id:          request.Id,
		InvestorId:  request.InvestorId,
		RoundId:     request.RoundId,
		StartupName: request.StartupName,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
	}
}

// ToIntroRequestResponseList 将引荐请求数据库模型列表转换为响应模型列表
func ToIntroRequestResponseList(requests []model.IntroRequestModel) []IntroRequestResponse {
	result := make([]IntroRequestResponse, len(requests))
	for i, request := range requests {
		result[i] = ToIntroRequestResponse(&request)
	}
	return result
}

// ToUserProfileResponse 将用户档案数据库模型转换为响应模型
func ToUserProfileResponse(profile *model.UserProfileModel) UserProfileResponse {
	return UserProfileResponse{
		Id:   profile.Id,
		Name: profile.Name,
		Role: string(profile.Role),
	}
}
