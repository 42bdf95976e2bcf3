package handler

import (
	"time"

	"github.com/spandan-mozumder/solfund/internal/model"
)

// ContextCallerKey 签名中间件写入的调用者身份
const ContextCallerKey = "caller"

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 分页信息结构
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// 请求模型

// CreateCampaignRequest 创建活动请求
type CreateCampaignRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Goal        uint64 `json:"goal" binding:"required"`
}

// UpdateCampaignRequest 更新活动请求
type UpdateCampaignRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Goal        uint64 `json:"goal" binding:"required"`
}

// DonateRequest 捐赠请求
type DonateRequest struct {
	Amount uint64 `json:"amount" binding:"required"`
}

// WithdrawRequest 提现请求
type WithdrawRequest struct {
	Amount          uint64 `json:"amount" binding:"required"`
	PlatformAddress string `json:"platform_address" binding:"required"`
}

// UpdateSettingsRequest 更新平台设置请求
type UpdateSettingsRequest struct {
	NewPlatformFee uint64 `json:"new_platform_fee" binding:"required"`
}

// DepositRequest 入金请求
type DepositRequest struct {
	Address string `json:"address" binding:"required"`
	Amount  uint64 `json:"amount" binding:"required"`
}

// 响应模型

// StateResponse 平台状态响应模型
type StateResponse struct {
	Address         string `json:"address"`
	Initialized     bool   `json:"initialized"`
	CampaignCount   uint64 `json:"campaignCount"`
	PlatformFee     uint64 `json:"platformFee"`
	PlatformAddress string `json:"platformAddress"`
}

// CampaignResponse 活动响应模型
type CampaignResponse struct {
	Cid          uint64    `json:"cid"`
	Address      string    `json:"address"`
	Creator      string    `json:"creator"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Goal         uint64    `json:"goal"`
	AmountRaised uint64    `json:"amountRaised"`
	Balance      uint64    `json:"balance"`
	Donors       uint64    `json:"donors"`
	Withdrawals  uint64    `json:"withdrawals"`
	Timestamp    uint64    `json:"timestamp"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TransactionResponse 凭证响应模型
type TransactionResponse struct {
	Address   string `json:"address"`
	Cid       uint64 `json:"cid"`
	Owner     string `json:"owner"`
	Amount    uint64 `json:"amount"`
	Timestamp uint64 `json:"timestamp"`
	Credited  bool   `json:"credited"`
}

// AccountResponse 资金账户响应模型
type AccountResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// GetCampaignsResponse 活动列表响应
type GetCampaignsResponse struct {
	Campaigns  []CampaignResponse `json:"campaigns"`
	Pagination Pagination         `json:"pagination"`
}

// GetTransactionsResponse 凭证列表响应
type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// 转换函数

// ToStateResponse 将平台状态数据库模型转换为响应模型
func ToStateResponse(state *model.ProgramStateModel) StateResponse {
	return StateResponse{
		Address:         state.Address,
		Initialized:     state.Initialized,
		CampaignCount:   state.CampaignCount,
		PlatformFee:     state.PlatformFee,
		PlatformAddress: state.PlatformAddress,
	}
}

// ToCampaignResponse 将活动数据库模型转换为响应模型
func ToCampaignResponse(campaign *model.CampaignModel) CampaignResponse {
	return CampaignResponse{
		Cid:          campaign.Cid,
		Address:      campaign.Address,
		Creator:      campaign.Creator,
		Title:        campaign.Title,
		Description:  campaign.Description,
		ImageURL:     campaign.ImageURL,
		Goal:         campaign.Goal,
		AmountRaised: campaign.AmountRaised,
		Balance:      campaign.Balance,
		Donors:       campaign.Donors,
		Withdrawals:  campaign.Withdrawals,
		Timestamp:    campaign.Timestamp,
		Active:       campaign.Active,
		CreatedAt:    campaign.CreatedAt,
		UpdatedAt:    campaign.UpdatedAt,
	}
}

// ToCampaignResponseList 将活动数据库模型列表转换为响应模型列表
func ToCampaignResponseList(campaigns []model.CampaignModel) []CampaignResponse {
	result := make([]CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		result[i] = ToCampaignResponse(&campaign)
	}
	return result
}

// ToTransactionResponse 将凭证数据库模型转换为响应模型
func ToTransactionResponse(record *model.TransactionModel) TransactionResponse {
	return TransactionResponse{
		Address:   record.Address,
		Cid:       record.Cid,
		Owner:     record.Owner,
		Amount:    record.Amount,
		Timestamp: record.Timestamp,
		Credited:  record.Credited,
	}
}

// ToTransactionResponseList 将凭证数据库模型列表转换为响应模型列表
func ToTransactionResponseList(records []model.TransactionModel) []TransactionResponse {
	result := make([]TransactionResponse, len(records))
	for i, record := range records {
		result[i] = ToTransactionResponse(&record)
	}
	return result
}
