package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/config"
	"github.com/spandan-mozumder/solfund/internal/logic"
)

// CampaignHandler 活动处理器
type CampaignHandler struct {
	campaignLogic *logic.CampaignLogic
}

// NewCampaignHandler 创建活动处理器
func NewCampaignHandler(db *gorm.DB, ledgerCfg config.LedgerConfig) *CampaignHandler {
	return &CampaignHandler{
		campaignLogic: logic.NewCampaignLogic(db, ledgerCfg),
	}
}

// CreateCampaign 创建活动
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	caller := c.GetString(ContextCallerKey)

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	campaign, err := h.campaignLogic.CreateCampaign(caller, req.Title, req.Description, req.ImageURL, req.Goal)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "活动创建成功", ToCampaignResponse(campaign))
}

// UpdateCampaign 更新活动
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	caller := c.GetString(ContextCallerKey)

	cid, err := strconv.ParseUint(c.Param("cid"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.campaignLogic.UpdateCampaign(caller, cid, req.Title, req.Description, req.ImageURL, req.Goal); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动更新成功", nil)
}

// DeleteCampaign 软删除活动
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	caller := c.GetString(ContextCallerKey)

	cid, err := strconv.ParseUint(c.Param("cid"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	if err := h.campaignLogic.DeleteCampaign(caller, cid); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动已删除", nil)
}

// GetCampaign 获取活动详情
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	cid, err := strconv.ParseUint(c.Param("cid"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	campaign, err := h.campaignLogic.GetCampaign(cid)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动详情成功", ToCampaignResponse(campaign))
}

// GetCampaigns 获取活动列表
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	status := c.Query("status")
	creator := c.Query("creator")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	campaigns, total, err := h.campaignLogic.GetCampaigns(status, creator, page, pageSize)
	if err != nil {
		FailWith(c, err)
		return
	}

	pagination := Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}

	SuccessResponse(c, http.StatusOK, "获取活动列表成功", GetCampaignsResponse{
		Campaigns:  ToCampaignResponseList(campaigns),
		Pagination: pagination,
	})
}

// GetCampaignStats 获取活动统计信息
func (h *CampaignHandler) GetCampaignStats(c *gin.Context) {
	cid, err := strconv.ParseUint(c.Param("cid"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	stats, err := h.campaignLogic.GetCampaignStats(cid)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动统计信息成功", stats)
}
