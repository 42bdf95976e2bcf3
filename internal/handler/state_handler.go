package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/config"
	"github.com/spandan-mozumder/solfund/internal/logic"
)

// StateHandler 平台状态处理器
type StateHandler struct {
	stateLogic    *logic.StateLogic
	campaignLogic *logic.CampaignLogic
}

// NewStateHandler 创建平台状态处理器
func NewStateHandler(db *gorm.DB, ledgerCfg config.LedgerConfig) *StateHandler {
	return &StateHandler{
		stateLogic:    logic.NewStateLogic(db, ledgerCfg),
		campaignLogic: logic.NewCampaignLogic(db, ledgerCfg),
	}
}

// Initialize 初始化平台状态，调用者成为平台地址
func (h *StateHandler) Initialize(c *gin.Context) {
	caller := c.GetString(ContextCallerKey)

	state, err := h.stateLogic.Initialize(caller)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "平台初始化成功", ToStateResponse(state))
}

// UpdatePlatformSettings 更新平台手续费
func (h *StateHandler) UpdatePlatformSettings(c *gin.Context) {
	caller := c.GetString(ContextCallerKey)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.stateLogic.UpdatePlatformSettings(caller, req.NewPlatformFee); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "平台设置更新成功", nil)
}

// GetState 获取平台状态
func (h *StateHandler) GetState(c *gin.Context) {
	state, err := h.stateLogic.GetState()
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取平台状态成功", ToStateResponse(state))
}

// GetPlatformStats 获取全平台统计信息
func (h *StateHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.campaignLogic.GetPlatformStats()
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取平台统计信息成功", stats)
}
