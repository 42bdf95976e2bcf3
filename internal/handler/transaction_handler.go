package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/config"
	"github.com/spandan-mozumder/solfund/internal/identity"
	"github.com/spandan-mozumder/solfund/internal/logic"
)

// TransactionHandler 捐赠和提现处理器
type TransactionHandler struct {
	transactionLogic *logic.TransactionLogic
}

// NewTransactionHandler 创建捐赠和提现处理器
func NewTransactionHandler(db *gorm.DB, ledgerCfg config.LedgerConfig) *TransactionHandler {
	return &TransactionHandler{
		transactionLogic: logic.NewTransactionLogic(db, ledgerCfg),
	}
}

// Donate 向活动捐赠
func (h *TransactionHandler) Donate(c *gin.Context) {
	caller := c.GetString(ContextCallerKey)

	cid, err := strconv.ParseUint(c.Param("cid"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.transactionLogic.Donate(caller, cid, req.Amount)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "捐赠成功", ToTransactionResponse(record))
}

// Withdraw 创建者提现
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	caller := c.GetString(ContextCallerKey)

	cid, err := strconv.ParseUint(c.Param("cid"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.transactionLogic.Withdraw(caller, cid, req.Amount, req.PlatformAddress)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "提现成功", ToTransactionResponse(record))
}

// GetCampaignTransactions 获取活动的凭证列表
func (h *TransactionHandler) GetCampaignTransactions(c *gin.Context) {
	cid, err := strconv.ParseUint(c.Param("cid"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	records, total, err := h.transactionLogic.GetCampaignTransactions(cid, page, pageSize)
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

	SuccessResponse(c, http.StatusOK, "获取活动凭证成功", GetTransactionsResponse{
		Transactions: ToTransactionResponseList(records),
		Pagination:   pagination,
	})
}

// GetOwnerTransactions 获取某个身份名下的凭证列表
func (h *TransactionHandler) GetOwnerTransactions(c *gin.Context) {
	owner := identity.Normalize(c.Param("address"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	records, total, err := h.transactionLogic.GetOwnerTransactions(owner, page, pageSize)
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

	SuccessResponse(c, http.StatusOK, "获取身份凭证成功", GetTransactionsResponse{
		Transactions: ToTransactionResponseList(records),
		Pagination:   pagination,
	})
}
