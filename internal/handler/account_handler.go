package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/identity"
	"github.com/spandan-mozumder/solfund/internal/logic"
)

// AccountHandler 资金账户处理器
type AccountHandler struct {
	accountLogic *logic.AccountLogic
}

// NewAccountHandler 创建资金账户处理器
func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{
		accountLogic: logic.NewAccountLogic(db),
	}
}

// Deposit 向身份账户入金
func (h *AccountHandler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if !identity.IsValid(req.Address) {
		ErrorResponse(c, http.StatusBadRequest, "无效的账户地址")
		return
	}

	account, err := h.accountLogic.Deposit(identity.Normalize(req.Address), req.Amount)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "入金成功", AccountResponse{
		Address: account.Address,
		Balance: account.Balance,
	})
}

// GetBalance 查询账户余额
func (h *AccountHandler) GetBalance(c *gin.Context) {
	address := c.Param("address")
	if !identity.IsValid(address) {
		ErrorResponse(c, http.StatusBadRequest, "无效的账户地址")
		return
	}

	balance, err := h.accountLogic.GetBalance(identity.Normalize(address))
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "查询余额成功", AccountResponse{
		Address: identity.Normalize(address),
		Balance: balance,
	})
}
