package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spandan-mozumder/solfund/internal/errno"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// FailWith 按业务错误码映射 HTTP 状态后返回错误响应
func FailWith(c *gin.Context, err error) {
	code, message := errno.Decode(err)
	c.JSON(statusFromCode(code), Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// statusFromCode 业务错误码到 HTTP 状态码
func statusFromCode(code int) int {
	switch code {
	case errno.ErrBind.Code,
		errno.ErrTitleTooLong.Code,
		errno.ErrDescriptionTooLong.Code,
		errno.ErrImageUrlTooLong.Code,
		errno.ErrInvalidGoalAmount.Code,
		errno.ErrInvalidDonationAmount.Code,
		errno.ErrInvalidWithdrawalAmount.Code,
		errno.ErrInvalidPlatformFee.Code,
		errno.ErrInvalidPlatformAddress.Code,
		errno.ErrInsufficientFund.Code:
		return http.StatusBadRequest
	case errno.ErrUnauthorized.Code:
		return http.StatusForbidden
	case errno.ErrCampaignNotFound.Code:
		return http.StatusNotFound
	case errno.ErrAlreadyInitialized.Code,
		errno.ErrInactiveCampaign.Code,
		errno.ErrCampaignGoalActualized.Code:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
