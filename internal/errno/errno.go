package errno

// Errno 业务错误，带错误码
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// Decode 将任意 error 解析为错误码和消息
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	switch typed := err.(type) {
	case *Errno:
		return typed.Code, typed.Message
	case Errno:
		return typed.Code, typed.Message
	default:
		return InternalServerError.Code, err.Error()
	}
}

// 通用错误
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
	ErrDatabase         = Errno{Code: 10003, Message: "Database error"}
)

// 业务错误 (20000+)，消息沿用链上程序的错误定义
var (
	ErrAlreadyInitialized      = Errno{Code: 20001, Message: "The program has already been initialized."}
	ErrTitleTooLong            = Errno{Code: 20002, Message: "Title exceeds the maximum length of 64 characters."}
	ErrDescriptionTooLong      = Errno{Code: 20003, Message: "Description exceeds the maximum length of 512 characters."}
	ErrImageUrlTooLong         = Errno{Code: 20004, Message: "Image URL exceeds the maximum length of 256 characters."}
	ErrInvalidGoalAmount       = Errno{Code: 20005, Message: "Invalid goal amount. Goal must be greater than zero."}
	ErrUnauthorized            = Errno{Code: 20006, Message: "Unauthorized access."}
	ErrCampaignNotFound        = Errno{Code: 20007, Message: "Campaign not found."}
	ErrInactiveCampaign        = Errno{Code: 20008, Message: "Campaign is inactive."}
	ErrInvalidDonationAmount   = Errno{Code: 20009, Message: "Donation amount must be at least 1 SOL."}
	ErrCampaignGoalActualized  = Errno{Code: 20010, Message: "Campaign goal reached."}
	ErrInvalidWithdrawalAmount = Errno{Code: 20011, Message: "Withdrawal amount must be at least 1 SOL."}
	ErrInsufficientFund        = Errno{Code: 20012, Message: "Insufficient funds in the campaign."}
	ErrInvalidPlatformAddress  = Errno{Code: 20013, Message: "The provided platform address is invalid."}
	ErrInvalidPlatformFee      = Errno{Code: 20014, Message: "Invalid platform fee percentage."}
)
