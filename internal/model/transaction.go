package model

import (
	"time"
)

// TransactionModel 资金进出凭证，每次捐赠或提现写入一条，只追加不修改
type TransactionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Address   string `json:"address" gorm:"uniqueIndex;not null"` // 由 (标签, 身份, 活动ID, 序号) 派生
	Cid       uint64 `json:"cid" gorm:"not null;index"`
	Owner     string `json:"owner" gorm:"not null;index"` // 捐赠人或提现的创建者
	Amount    uint64 `json:"amount" gorm:"not null"`
	Timestamp uint64 `json:"timestamp" gorm:"not null"`
	Credited  bool   `json:"credited" gorm:"not null"` // true 入账(捐赠)，false 出账(提现)
}

// TableName 自定义表名
func (TransactionModel) TableName() string {
	return "transaction_record"
}
