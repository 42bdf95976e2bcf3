package model

import (
	"time"
)

// LedgerAccountModel 原生资金账户，地址即记录地址或外部身份地址
// 记录账户中保留的租金押金由台账层维护，不计入活动的逻辑余额
type LedgerAccountModel struct {
	Address   string    `json:"address" gorm:"primaryKey"`
	Balance   uint64    `json:"balance" gorm:"default:0"` // 实际持有的最小原生单位
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 自定义表名
func (LedgerAccountModel) TableName() string {
	return "ledger_account"
}
