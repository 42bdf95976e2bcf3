package model

import (
	"time"
)

// CampaignModel 众筹活动记录
type CampaignModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Address string `json:"address" gorm:"uniqueIndex;not null"` // 由活动ID派生
	Cid     uint64 `json:"cid" gorm:"uniqueIndex;not null"`     // 全局唯一，顺序分配，永不复用
	Creator string `json:"creator" gorm:"not null;index"`       // 创建后不可变

	// 基本信息
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`

	// 资金信息，单位为最小原生单位
	Goal         uint64 `json:"goal" gorm:"not null"`
	AmountRaised uint64 `json:"amount_raised" gorm:"default:0"` // 历史累计捐赠，只增不减
	Balance      uint64 `json:"balance" gorm:"default:0"`       // 当前托管余额 = 累计捐赠 - 累计提现

	// 事件计数，兼作凭证记录的地址派生盐
	Donors      uint64 `json:"donors" gorm:"default:0"`
	Withdrawals uint64 `json:"withdrawals" gorm:"default:0"`

	Timestamp uint64 `json:"timestamp" gorm:"not null"` // 创建时间，不可变
	Active    bool   `json:"active" gorm:"default:true"` // 仅允许 true→false 的软删除
}

// TableName 自定义表名
func (CampaignModel) TableName() string {
	return "campaign"
}
