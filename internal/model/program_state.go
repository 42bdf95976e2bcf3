package model

import (
	"time"
)

// ProgramStateModel 平台全局状态，单例记录
type ProgramStateModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Address         string `json:"address" gorm:"uniqueIndex;not null"` // 派生地址
	Initialized     bool   `json:"initialized" gorm:"not null"`
	CampaignCount   uint64 `json:"campaign_count" gorm:"default:0"` // 活动ID来源，只增不减
	PlatformFee     uint64 `json:"platform_fee" gorm:"not null"`    // 整数百分比，1-15
	PlatformAddress string `json:"platform_address" gorm:"not null"`
}

// TableName 自定义表名
func (ProgramStateModel) TableName() string {
	return "program_state"
}
