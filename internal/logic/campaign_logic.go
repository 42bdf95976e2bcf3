package logic

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/config"
	"github.com/spandan-mozumder/solfund/internal/errno"
	"github.com/spandan-mozumder/solfund/internal/ledger"
	"github.com/spandan-mozumder/solfund/internal/logger"
	"github.com/spandan-mozumder/solfund/internal/model"
	"github.com/spandan-mozumder/solfund/internal/pda"
)

const (
	maxTitleLen       = 64
	maxDescriptionLen = 512
	maxImageUrlLen    = 256

	// 创建和更新的目标金额下限不一致，沿用链上程序的取值
	minGoalOnCreate = 100_000_000
	minGoalOnUpdate = 1_000_000_000
)

// CampaignLogic 众筹活动业务逻辑
type CampaignLogic struct {
	db        *gorm.DB
	ledgerCfg config.LedgerConfig
}

// NewCampaignLogic 创建众筹活动业务逻辑
func NewCampaignLogic(db *gorm.DB, ledgerCfg config.LedgerConfig) *CampaignLogic {
	return &CampaignLogic{db: db, ledgerCfg: ledgerCfg}
}

// CreateCampaign 创建活动，活动ID由平台计数器顺序分配
func (c *CampaignLogic) CreateCampaign(creator, title, description, imageURL string, goal uint64) (*model.CampaignModel, error) {
	if len(title) > maxTitleLen {
		return nil, errno.ErrTitleTooLong
	}
	if len(description) > maxDescriptionLen {
		return nil, errno.ErrDescriptionTooLong
	}
	if len(imageURL) > maxImageUrlLen {
		return nil, errno.ErrImageUrlTooLong
	}
	if goal < minGoalOnCreate {
		return nil, errno.ErrInvalidGoalAmount
	}

	var campaign model.CampaignModel

	err := c.db.Transaction(func(tx *gorm.DB) error {
		var state model.ProgramStateModel
		if err := tx.First(&state, "address = ?", pda.ProgramState()).Error; err != nil {
			return err
		}

		// 计数器自增后的值即新活动ID，cid 上的唯一索引兜底并发分配
		state.CampaignCount++
		if err := tx.Model(&state).Update("campaign_count", state.CampaignCount).Error; err != nil {
			return err
		}

		cid := state.CampaignCount
		address := pda.Campaign(cid)

		// 活动记录的押金由创建者支付
		if err := ledger.Transfer(tx, creator, address, c.ledgerCfg.CampaignRent); err != nil {
			return err
		}

		campaign = model.CampaignModel{
			Address:     address,
			Cid:         cid,
			Creator:     creator,
			Title:       title,
			Description: description,
			ImageURL:    imageURL,
			Goal:        goal,
			Timestamp:   uint64(time.Now().Unix()),
			Active:      true,
		}
		return tx.Create(&campaign).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Campaign %d created by %s", campaign.Cid, creator)
	return &campaign, nil
}

// UpdateCampaign 更新活动的展示字段和目标金额，其余字段不动
func (c *CampaignLogic) UpdateCampaign(caller string, cid uint64, title, description, imageURL string, goal uint64) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, cid)
		if err != nil {
			return err
		}

		if campaign.Creator != caller {
			return errno.ErrUnauthorized
		}
		if campaign.Cid != cid {
			return errno.ErrCampaignNotFound
		}
		if len(title) > maxTitleLen {
			return errno.ErrTitleTooLong
		}
		if len(description) > maxDescriptionLen {
			return errno.ErrDescriptionTooLong
		}
		if len(imageURL) > maxImageUrlLen {
			return errno.ErrImageUrlTooLong
		}
		if goal < minGoalOnUpdate {
			return errno.ErrInvalidGoalAmount
		}

		return tx.Model(campaign).Updates(map[string]interface{}{
			"title":       title,
			"description": description,
			"image_url":   imageURL,
			"goal":        goal,
		}).Error
	})
}

// DeleteCampaign 软删除活动，只允许 active 从 true 变为 false，不可逆
// 不清算余额，剩余资金仍可由创建者提现
func (c *CampaignLogic) DeleteCampaign(caller string, cid uint64) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, cid)
		if err != nil {
			return err
		}

		if campaign.Creator != caller {
			return errno.ErrUnauthorized
		}
		if campaign.Cid != cid {
			return errno.ErrCampaignNotFound
		}
		if !campaign.Active {
			return errno.ErrInactiveCampaign
		}

		return tx.Model(campaign).Update("active", false).Error
	})
}

// GetCampaign 按活动ID获取活动
func (c *CampaignLogic) GetCampaign(cid uint64) (*model.CampaignModel, error) {
	return loadCampaign(c.db, cid)
}

// GetCampaigns 获取活动列表
func (c *CampaignLogic) GetCampaigns(status, creator string, page, pageSize int) ([]model.CampaignModel, int64, error) {
	query := c.db.Model(&model.CampaignModel{})

	switch status {
	case "active":
		query = query.Where("active = ?", true)
	case "inactive":
		query = query.Where("active = ?", false)
	}
	if creator != "" {
		query = query.Where("creator = ?", creator)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaigns []model.CampaignModel
	offset := (page - 1) * pageSize
	if err := query.Offset(offset).
		Limit(pageSize).
		Order("cid DESC").
		Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

// GetCampaignStats 获取单个活动的统计信息
func (c *CampaignLogic) GetCampaignStats(cid uint64) (map[string]interface{}, error) {
	campaign, err := loadCampaign(c.db, cid)
	if err != nil {
		return nil, err
	}

	// 完成百分比
	progress := float64(0)
	if campaign.Goal > 0 {
		progress = float64(campaign.AmountRaised) / float64(campaign.Goal) * 100
	}

	var withdrawn uint64
	if err := c.db.Model(&model.TransactionModel{}).
		Where("cid = ? AND credited = ?", cid, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&withdrawn).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"cid":          campaign.Cid,
		"goal":         campaign.Goal,
		"amountRaised": campaign.AmountRaised,
		"balance":      campaign.Balance,
		"withdrawn":    withdrawn,
		"donors":       campaign.Donors,
		"withdrawals":  campaign.Withdrawals,
		"progress":     progress,
		"goalReached":  campaign.AmountRaised >= campaign.Goal,
		"active":       campaign.Active,
	}, nil
}

// GetPlatformStats 获取全平台统计信息
func (c *CampaignLogic) GetPlatformStats() (map[string]interface{}, error) {
	var totalCampaigns int64
	c.db.Model(&model.CampaignModel{}).Count(&totalCampaigns)

	var activeCampaigns int64
	c.db.Model(&model.CampaignModel{}).Where("active = ?", true).Count(&activeCampaigns)

	var totalRaised uint64
	c.db.Model(&model.CampaignModel{}).
		Select("COALESCE(SUM(amount_raised), 0)").
		Scan(&totalRaised)

	var totalBalance uint64
	c.db.Model(&model.CampaignModel{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&totalBalance)

	var totalDonations int64
	c.db.Model(&model.TransactionModel{}).Where("credited = ?", true).Count(&totalDonations)

	// 去重的捐赠人数量
	var uniqueDonors int64
	c.db.Model(&model.TransactionModel{}).
		Where("credited = ?", true).
		Distinct("owner").
		Count(&uniqueDonors)

	return map[string]interface{}{
		"totalCampaigns":  totalCampaigns,
		"activeCampaigns": activeCampaigns,
		"totalRaised":     totalRaised,
		"totalBalance":    totalBalance,
		"totalDonations":  totalDonations,
		"uniqueDonors":    uniqueDonors,
	}, nil
}

// loadCampaign 按活动ID重新派生地址并加载记录
// 地址派生即访问控制边界，调用方给出的 cid 只能命中自己派生出的那条记录
func loadCampaign(tx *gorm.DB, cid uint64) (*model.CampaignModel, error) {
	var campaign model.CampaignModel
	if err := tx.First(&campaign, "address = ?", pda.Campaign(cid)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}
