package logic

import (
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
	minDonationAmount   = 1_000_000_000
	minWithdrawalAmount = 100_000_000
)

// TransactionLogic 捐赠和提现业务逻辑
type TransactionLogic struct {
	db        *gorm.DB
	ledgerCfg config.LedgerConfig
}

// NewTransactionLogic 创建捐赠和提现业务逻辑
func NewTransactionLogic(db *gorm.DB, ledgerCfg config.LedgerConfig) *TransactionLogic {
	return &TransactionLogic{db: db, ledgerCfg: ledgerCfg}
}

// Donate 向活动捐赠，资金划转成功后才更新活动账面并落凭证
func (t *TransactionLogic) Donate(donor string, cid, amount uint64) (*model.TransactionModel, error) {
	var record model.TransactionModel

	err := t.db.Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, cid)
		if err != nil {
			return err
		}

		if campaign.Cid != cid {
			return errno.ErrCampaignNotFound
		}
		if !campaign.Active {
			return errno.ErrInactiveCampaign
		}
		// 链上程序在这里用的是目标金额的错误码，保持原样
		if amount < minDonationAmount {
			return errno.ErrInvalidGoalAmount
		}
		// 达标后拒收新捐赠；把总额顶过目标的那一笔本身是允许的
		if campaign.AmountRaised >= campaign.Goal {
			return errno.ErrCampaignGoalActualized
		}

		// 先完成外部资金划转，失败则整个操作回滚
		if err := ledger.Transfer(tx, donor, campaign.Address, amount); err != nil {
			return err
		}

		// 凭证地址用自增前的捐赠计数做盐，保证每次都是全新地址
		seq := campaign.Donors + 1
		recordAddress := pda.Donation(donor, cid, seq)

		campaign.AmountRaised += amount
		campaign.Balance += amount
		campaign.Donors++
		if err := tx.Model(campaign).Updates(map[string]interface{}{
			"amount_raised": campaign.AmountRaised,
			"balance":       campaign.Balance,
			"donors":        campaign.Donors,
		}).Error; err != nil {
			return err
		}

		// 凭证记录的押金由捐赠人支付
		if err := ledger.Transfer(tx, donor, recordAddress, t.ledgerCfg.TransactionRent); err != nil {
			return err
		}

		record = model.TransactionModel{
			Address:   recordAddress,
			Cid:       cid,
			Owner:     donor,
			Amount:    amount,
			Timestamp: uint64(time.Now().Unix()),
			Credited:  true,
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Donation of %d to campaign %d by %s", amount, cid, donor)
	return &record, nil
}

// Withdraw 创建者提现，平台抽成后两笔划转，账面减少的是申请的全额
// 注意：提现不检查活动是否 active，软删除后的余额仍可取回
func (t *TransactionLogic) Withdraw(caller string, cid, amount uint64, platformAddress string) (*model.TransactionModel, error) {
	var record model.TransactionModel

	err := t.db.Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, cid)
		if err != nil {
			return err
		}

		if campaign.Cid != cid {
			return errno.ErrCampaignNotFound
		}
		if campaign.Creator != caller {
			return errno.ErrUnauthorized
		}
		if amount < minWithdrawalAmount {
			return errno.ErrInvalidWithdrawalAmount
		}
		// 链上程序在这里复用了达标错误码，保持原样
		if amount > campaign.Balance {
			return errno.ErrCampaignGoalActualized
		}

		var state model.ProgramStateModel
		if err := tx.First(&state, "address = ?", pda.ProgramState()).Error; err != nil {
			return err
		}
		if platformAddress != state.PlatformAddress {
			return errno.ErrInvalidPlatformAddress
		}

		// 记录账户必须留足押金，账面余额之外还要校验实际持仓
		spendable, err := ledger.Spendable(tx, campaign.Address, t.ledgerCfg.CampaignRent)
		if err != nil {
			return err
		}
		if amount > spendable {
			logger.Warn("Withdrawal exceeds campaign %d usable balance", cid)
			return errno.ErrInsufficientFund
		}

		platformFee := amount * state.PlatformFee / 100
		creatorAmount := amount - platformFee

		if err := ledger.Transfer(tx, campaign.Address, caller, creatorAmount); err != nil {
			return err
		}
		if err := ledger.Transfer(tx, campaign.Address, platformAddress, platformFee); err != nil {
			return err
		}

		seq := campaign.Withdrawals + 1
		recordAddress := pda.Withdrawal(caller, cid, seq)

		campaign.Withdrawals++
		campaign.Balance -= amount
		if err := tx.Model(campaign).Updates(map[string]interface{}{
			"withdrawals": campaign.Withdrawals,
			"balance":     campaign.Balance,
		}).Error; err != nil {
			return err
		}

		// 凭证记录的押金由创建者支付
		if err := ledger.Transfer(tx, caller, recordAddress, t.ledgerCfg.TransactionRent); err != nil {
			return err
		}

		record = model.TransactionModel{
			Address:   recordAddress,
			Cid:       cid,
			Owner:     caller,
			Amount:    amount,
			Timestamp: uint64(time.Now().Unix()),
			Credited:  false,
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Withdrawal of %d from campaign %d by %s", amount, cid, caller)
	return &record, nil
}

// GetCampaignTransactions 获取活动的资金进出凭证
func (t *TransactionLogic) GetCampaignTransactions(cid uint64, page, pageSize int) ([]model.TransactionModel, int64, error) {
	var total int64
	if err := t.db.Model(&model.TransactionModel{}).Where("cid = ?", cid).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.TransactionModel
	offset := (page - 1) * pageSize
	if err := t.db.Where("cid = ?", cid).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetOwnerTransactions 获取某个身份名下的所有凭证
func (t *TransactionLogic) GetOwnerTransactions(owner string, page, pageSize int) ([]model.TransactionModel, int64, error) {
	var total int64
	if err := t.db.Model(&model.TransactionModel{}).Where("owner = ?", owner).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []model.TransactionModel
	offset := (page - 1) * pageSize
	if err := t.db.Where("owner = ?", owner).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
