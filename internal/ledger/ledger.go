package ledger

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/errno"
	"github.com/spandan-mozumder/solfund/internal/model"
)

// 原生资金台账。所有函数都必须在操作自身的事务里调用，
// 转账失败时整个操作随事务一起回滚，不留下半提交状态。

// Balance 查询账户实际持有的资金，不存在的地址视为零余额
func Balance(tx *gorm.DB, address string) (uint64, error) {
	var account model.LedgerAccountModel
	if err := tx.First(&account, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return account.Balance, nil
}

// Deposit 向账户入金，账户不存在时创建
func Deposit(tx *gorm.DB, address string, amount uint64) error {
	account := model.LedgerAccountModel{Address: address}
	if err := tx.FirstOrCreate(&account, "address = ?", address).Error; err != nil {
		return err
	}

	return tx.Model(&model.LedgerAccountModel{}).
		Where("address = ?", address).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}

// Transfer 在两个账户间移动原生资金
// 扣款带余额条件，余额不足时不产生任何变更并返回 ErrInsufficientFund
func Transfer(tx *gorm.DB, from, to string, amount uint64) error {
	if amount == 0 {
		return nil
	}

	result := tx.Model(&model.LedgerAccountModel{}).
		Where("address = ? AND balance >= ?", from, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errno.ErrInsufficientFund
	}

	return Deposit(tx, to, amount)
}

// Spendable 账户扣除押金后可动用的资金
func Spendable(tx *gorm.DB, address string, rent uint64) (uint64, error) {
	held, err := Balance(tx, address)
	if err != nil {
		return 0, err
	}
	if held <= rent {
		return 0, nil
	}
	return held - rent, nil
}
