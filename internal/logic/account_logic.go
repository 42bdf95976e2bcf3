package logic

import (
	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/ledger"
	"github.com/spandan-mozumder/solfund/internal/model"
)

// AccountLogic 资金账户业务逻辑，入金是外部世界向台账注入资金的入口
type AccountLogic struct {
	db *gorm.DB
}

// NewAccountLogic 创建资金账户业务逻辑
func NewAccountLogic(db *gorm.DB) *AccountLogic {
	return &AccountLogic{db: db}
}

// Deposit 向身份账户入金
func (a *AccountLogic) Deposit(address string, amount uint64) (*model.LedgerAccountModel, error) {
	var account model.LedgerAccountModel

	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := ledger.Deposit(tx, address, amount); err != nil {
			return err
		}
		return tx.First(&account, "address = ?", address).Error
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// GetBalance 查询账户余额，不存在的地址视为零余额
func (a *AccountLogic) GetBalance(address string) (uint64, error) {
	return ledger.Balance(a.db, address)
}
