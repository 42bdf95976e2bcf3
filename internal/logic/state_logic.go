package logic

import (
	"errors"

	"gorm.io/gorm"

	"github.com/spandan-mozumder/solfund/internal/config"
	"github.com/spandan-mozumder/solfund/internal/errno"
	"github.com/spandan-mozumder/solfund/internal/ledger"
	"github.com/spandan-mozumder/solfund/internal/logger"
	"github.com/spandan-mozumder/solfund/internal/model"
	"github.com/spandan-mozumder/solfund/internal/pda"
)

// StateLogic 平台状态业务逻辑
type StateLogic struct {
	db        *gorm.DB
	ledgerCfg config.LedgerConfig
}

// NewStateLogic 创建平台状态业务逻辑
func NewStateLogic(db *gorm.DB, ledgerCfg config.LedgerConfig) *StateLogic {
	return &StateLogic{db: db, ledgerCfg: ledgerCfg}
}

// Initialize 初始化平台状态单例，重复初始化直接失败，不做幂等处理
func (s *StateLogic) Initialize(deployer string) (*model.ProgramStateModel, error) {
	address := pda.ProgramState()
	var state model.ProgramStateModel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.ProgramStateModel
		err := tx.First(&existing, "address = ?", address).Error
		if err == nil {
			return errno.ErrAlreadyInitialized
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 状态记录的押金由部署者支付
		if err := ledger.Transfer(tx, deployer, address, s.ledgerCfg.StateRent); err != nil {
			return err
		}

		state = model.ProgramStateModel{
			Address:         address,
			Initialized:     true,
			CampaignCount:   0,
			PlatformFee:     5,
			PlatformAddress: deployer,
		}
		return tx.Create(&state).Error
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Program state initialized, platform address %s", deployer)
	return &state, nil
}

// UpdatePlatformSettings 更新平台手续费，只有当前平台地址可以调用
func (s *StateLogic) UpdatePlatformSettings(updater string, newPlatformFee uint64) error {
	address := pda.ProgramState()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var state model.ProgramStateModel
		if err := tx.First(&state, "address = ?", address).Error; err != nil {
			return err
		}

		if updater != state.PlatformAddress {
			return errno.ErrUnauthorized
		}

		if newPlatformFee < 1 || newPlatformFee > 15 {
			return errno.ErrInvalidPlatformFee
		}

		return tx.Model(&state).Update("platform_fee", newPlatformFee).Error
	})
}

// GetState 获取平台状态
func (s *StateLogic) GetState() (*model.ProgramStateModel, error) {
	var state model.ProgramStateModel
	if err := s.db.First(&state, "address = ?", pda.ProgramState()).Error; err != nil {
		return nil, err
	}
	return &state, nil
}
