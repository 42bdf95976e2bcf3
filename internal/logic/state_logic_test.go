package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spandan-mozumder/solfund/internal/errno"
	"github.com/spandan-mozumder/solfund/internal/ledger"
	"github.com/spandan-mozumder/solfund/internal/pda"
)

func TestInitialize(t *testing.T) {
	db := newTestDB(t)
	stateLogic := NewStateLogic(db, testLedgerCfg)

	fund(t, db, testDeployer, testStateRent+1)
	state, err := stateLogic.Initialize(testDeployer)
	require.NoError(t, err)

	assert.True(t, state.Initialized)
	assert.Equal(t, uint64(0), state.CampaignCount)
	assert.Equal(t, uint64(5), state.PlatformFee)
	assert.Equal(t, testDeployer, state.PlatformAddress)
	assert.Equal(t, pda.ProgramState(), state.Address)

	// 押金从部署者转入状态记录账户
	held, err := ledger.Balance(db, pda.ProgramState())
	require.NoError(t, err)
	assert.Equal(t, uint64(testStateRent), held)
}

func TestInitializeTwiceFails(t *testing.T) {
	db := newTestDB(t)
	stateLogic := NewStateLogic(db, testLedgerCfg)

	fund(t, db, testDeployer, testStateRent*10)
	_, err := stateLogic.Initialize(testDeployer)
	require.NoError(t, err)

	// 同一调用者重复初始化失败
	_, err = stateLogic.Initialize(testDeployer)
	assert.ErrorIs(t, err, errno.ErrAlreadyInitialized)

	// 换一个调用者也一样失败
	fund(t, db, testStranger, testStateRent*10)
	_, err = stateLogic.Initialize(testStranger)
	assert.ErrorIs(t, err, errno.ErrAlreadyInitialized)
}

func TestInitializeWithoutFundsFails(t *testing.T) {
	db := newTestDB(t)
	stateLogic := NewStateLogic(db, testLedgerCfg)

	// 部署者付不起状态记录押金
	_, err := stateLogic.Initialize(testDeployer)
	assert.ErrorIs(t, err, errno.ErrInsufficientFund)

	// 失败的初始化不留任何状态
	_, err = stateLogic.GetState()
	assert.Error(t, err)
}

func TestUpdatePlatformSettings(t *testing.T) {
	db := newTestDB(t)
	stateLogic := newInitializedState(t, db)

	tests := []struct {
		name    string
		caller  string
		fee     uint64
		wantErr error
	}{
		{"fee below range", testDeployer, 0, errno.ErrInvalidPlatformFee},
		{"fee above range", testDeployer, 16, errno.ErrInvalidPlatformFee},
		{"not platform address", testStranger, 10, errno.ErrUnauthorized},
		{"lower bound", testDeployer, 1, nil},
		{"upper bound", testDeployer, 15, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := stateLogic.UpdatePlatformSettings(tt.caller, tt.fee)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			state, err := stateLogic.GetState()
			require.NoError(t, err)
			assert.Equal(t, tt.fee, state.PlatformFee)
		})
	}
}

func TestUpdatePlatformSettingsKeepsOtherFields(t *testing.T) {
	db := newTestDB(t)
	stateLogic := newInitializedState(t, db)

	require.NoError(t, stateLogic.UpdatePlatformSettings(testDeployer, 7))

	state, err := stateLogic.GetState()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), state.PlatformFee)
	assert.Equal(t, testDeployer, state.PlatformAddress)
	assert.Equal(t, uint64(0), state.CampaignCount)
	assert.True(t, state.Initialized)
}
