package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spandan-mozumder/solfund/internal/config"
	"github.com/spandan-mozumder/solfund/internal/database"
	"github.com/spandan-mozumder/solfund/internal/identity"
	"github.com/spandan-mozumder/solfund/internal/ledger"
)

const (
	testStateRent       = 2_000_000
	testCampaignRent    = 6_000_000
	testTransactionRent = 2_000_000
)

var testLedgerCfg = config.LedgerConfig{
	StateRent:       testStateRent,
	CampaignRent:    testCampaignRent,
	TransactionRent: testTransactionRent,
}

var (
	testDeployer = identity.Normalize("0x1000000000000000000000000000000000000001")
	testCreator  = identity.Normalize("0x2000000000000000000000000000000000000002")
	testDonor    = identity.Normalize("0x3000000000000000000000000000000000000003")
	testStranger = identity.Normalize("0x4000000000000000000000000000000000000004")
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库只允许一个连接，避免连接池各自看到空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func fund(t *testing.T, db *gorm.DB, address string, amount uint64) {
	t.Helper()
	require.NoError(t, ledger.Deposit(db, address, amount))
}

// newInitializedState 入金并初始化平台，返回状态逻辑
func newInitializedState(t *testing.T, db *gorm.DB) *StateLogic {
	t.Helper()

	stateLogic := NewStateLogic(db, testLedgerCfg)
	fund(t, db, testDeployer, testStateRent+1_000_000_000)
	_, err := stateLogic.Initialize(testDeployer)
	require.NoError(t, err)
	return stateLogic
}

// newFundedCampaign 建好一个可捐赠的活动，返回其活动ID
func newFundedCampaign(t *testing.T, db *gorm.DB, goal uint64) uint64 {
	t.Helper()

	newInitializedState(t, db)
	campaignLogic := NewCampaignLogic(db, testLedgerCfg)
	fund(t, db, testCreator, testCampaignRent+testTransactionRent*10)
	campaign, err := campaignLogic.CreateCampaign(testCreator, "Test Campaign", "A test campaign", "https://img.example/c.png", goal)
	require.NoError(t, err)
	return campaign.Cid
}
