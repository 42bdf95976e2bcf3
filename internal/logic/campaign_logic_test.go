package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spandan-mozumder/solfund/internal/errno"
	"github.com/spandan-mozumder/solfund/internal/ledger"
	"github.com/spandan-mozumder/solfund/internal/pda"
)

func TestCreateCampaignValidation(t *testing.T) {
	db := newTestDB(t)
	newInitializedState(t, db)
	campaignLogic := NewCampaignLogic(db, testLedgerCfg)
	fund(t, db, testCreator, testCampaignRent*10)

	tests := []struct {
		name        string
		title       string
		description string
		imageURL    string
		goal        uint64
		wantErr     error
	}{
		{"title too long", strings.Repeat("a", 65), "d", "u", 100_000_000, errno.ErrTitleTooLong},
		{"description too long", "t", strings.Repeat("a", 513), "u", 100_000_000, errno.ErrDescriptionTooLong},
		{"image url too long", "t", "d", strings.Repeat("a", 257), 100_000_000, errno.ErrImageUrlTooLong},
		{"goal below floor", "t", "d", "u", 99_999_999, errno.ErrInvalidGoalAmount},
		{"goal at floor", "t", "d", "u", 100_000_000, nil},
		{"max lengths accepted", strings.Repeat("a", 64), strings.Repeat("b", 512), strings.Repeat("c", 256), 100_000_000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := campaignLogic.CreateCampaign(testCreator, tt.title, tt.description, tt.imageURL, tt.goal)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCreateCampaignAssignsSequentialCids(t *testing.T) {
	db := newTestDB(t)
	newInitializedState(t, db)
	campaignLogic := NewCampaignLogic(db, testLedgerCfg)
	fund(t, db, testCreator, testCampaignRent*10)

	first, err := campaignLogic.CreateCampaign(testCreator, "first", "", "", 100_000_000)
	require.NoError(t, err)
	second, err := campaignLogic.CreateCampaign(testCreator, "second", "", "", 100_000_000)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.Cid)
	assert.Equal(t, uint64(2), second.Cid)
	assert.Equal(t, pda.Campaign(1), first.Address)
	assert.Equal(t, pda.Campaign(2), second.Address)

	// 计数器与最新活动ID同步
	stateLogic := NewStateLogic(db, testLedgerCfg)
	state, err := stateLogic.GetState()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), state.CampaignCount)
}

func TestCreateCampaignInitialState(t *testing.T) {
	db := newTestDB(t)
	cid := newFundedCampaign(t, db, 10_000_000_000)

	campaignLogic := NewCampaignLogic(db, testLedgerCfg)
	campaign, err := campaignLogic.GetCampaign(cid)
	require.NoError(t, err)

	assert.Equal(t, testCreator, campaign.Creator)
	assert.True(t, campaign.Active)
	assert.Zero(t, campaign.AmountRaised)
	assert.Zero(t, campaign.Balance)
	assert.Zero(t, campaign.Donors)
	assert.Zero(t, campaign.Withdrawals)
	assert.NotZero(t, campaign.Timestamp)

	// 活动记录账户只持有创建者付的押金
	held, err := ledger.Balance(db, campaign.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(testCampaignRent), held)
}

func TestUpdateCampaign(t *testing.T) {
	db := newTestDB(t)
	cid := newFundedCampaign(t, db, 10_000_000_000)
	campaignLogic := NewCampaignLogic(db, testLedgerCfg)

	// 更新时的目标金额下限是创建时的十倍
	err := campaignLogic.UpdateCampaign(testCreator, cid, "new title", "new description", "https://img.example/new.png", 999_999_999)
	assert.ErrorIs(t, err, errno.ErrInvalidGoalAmount)

	err = campaignLogic.UpdateCampaign(testCreator, cid, "new title", "new description", "https://img.example/new.png", 1_000_000_000)
	require.NoError(t, err)

	campaign, err := campaignLogic.GetCampaign(cid)
	require.NoError(t, err)
	assert.Equal(t, "new title", campaign.Title)
	assert.Equal(t, "new description", campaign.Description)
	assert.Equal(t, "https://img.example/new.png", campaign.ImageURL)
	assert.Equal(t, uint64(1_000_000_000), campaign.Goal)
	// 其余字段不受影响
	assert.True(t, campaign.Active)
	assert.Equal(t, testCreator, campaign.Creator)
}

func TestUpdateCampaignAuthorization(t *testing.T) {
	db := newTestDB(t)
	cid := newFundedCampaign(t, db, 10_000_000_000)
	campaignLogic := NewCampaignLogic(db, testLedgerCfg)

	err := campaignLogic.UpdateCampaign(testStranger, cid, "t", "d", "u", 1_000_000_000)
	assert.ErrorIs(t, err, errno.ErrUnauthorized)

	err = campaignLogic.UpdateCampaign(testCreator, cid+100, "t", "d", "u", 1_000_000_000)
	assert.ErrorIs(t, err, errno.ErrCampaignNotFound)
}

func TestDeleteCampaign(t *testing.T) {
	db := newTestDB(t)
	cid := newFundedCampaign(t, db, 10_000_000_000)
	campaignLogic := NewCampaignLogic(db, testLedgerCfg)

	err := campaignLogic.DeleteCampaign(testStranger, cid)
	assert.ErrorIs(t, err, errno.ErrUnauthorized)

	require.NoError(t, campaignLogic.DeleteCampaign(testCreator, cid))

	campaign, err := campaignLogic.GetCampaign(cid)
	require.NoError(t, err)
	assert.False(t, campaign.Active)

	// 已删除的活动再次删除被拒，而不是当作空操作
	err = campaignLogic.DeleteCampaign(testCreator, cid)
	assert.ErrorIs(t, err, errno.ErrInactiveCampaign)
}

func TestGetCampaignsFilters(t *testing.T) {
	db := newTestDB(t)
	cid := newFundedCampaign(t, db, 10_000_000_000)
	campaignLogic := NewCampaignLogic(db, testLedgerCfg)

	_, err := campaignLogic.CreateCampaign(testCreator, "second", "", "", 100_000_000)
	require.NoError(t, err)
	require.NoError(t, campaignLogic.DeleteCampaign(testCreator, cid))

	active, total, err := campaignLogic.GetCampaigns("active", "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.True(t, active[0].Active)

	inactive, total, err := campaignLogic.GetCampaigns("inactive", "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, inactive, 1)
	assert.Equal(t, cid, inactive[0].Cid)

	all, total, err := campaignLogic.GetCampaigns("", testCreator, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}
