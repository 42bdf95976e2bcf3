package pda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDeterministic(t *testing.T) {
	assert.Equal(t, Campaign(1), Campaign(1))
	assert.Equal(t, ProgramState(), ProgramState())
	assert.Equal(t,
		Donation("0x2000000000000000000000000000000000000002", 1, 1),
		Donation("0x2000000000000000000000000000000000000002", 1, 1))
}

func TestDeriveDistinct(t *testing.T) {
	owner := "0x2000000000000000000000000000000000000002"
	other := "0x3000000000000000000000000000000000000003"

	// 不同活动ID不同地址
	assert.NotEqual(t, Campaign(1), Campaign(2))

	// 捐赠和提现凭证即使种子相同也落在不同地址
	assert.NotEqual(t, Donation(owner, 1, 1), Withdrawal(owner, 1, 1))

	// 身份、活动、序号任何一项不同都换地址
	assert.NotEqual(t, Donation(owner, 1, 1), Donation(other, 1, 1))
	assert.NotEqual(t, Donation(owner, 1, 1), Donation(owner, 2, 1))
	assert.NotEqual(t, Donation(owner, 1, 1), Donation(owner, 1, 2))
}

func TestDeriveAddressFormat(t *testing.T) {
	address := Campaign(7)
	assert.Len(t, address, 42)
	assert.Equal(t, "0x", address[:2])
}
