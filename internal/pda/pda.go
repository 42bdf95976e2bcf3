package pda

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// 记录地址派生种子，程序状态、活动、捐赠凭证、提现凭证各用一个标签
const (
	SeedProgramState = "program_state"
	SeedCampaign     = "campaign"
	SeedDonor        = "donor"
	SeedWithdraw     = "withdraw"
)

// Derive 从 (标签, 种子...) 确定性派生记录地址
// 同一组种子永远得到同一个地址，操作方必须按标识重新派生，
// 不能直接信任调用方传入的记录引用
func Derive(tag string, seeds ...[]byte) string {
	data := []byte(tag)
	for _, seed := range seeds {
		data = append(data, seed...)
	}
	hash := crypto.Keccak256(data)
	return common.BytesToAddress(hash[12:]).Hex()
}

// ProgramState 程序状态单例记录地址
func ProgramState() string {
	return Derive(SeedProgramState)
}

// Campaign 活动记录地址，种子为活动ID
func Campaign(cid uint64) string {
	return Derive(SeedCampaign, uint64LE(cid))
}

// Donation 捐赠凭证记录地址，序号取捐赠前的 donors 计数 + 1
func Donation(donor string, cid, seq uint64) string {
	return Derive(SeedDonor, common.HexToAddress(donor).Bytes(), uint64LE(cid), uint64LE(seq))
}

// Withdrawal 提现凭证记录地址，序号取提现前的 withdrawals 计数 + 1
func Withdrawal(creator string, cid, seq uint64) string {
	return Derive(SeedWithdraw, common.HexToAddress(creator).Bytes(), uint64LE(cid), uint64LE(seq))
}

func uint64LE(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}
