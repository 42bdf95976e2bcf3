package identity

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/spandan-mozumder/solfund/internal/errno"
)

// Normalize 将身份地址规范为校验和格式，所有持久化和比较都用这个形式
func Normalize(address string) string {
	return common.HexToAddress(address).Hex()
}

// IsValid 校验身份地址格式
func IsValid(address string) bool {
	return common.IsHexAddress(address)
}

// Verify 验证签名者确实持有所声明身份的私钥
// payload 为请求原文，signature 为 65 字节 secp256k1 签名的十六进制
func Verify(address, signature string, payload []byte) error {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil || len(sig) != crypto.SignatureLength {
		return errno.ErrUnauthorized
	}

	// 兼容 27/28 形式的恢复位
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	hash := crypto.Keccak256(payload)
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return errno.ErrUnauthorized
	}

	recovered := crypto.PubkeyToAddress(*pub)
	if recovered != common.HexToAddress(address) {
		return errno.ErrUnauthorized
	}
	return nil
}

// Sign 用私钥对 payload 签名，返回十六进制签名
func Sign(payload []byte, key *ecdsa.PrivateKey) (string, error) {
	hash := crypto.Keccak256(payload)
	sig, err := crypto.Sign(hash, key)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sig), nil
}

// Address 私钥对应的身份地址
func Address(key *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}
