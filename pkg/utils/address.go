package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidWalletAddress reports whether s is a 0x-prefixed 20-byte hex
// address. common.IsHexAddress alone also accepts unprefixed input, so the
// prefix is checked explicitly.
func IsValidWalletAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}
