package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"payme.backend/pkg/utils"
)

const (
	// WalletAddressHeader carries the caller's claimed wallet address
	WalletAddressHeader = "X-Wallet-Address"
	// WalletAddressKey is the gin context key for the validated caller wallet
	WalletAddressKey = "walletAddress"
)

// WalletAuthMiddleware requires the X-Wallet-Address header on mutating
// requests and validates its shape. It proves presence and format of a
// claimed address only, never ownership; handlers compare the identity
// against resource owners where that matters. Reads pass through with no
// identity attached.
func WalletAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		wallet := c.GetHeader(WalletAddressHeader)
		if wallet == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "X-Wallet-Address header required",
			})
			return
		}

		if !utils.IsValidWalletAddress(wallet) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid wallet address format",
			})
			return
		}

		c.Set(WalletAddressKey, strings.ToLower(wallet))
		c.Next()
	}
}

// GetWalletAddress gets the validated caller wallet from context. The second
// return is false on reads, where no identity is collected.
func GetWalletAddress(c *gin.Context) (string, bool) {
	wallet, exists := c.Get(WalletAddressKey)
	if !exists {
		return "", false
	}
	return wallet.(string), true
}
