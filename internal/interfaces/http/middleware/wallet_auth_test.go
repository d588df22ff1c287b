package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testWallet = "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"

func walletAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(WalletAuthMiddleware())
	handler := func(c *gin.Context) {
		wallet, ok := GetWalletAddress(c)
		c.JSON(http.StatusOK, gin.H{"wallet": wallet, "present": ok})
	}
	r.GET("/res", handler)
	r.POST("/res", handler)
	r.DELETE("/res", handler)
	return r
}

func TestWalletAuthMiddleware_MutatingRequests(t *testing.T) {
	r := walletAuthRouter()

	t.Run("missing header is 401", func(t *testing.T) {
		for _, method := range []string{http.MethodPost, http.MethodDelete} {
			req := httptest.NewRequest(method, "/res", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Contains(t, w.Body.String(), "X-Wallet-Address header required")
		}
	})

	t.Run("empty header is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/res", nil)
		req.Header.Set(WalletAddressHeader, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/res", nil)
		req.Header.Set(WalletAddressHeader, "not-an-address")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "invalid wallet address format")
	})

	t.Run("mixed case address is lowered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/res", nil)
		req.Header.Set(WalletAddressHeader, testWallet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), strings.ToLower(testWallet))
	})
}

func TestWalletAuthMiddleware_ReadsPassThrough(t *testing.T) {
	r := walletAuthRouter()

	// no header needed, no identity collected even if one is sent
	req := httptest.NewRequest(http.MethodGet, "/res", nil)
	req.Header.Set(WalletAddressHeader, "not-an-address")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"present":false`)
}
