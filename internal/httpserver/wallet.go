package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	walletsvc "photogifthub/internal/service/wallet"
)

func getWalletHandler(wallets *walletsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := wallets.Get(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wallet"})
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func walletTransactionsHandler(wallets *walletsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns, err := wallets.Transactions(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"transactions": txns})
	}
}
