package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"photogifthub/internal/metrics"
	"photogifthub/internal/pricing"
	cartsvc "photogifthub/internal/service/cart"
	productsvc "photogifthub/internal/service/product"
	walletsvc "photogifthub/internal/service/wallet"
)

type addItemRequest struct {
	ProductID     string            `json:"productId" binding:"required"`
	Customization map[string]string `json:"customization"`
	Quantity      int               `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(carts *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Get(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"cart":     cart,
			"count":    cart.Count(),
			"subtotal": cart.Subtotal(),
		})
	}
}

func addCartItemHandler(carts *cartsvc.Service, products *productsvc.Service, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}

		product, err := products.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		item, err := carts.Add(c.Request.Context(), currentUser(c), *product, req.Customization, req.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
			return
		}
		countCartOp(m, "add")
		c.JSON(http.StatusCreated, item)
	}
}

func updateCartItemHandler(carts *cartsvc.Service, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		// Unknown ids are silent no-ops; a stale id from a concurrent removal
		// must not surface as an error.
		if err := carts.UpdateQuantity(c.Request.Context(), currentUser(c), c.Param("id"), req.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
			return
		}
		countCartOp(m, "update")
		c.Status(http.StatusNoContent)
	}
}

func removeCartItemHandler(carts *cartsvc.Service, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Remove(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
			return
		}
		countCartOp(m, "remove")
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(carts *cartsvc.Service, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := carts.Clear(c.Request.Context(), currentUser(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
			return
		}
		countCartOp(m, "clear")
		c.Status(http.StatusNoContent)
	}
}

// cartQuoteHandler prices the current cart for the given delivery type and
// wallet preference without mutating anything.
func cartQuoteHandler(carts *cartsvc.Service, wallets *walletsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUser(c)
		cart, err := carts.Get(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
			return
		}

		deliveryType := c.DefaultQuery("deliveryType", pricing.DeliveryTypeDelivery)
		useWallet, _ := strconv.ParseBool(c.DefaultQuery("useWallet", "false"))

		var balance int64
		if useWallet {
			wallet, err := wallets.Get(c.Request.Context(), userID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wallet"})
				return
			}
			balance = wallet.Balance
		}

		quote := pricing.Compute(cart.Items, pricing.OrderContext{
			DeliveryType:  deliveryType,
			UseWallet:     useWallet,
			WalletBalance: balance,
		})
		c.JSON(http.StatusOK, gin.H{
			"quote":    quote,
			"messages": pricing.DeliveryMessages(cart.Items, deliveryType),
		})
	}
}

func countCartOp(m *metrics.Metrics, op string) {
	if m != nil {
		m.CartOps.WithLabelValues(op).Inc()
	}
}
