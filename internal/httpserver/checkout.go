package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photogifthub/internal/domain"
	"photogifthub/internal/metrics"
	orderrepo "photogifthub/internal/repository/order"
	checkoutsvc "photogifthub/internal/service/checkout"
)

type checkoutRequest struct {
	Form         checkoutsvc.FormData `json:"form"`
	DeliveryType string               `json:"deliveryType" binding:"required"`
	UseWallet    bool                 `json:"useWallet"`
}

func checkoutHandler(checkout *checkoutsvc.Service, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deliveryType required"})
			return
		}

		conf, err := checkout.Submit(c.Request.Context(), currentUser(c), req.Form, req.DeliveryType, req.UseWallet)
		if err != nil {
			// Validation failures block submission with the rule's message;
			// anything else is a storage failure, reported distinctly.
			if domain.IsValidation(err) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			return
		}
		if m != nil {
			m.OrdersPlaced.Inc()
		}
		c.JSON(http.StatusCreated, conf)
	}
}

func listUserOrdersHandler(orders orderrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByUser(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
			return
		}
		if list == nil {
			list = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}
