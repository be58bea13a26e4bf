package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photogifthub/internal/domain"
	orderrepo "photogifthub/internal/repository/order"
	adminsvc "photogifthub/internal/service/admin"
)

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func adminLoginHandler(admin *adminsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			return
		}
		token, err := admin.Login(req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func adminListOrdersHandler(orders orderrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
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

func adminUpdateStatusHandler(orders orderrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}

		id := c.Param("id")
		current, err := orders.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
			return
		}
		if !domain.CanTransition(current.Status, req.Status) {
			c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
			return
		}
		if err := orders.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
	}
}
