package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photogifthub/internal/domain"
	reviewsvc "photogifthub/internal/service/review"
)

func createReviewHandler(reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in reviewsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review"})
			return
		}
		rev, err := reviews.Create(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, rev)
	}
}

func listReviewsHandler(reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := reviews.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
			return
		}
		if list == nil {
			list = []domain.Review{}
		}
		c.JSON(http.StatusOK, gin.H{"reviews": list})
	}
}

func reviewStatsHandler(reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := reviews.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load review stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
