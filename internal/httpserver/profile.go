package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photogifthub/internal/domain"
	profilesvc "photogifthub/internal/service/profile"
)

func getProfileHandler(profiles *profilesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := profiles.Get(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func saveProfileHandler(profiles *profilesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Profile
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile"})
			return
		}
		p.UserID = currentUser(c)
		if err := profiles.Save(c.Request.Context(), p); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func getDatesHandler(profiles *profilesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		dates, err := profiles.Dates(c.Request.Context(), currentUser(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dates"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"dates": dates})
	}
}

func saveDatesHandler(profiles *profilesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dates []domain.ImportantDate
		if err := c.ShouldBindJSON(&dates); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dates"})
			return
		}
		if err := profiles.SaveDates(c.Request.Context(), currentUser(c), dates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save dates"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"dates": dates})
	}
}
