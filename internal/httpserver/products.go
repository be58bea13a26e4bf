package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"photogifthub/internal/domain"
	productsvc "photogifthub/internal/service/product"
)

func listProductsHandler(products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, stale, err := products.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
			return
		}
		if list == nil {
			list = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": list, "stale": stale})
	}
}

func getProductHandler(products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
