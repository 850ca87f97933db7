package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tingz-storefront/internal/domain"
)

func listProductsHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load products"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func createProductHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		product, err := catalog.Create(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
	}
}

func updateProductHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		if err := catalog.Update(c.Request.Context(), p); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

type deleteProductRequest struct {
	ID int `json:"id"`
}

func deleteProductHandler(catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req deleteProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		if err := catalog.Delete(c.Request.Context(), req.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
