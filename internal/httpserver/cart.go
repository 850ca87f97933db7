package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tingz-storefront/internal/domain"
)

type cartResponse struct {
	Items     []domain.CartItem `json:"items"`
	Total     int64             `json:"total"`
	ItemCount int               `json:"itemCount"`
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func getCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c)
		c.JSON(http.StatusOK, toCartResponse(carts.Get(sess.Token)))
	}
}

type cartItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func addCartItemHandler(carts cartService, catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		product, err := catalog.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to load product"})
			return
		}
		sess := sessionFromContext(c)
		carts.Add(sess.Token, *product)
		c.JSON(http.StatusOK, toCartResponse(carts.Get(sess.Token)))
	}
}

func setCartQuantityHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		sess := sessionFromContext(c)
		carts.SetQuantity(sess.Token, req.ProductID, req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(carts.Get(sess.Token)))
	}
}

func removeCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		sess := sessionFromContext(c)
		carts.Remove(sess.Token, req.ProductID)
		c.JSON(http.StatusOK, toCartResponse(carts.Get(sess.Token)))
	}
}
