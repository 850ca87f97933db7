package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tingz-storefront/internal/domain"
	ordersvc "tingz-storefront/internal/service/order"
)

func submitOrderHandler(orders orderService, carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var customer domain.Customer
		if err := c.ShouldBindJSON(&customer); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}

		sess := sessionFromContext(c)
		cart := carts.Get(sess.Token)

		status, err := orders.Submit(c.Request.Context(), sess.Token, customer, cart)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error(), "status": status})
			case errors.Is(err, ordersvc.ErrSubmitting):
				c.JSON(http.StatusConflict, gin.H{"success": false, "error": "submission already in progress", "status": status})
			default:
				// relay failure: the user may resubmit, nothing retries automatically
				c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Failed to submit order. Please try again.", "status": status})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
	}
}
