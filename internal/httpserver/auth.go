package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tingz-storefront/internal/domain"
)

type authRequest struct {
	Email string `json:"email"`
}

func authHandler(sessions sessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
			return
		}
		sess, err := sessions.Authenticate(req.Email)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "authentication failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "isAdmin": sess.IsAdmin, "token": sess.Token})
	}
}
