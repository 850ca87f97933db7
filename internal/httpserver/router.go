package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"tingz-storefront/internal/domain"
)

type catalogService interface {
	List(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int) error
}

type cartService interface {
	Add(token string, product domain.Product)
	Remove(token string, productID int)
	SetQuantity(token string, productID, quantity int)
	Get(token string) domain.Cart
}

type sessionService interface {
	Authenticate(email string) (domain.Session, error)
	Lookup(token string) (domain.Session, error)
}

type orderService interface {
	Submit(ctx context.Context, token string, customer domain.Customer, cart domain.Cart) (domain.OrderStatus, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	CatalogSvc catalogService
	CartSvc    cartService
	SessionSvc sessionService
	OrderSvc   orderService
}

func (d Deps) validate() error {
	if d.CatalogSvc == nil {
		return errors.New("catalog service is required")
	}
	if d.CartSvc == nil {
		return errors.New("cart service is required")
	}
	if d.SessionSvc == nil {
		return errors.New("session service is required")
	}
	if d.OrderSvc == nil {
		return errors.New("order service is required")
	}
	return nil
}

const sessionKey = "session"

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth", authHandler(deps.SessionSvc))

	// Reading the catalog is public; the gate controls mutations only.
	router.GET("/products", listProductsHandler(deps.CatalogSvc))

	admin := router.Group("/", requireSession(deps.SessionSvc), requireAdmin())
	admin.POST("/products", createProductHandler(deps.CatalogSvc))
	admin.PUT("/products", updateProductHandler(deps.CatalogSvc))
	admin.DELETE("/products", deleteProductHandler(deps.CatalogSvc))

	authed := router.Group("/", requireSession(deps.SessionSvc))
	authed.GET("/cart", getCartHandler(deps.CartSvc))
	authed.POST("/cart/items", addCartItemHandler(deps.CartSvc, deps.CatalogSvc))
	authed.PUT("/cart/items", setCartQuantityHandler(deps.CartSvc))
	authed.DELETE("/cart/items", removeCartItemHandler(deps.CartSvc))
	authed.POST("/orders", submitOrderHandler(deps.OrderSvc, deps.CartSvc))

	return router, nil
}

// requireSession resolves the bearer token and stores the session in the
// request context.
func requireSession(sessions sessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing bearer token"})
			return
		}
		sess, err := sessions.Lookup(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid session"})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// requireAdmin enforces the admin flag server-side. The flag is the same
// email match the UI uses; hiding buttons alone is not a gate.
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c)
		if !sess.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "admin only"})
			return
		}
		c.Next()
	}
}

func sessionFromContext(c *gin.Context) domain.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}
	}
	sess, _ := v.(domain.Session)
	return sess
}
