package router

import (
	"time"

	"github.com/toushik018/hardal/internal/cart"
	"github.com/toushik018/hardal/internal/checkout"
	"github.com/toushik018/hardal/internal/configurator"
	"github.com/toushik018/hardal/internal/menu"
	"github.com/toushik018/hardal/internal/middleware"
	"github.com/toushik018/hardal/internal/order"
	"github.com/toushik018/hardal/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every feature handler for route registration.
type Handlers struct {
	Session      *session.Handler
	Cart         *cart.Handler
	Menu         *menu.Handler
	Configurator *configurator.Handler
	Checkout     *checkout.Handler
	Order        *order.Handler
}

// New builds the gin engine. Everything under /api requires a bootstrapped
// session; the session check itself and the health probe do not.
func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/session/check", h.Session.Check)

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware())
	{
		// Cart
		api.GET("/cart", h.Cart.Get)
		api.POST("/cart/increment", h.Cart.Increment)
		api.POST("/cart/decrement", h.Cart.Decrement)
		api.POST("/cart/remove", h.Cart.Remove)
		api.DELETE("/cart/package", h.Cart.DeletePackage)
		api.DELETE("/cart", h.Cart.Clear)

		// Catalog
		api.GET("/packages", h.Menu.Packages)
		api.GET("/categories", h.Menu.Categories)
		api.GET("/menu-content", h.Menu.Content)
		api.POST("/products-by-category", h.Menu.ProductsByCategory)
		api.GET("/products/:id", h.Menu.ProductByID)

		// Configurator
		api.GET("/configurator/state", h.Configurator.State)
		api.POST("/configurator/next", h.Configurator.Next)
		api.POST("/configurator/previous", h.Configurator.Previous)
		api.POST("/configurator/jump", h.Configurator.Jump)
		api.POST("/configurator/track", h.Configurator.Track)
		api.POST("/configurator/extra", h.Configurator.AddExtra)
		api.POST("/configurator/advance", h.Configurator.Advance)
		api.POST("/configurator/dismiss", h.Configurator.Dismiss)
		api.DELETE("/configurator", h.Configurator.Abandon)

		// Checkout wizard
		api.GET("/checkout/state", h.Checkout.State)
		api.GET("/checkout/payment-methods", h.Checkout.PaymentMethods)
		api.GET("/checkout/shipping-methods", h.Checkout.ShippingMethods)
		api.POST("/checkout/payment-method", h.Checkout.SetPaymentMethod)
		api.POST("/checkout/shipping-address", h.Checkout.SetShippingAddress)
		api.POST("/checkout/payment-address", h.Checkout.SetPaymentAddress)
		api.POST("/checkout/shipping-method", h.Checkout.SetShippingMethod)
		api.POST("/checkout/back", h.Checkout.Back)
		api.POST("/checkout/confirm", h.Checkout.Confirm)

		// Orders
		api.POST("/orders/submit", h.Order.Submit)
		api.GET("/orders/:number", h.Order.ByNumber)
	}

	return r
}
