// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/petalline/storefront/internal/interfaces/http/handlers"
	"github.com/petalline/storefront/internal/interfaces/http/middleware"
	"github.com/petalline/storefront/internal/pkg/auth"
)

// Handlers groups every API handler
type Handlers struct {
	Product  *handlers.ProductHandler
	Cart     *handlers.CartHandler
	Checkout *handlers.CheckoutHandler
	Receipt  *handlers.ReceiptHandler
	Auth     *handlers.AuthHandler
}

// SetupRoutes registers every API route under rg
func SetupRoutes(rg *gin.RouterGroup, h Handlers, jwtManager *auth.JWTManager) {
	SetupAuthRoutes(rg, h.Auth, jwtManager)
	SetupProductRoutes(rg, h.Product)
	SetupCartRoutes(rg, h.Cart)
	SetupCheckoutRoutes(rg, h.Checkout, h.Receipt)
}

// SetupAuthRoutes sets up the demo authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, jwtManager *auth.JWTManager) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager))
		{
			protected.GET("/me", authHandler.GetProfile)
		}
	}
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id/quantity", productHandler.UpdateQuantity)
		products.POST("/:id/cart", productHandler.AddToCart)
		products.POST("/:id/cart/modal", productHandler.AddFromModal)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCount)
		cart.GET("/events", cartHandler.Events)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:id", cartHandler.UpdateItem)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
		cart.POST("/promo", cartHandler.ApplyPromo)
		cart.DELETE("/promo", cartHandler.RemovePromo)
	}
}

// SetupCheckoutRoutes sets up checkout related routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, receiptHandler *handlers.ReceiptHandler) {
	checkout := rg.Group("/checkout")
	{
		checkout.GET("", checkoutHandler.GetCheckout)
		checkout.POST("/orders", checkoutHandler.PlaceOrder)
		checkout.POST("/format", checkoutHandler.FormatCard)
		checkout.POST("/receipt", receiptHandler.GenerateReceipt)
	}
}
