// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/petalline/storefront/internal/domain/checkout"
	"github.com/petalline/storefront/internal/interfaces/http/middleware"
	"github.com/petalline/storefront/internal/pkg/notify"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	notifier        *notify.Notifier
	cartPath        string
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, notifier *notify.Notifier, cartPath string) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		notifier:        notifier,
		cartPath:        cartPath,
	}
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	review, err := h.checkoutService.Review(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			h.redirectToCart(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load checkout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout retrieved successfully",
		"data":    review,
	})
}

// PlaceOrder handles POST /checkout/orders
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}

	confirmation, err := h.checkoutService.PlaceOrder(c.Request.Context(), middleware.GetSessionID(c), &form)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			h.redirectToCart(c)
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   verr.Error(),
				"details": verr.Fields,
				"notice":  h.notifier.Error(verr.Error()),
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  checkout.OrderFailedMessage,
				"notice": h.notifier.Error(checkout.OrderFailedMessage),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    confirmation,
	})
}

// FormatCard handles POST /checkout/format
func (h *CheckoutHandler) FormatCard(c *gin.Context) {
	var req checkout.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Card details formatted",
		"data":    checkout.Format(req),
	})
}

// redirectToCart sends browsers back to the cart page and API clients a redirect hint
func (h *CheckoutHandler) redirectToCart(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusSeeOther, h.cartPath)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Your cart is empty",
		"redirect": h.cartPath,
	})
}
