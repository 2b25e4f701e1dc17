// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/petalline/storefront/internal/domain/cart"
	"github.com/petalline/storefront/internal/domain/product"
	"github.com/petalline/storefront/internal/interfaces/http/middleware"
	"github.com/sirupsen/logrus"
)

const heartbeatInterval = 25 * time.Second

// CartHandler handles cart endpoints
type CartHandler struct {
	carts          *cart.Manager
	productService *product.Service
	logger         logrus.FieldLogger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, productService *product.Service, logger logrus.FieldLogger) *CartHandler {
	return &CartHandler{
		carts:          carts,
		productService: productService,
		logger:         logger,
	}
}

// AddItemRequest adds a catalog product to the cart
type AddItemRequest struct {
	ProductID int `json:"productId" binding:"required,min=1"`
	Quantity  int `json:"quantity"`
}

// UpdateItemRequest edits a line. Action is increase or decrease; otherwise Quantity is set.
type UpdateItemRequest struct {
	Action   string `json:"action"`
	Quantity *int   `json:"quantity"`
}

// PromoRequest applies a promo code
type PromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	view := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    view,
	})
}

// GetCount handles GET /cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	count := h.carts.Count(c.Request.Context(), middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data":    gin.H{"count": count},
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	result, err := h.productService.AddFromDetail(c.Request.Context(), middleware.GetSessionID(c), req.ProductID, req.Quantity, false)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": noticeMessage(result.Result),
		"data":    result.Result,
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id", "product ID")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	sessionID := middleware.GetSessionID(c)

	var (
		result *cart.Result
		err    error
	)
	switch {
	case req.Quantity != nil:
		result, err = h.carts.SetQuantity(ctx, sessionID, id, *req.Quantity)
	case req.Action == product.ActionIncrease:
		result, err = h.carts.Increase(ctx, sessionID, id)
	case req.Action == product.ActionDecrease:
		result, err = h.carts.Decrease(ctx, sessionID, id)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Either action or quantity is required",
		})
		return
	}

	h.respond(c, result, err)
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseID(c, "id", "product ID")
	if !ok {
		return
	}

	result, err := h.carts.Remove(c.Request.Context(), middleware.GetSessionID(c), id)
	h.respond(c, result, err)
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// ApplyPromo handles POST /cart/promo
func (h *CartHandler) ApplyPromo(c *gin.Context) {
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.carts.ApplyPromo(c.Request.Context(), middleware.GetSessionID(c), req.Code)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, cart.ErrPromoBelowMinimum):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, cart.ErrPromoLocked):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error": noticeMessage(result),
			"data":  result,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": noticeMessage(result),
		"data":    result,
	})
}

// RemovePromo handles DELETE /cart/promo
func (h *CartHandler) RemovePromo(c *gin.Context) {
	result := h.carts.RemovePromo(c.Request.Context(), middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": noticeMessage(result),
		"data":    result,
	})
}

// Events handles GET /cart/events. It streams the current cart, then a fresh
// view each time another view of the same session changes it.
func (h *CartHandler) Events(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := middleware.GetSessionID(c)

	views, err := h.carts.Watch(ctx, sessionID)
	if err != nil {
		h.logger.WithFields(logrus.Fields{"session_id": sessionID, "error": err.Error()}).Error("Failed to watch cart")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart updates unavailable",
		})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("cart", h.carts.Get(ctx, sessionID))
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-views:
			if !ok {
				return
			}
			c.SSEvent("cart", view)
			c.Writer.Flush()
		case <-heartbeat.C:
			c.SSEvent("ping", time.Now().UnixMilli())
			c.Writer.Flush()
		}
	}
}

func (h *CartHandler) respond(c *gin.Context, result *cart.Result, err error) {
	if err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not in cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": noticeMessage(result),
		"data":    result,
	})
}

func noticeMessage(result *cart.Result) string {
	if result == nil || result.Notice == nil {
		return ""
	}
	return result.Notice.Message
}
