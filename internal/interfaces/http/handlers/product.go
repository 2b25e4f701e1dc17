// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petalline/storefront/internal/domain/product"
	"github.com/petalline/storefront/internal/interfaces/http/middleware"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	productService *product.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *product.Service) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// QuantityRequest edits a grid stepper. Exactly one of Action or Quantity is used.
type QuantityRequest struct {
	Action   string `json:"action"`
	Quantity *int   `json:"quantity"`
}

// ModalAddRequest adds from the detail overlay
type ModalAddRequest struct {
	Quantity int  `json:"quantity"`
	BuyNow   bool `json:"buyNow"`
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid page",
			})
			return
		}
		page = n
	}

	grid, err := h.productService.Grid(middleware.GetSessionID(c), page, c.Query("category"))
	if err != nil {
		if errors.Is(err, product.ErrPageOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Page out of range",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    grid,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "product ID")
	if !ok {
		return
	}

	detail, err := h.productService.Detail(id, c.Query("returnFocus"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    detail,
	})
}

// GetCategories handles GET /products/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.productService.Categories(),
	})
}

// UpdateQuantity handles PUT /products/:id/quantity
func (h *ProductHandler) UpdateQuantity(c *gin.Context) {
	id, ok := parseID(c, "id", "product ID")
	if !ok {
		return
	}

	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sessionID := middleware.GetSessionID(c)

	var (
		quantity int
		err      error
	)
	if req.Quantity != nil {
		quantity, err = h.productService.SetQuantity(sessionID, id, *req.Quantity)
	} else {
		quantity, err = h.productService.StepQuantity(sessionID, id, req.Action)
	}

	switch {
	case errors.Is(err, product.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	case errors.Is(err, product.ErrInvalidQuantity):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Quantity must be between 1 and 99",
			"data":  gin.H{"quantity": quantity},
		})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quantity updated",
		"data":    gin.H{"quantity": quantity},
	})
}

// AddToCart handles POST /products/:id/cart
func (h *ProductHandler) AddToCart(c *gin.Context) {
	id, ok := parseID(c, "id", "product ID")
	if !ok {
		return
	}

	result, err := h.productService.AddToCart(c.Request.Context(), middleware.GetSessionID(c), id)
	h.respondAdd(c, result, err)
}

// AddFromModal handles POST /products/:id/cart/modal
func (h *ProductHandler) AddFromModal(c *gin.Context) {
	id, ok := parseID(c, "id", "product ID")
	if !ok {
		return
	}

	var req ModalAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.productService.AddFromDetail(c.Request.Context(), middleware.GetSessionID(c), id, req.Quantity, req.BuyNow)
	h.respondAdd(c, result, err)
}

func (h *ProductHandler) respondAdd(c *gin.Context, result *product.AddResult, err error) {
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

	// A cap-refused add is a warning; the notice carries it and added is 0
	c.JSON(http.StatusOK, gin.H{
		"message": noticeMessage(result.Result),
		"data":    result,
	})
}
