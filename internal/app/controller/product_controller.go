package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/internal/app/service"
	"github.com/ikkim/creme-backend/internal/middleware"
)

// ProductController is the admin product editor.
type ProductController struct {
	gateway service.MenuGateway
}

func NewProductController(gateway service.MenuGateway) *ProductController {
	return &ProductController{
		gateway: gateway,
	}
}

type CreateProductRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	Price            float64  `json:"price" binding:"gte=0"`
	SecondaryPrice   *float64 `json:"secondaryPrice" binding:"omitempty,gte=0"`
	Image            string   `json:"image"`
	Category         string   `json:"category" binding:"required"`
	IsFeatured       bool     `json:"isFeatured"`
	IsVisible        *bool    `json:"isVisible"`
	AvailableOptions []string `json:"availableOptions"`
}

func (r CreateProductRequest) toMenu() menu.Product {
	visible := true
	if r.IsVisible != nil {
		visible = *r.IsVisible
	}
	return menu.Product{
		Name:             r.Name,
		Description:      r.Description,
		Price:            r.Price,
		SecondaryPrice:   r.SecondaryPrice,
		Image:            r.Image,
		Category:         r.Category,
		IsFeatured:       r.IsFeatured,
		IsVisible:        visible,
		AvailableOptions: r.AvailableOptions,
	}
}

// ListProducts returns every product including hidden ones (Admin only)
// GET /api/v1/admin/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	products := ctrl.gateway.FetchAllProducts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// CreateProduct creates a new product (Admin only)
// POST /api/v1/admin/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "product creation")
		return
	}

	product, err := ctrl.gateway.CreateProduct(c.Request.Context(), req.toMenu())
	if err != nil {
		respondWriteError(c, err, "create product")
		return
	}

	log.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	c.JSON(http.StatusCreated, gin.H{
		"product": product,
	})
}

// UpdateProduct applies a partial update (Admin only). A JSON null
// secondaryPrice clears it.
// PUT /api/v1/admin/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	var patch menu.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err, "product update")
		return
	}

	if err := ctrl.gateway.UpdateProduct(c.Request.Context(), id, patch); err != nil {
		respondWriteError(c, err, "update product")
		return
	}

	log.Info("Product updated successfully", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
	})
}

// DeleteProduct deletes a product (Admin only)
// DELETE /api/v1/admin/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.gateway.DeleteProduct(c.Request.Context(), id); err != nil {
		respondWriteError(c, err, "delete product")
		return
	}

	log.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}
