package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/service"
	"github.com/ikkim/creme-backend/internal/middleware"
)

// MenuController serves the public storefront. Reads never fail; an
// unreachable store is answered with the fallback menu.
type MenuController struct {
	gateway    service.MenuGateway
	storefront service.StorefrontService
}

func NewMenuController(gateway service.MenuGateway, storefront service.StorefrontService) *MenuController {
	return &MenuController{
		gateway:    gateway,
		storefront: storefront,
	}
}

type CheckoutRequest struct {
	Items []service.OrderLine `json:"items" binding:"required,dive"`
}

// GetMenu returns the composed storefront view
// GET /api/v1/menu?q=
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	view := ctrl.storefront.MenuView(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, view)
}

// GetProducts returns visible products
// GET /api/v1/products
func (ctrl *MenuController) GetProducts(c *gin.Context) {
	products := ctrl.gateway.FetchProducts(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetCategories returns categories in display order
// GET /api/v1/categories
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	categories := ctrl.gateway.FetchCategories(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
	})
}

// GET /api/v1/config
func (ctrl *MenuController) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.gateway.FetchAllConfig(c.Request.Context()))
}

// GET /api/v1/config/theme
func (ctrl *MenuController) GetThemeConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.gateway.FetchThemeConfig(c.Request.Context()))
}

// GET /api/v1/config/social
func (ctrl *MenuController) GetSocialConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.gateway.FetchSocialConfig(c.Request.Context()))
}

// GET /api/v1/config/address
func (ctrl *MenuController) GetAddressConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.gateway.FetchAddressConfig(c.Request.Context()))
}

// GET /api/v1/config/app
func (ctrl *MenuController) GetAppConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.gateway.FetchAppConfig(c.Request.Context()))
}

// Search filters visible products by name or description
// GET /api/v1/search?q=
func (ctrl *MenuController) Search(c *gin.Context) {
	query := c.Query("q")
	results := ctrl.storefront.Search(c.Request.Context(), query)

	middleware.GetLoggerFromContext(c).Debug("Menu searched", map[string]interface{}{
		"query":   query,
		"results": len(results),
	})

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"products": results,
		"count":    len(results),
	})
}

// Checkout prices a cart and returns the chat handoff link
// POST /api/v1/checkout
func (ctrl *MenuController) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "checkout")
		return
	}

	result, err := ctrl.storefront.Checkout(c.Request.Context(), req.Items)
	if err != nil {
		respondWriteError(c, err, "checkout")
		return
	}

	c.JSON(http.StatusOK, result)
}
