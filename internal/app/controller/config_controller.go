package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/internal/app/service"
	"github.com/ikkim/creme-backend/internal/middleware"
)

// ConfigController edits the four site settings singletons.
type ConfigController struct {
	gateway service.MenuGateway
}

func NewConfigController(gateway service.MenuGateway) *ConfigController {
	return &ConfigController{
		gateway: gateway,
	}
}

// UpdateThemeConfig saves the theme colors and pushes them to live clients (Admin only)
// PUT /api/v1/admin/config/theme
func (ctrl *ConfigController) UpdateThemeConfig(c *gin.Context) {
	var patch menu.ThemePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err, "theme config")
		return
	}

	if err := ctrl.gateway.UpdateThemeConfig(c.Request.Context(), patch); err != nil {
		respondWriteError(c, err, "save theme config")
		return
	}

	ctrl.saved(c, "theme", ctrl.gateway.FetchThemeConfig(c.Request.Context()))
}

// UpdateAppConfig saves branding and hero settings and broadcasts them (Admin only)
// PUT /api/v1/admin/config/app
func (ctrl *ConfigController) UpdateAppConfig(c *gin.Context) {
	var patch menu.AppConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err, "app config")
		return
	}

	if err := ctrl.gateway.UpdateAppConfig(c.Request.Context(), patch); err != nil {
		respondWriteError(c, err, "save app config")
		return
	}

	ctrl.saved(c, "app", ctrl.gateway.FetchAppConfig(c.Request.Context()))
}

// UpdateSocialConfig saves the Instagram and Facebook links (Admin only)
// PUT /api/v1/admin/config/social
func (ctrl *ConfigController) UpdateSocialConfig(c *gin.Context) {
	var patch menu.SocialPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err, "social config")
		return
	}

	if err := ctrl.gateway.UpdateSocialConfig(c.Request.Context(), patch); err != nil {
		respondWriteError(c, err, "save social config")
		return
	}

	ctrl.saved(c, "social", ctrl.gateway.FetchSocialConfig(c.Request.Context()))
}

// UpdateAddressConfig saves the shop address and its maps link (Admin only)
// PUT /api/v1/admin/config/address
func (ctrl *ConfigController) UpdateAddressConfig(c *gin.Context) {
	var patch menu.AddressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err, "address config")
		return
	}

	if err := ctrl.gateway.UpdateAddressConfig(c.Request.Context(), patch); err != nil {
		respondWriteError(c, err, "save address config")
		return
	}

	ctrl.saved(c, "address", ctrl.gateway.FetchAddressConfig(c.Request.Context()))
}

func (ctrl *ConfigController) saved(c *gin.Context, name string, value interface{}) {
	middleware.GetLoggerFromContext(c).Info("Site settings saved", map[string]interface{}{
		"config": name,
	})
	c.JSON(http.StatusOK, gin.H{
		name: value,
	})
}
