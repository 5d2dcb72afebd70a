package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/service"
	"github.com/ikkim/creme-backend/internal/cart"
	apperrors "github.com/ikkim/creme-backend/internal/errors"
	"github.com/ikkim/creme-backend/internal/middleware"
)

// respondWriteError maps a gateway write error to an error body. context
// names the operation for logs and for the parser's fallback message.
func respondWriteError(c *gin.Context, err error, context string) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrStoreNotConfigured):
		log.Warn("Write refused: store not configured", map[string]interface{}{
			"operation": context,
		})
		apperrors.ServiceUnavailable(c, apperrors.StoreNotConfigured,
			"The menu store is not configured. Set DATABASE_URL and restart the server.")
	case errors.Is(err, service.ErrProductNotFound):
		apperrors.NotFound(c, apperrors.MenuProductNotFound, "Product not found")
	case errors.Is(err, service.ErrCategoryNotFound):
		apperrors.NotFound(c, apperrors.MenuCategoryNotFound, "Category not found")
	case errors.Is(err, service.ErrCategoryExists):
		apperrors.Conflict(c, apperrors.MenuCategoryExists, "A category with this ID already exists.")
	case errors.Is(err, service.ErrInvalidCategory):
		apperrors.BadRequest(c, apperrors.MenuCategoryInvalid, "Please fill in both ID and Label.")
	case errors.Is(err, service.ErrInvalidProduct):
		apperrors.BadRequest(c, apperrors.MenuProductInvalid, err.Error())
	case errors.Is(err, service.ErrEmptyOrder):
		apperrors.BadRequest(c, apperrors.CheckoutEmptyOrder, "Your cart is empty")
	case errors.Is(err, cart.ErrUnknownOption):
		apperrors.BadRequest(c, apperrors.CheckoutUnknownOption, err.Error())
	default:
		log.Error("Operation failed", err, map[string]interface{}{
			"operation": context,
		})
		info := apperrors.ParseError(err, context)
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
	}
}

// respondBindError reports an unparsable request body.
func respondBindError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromContext(c).Warn("Invalid "+what+" request", map[string]interface{}{
		"error": err.Error(),
	})
	apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data: "+err.Error())
}
