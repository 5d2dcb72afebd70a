package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/internal/app/service"
	apperrors "github.com/ikkim/creme-backend/internal/errors"
	"github.com/ikkim/creme-backend/internal/middleware"
	"github.com/ikkim/creme-backend/internal/viewstate"
)

// CategoryController is the admin category editor. Single-step moves go
// through a shared CategoryBoard so that concurrent moves are rejected.
type CategoryController struct {
	gateway service.MenuGateway
	board   *viewstate.CategoryBoard
}

func NewCategoryController(gateway service.MenuGateway, board *viewstate.CategoryBoard) *CategoryController {
	return &CategoryController{
		gateway: gateway,
		board:   board,
	}
}

type CreateCategoryRequest struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type UpdateCategoryRequest struct {
	Label string `json:"label"`
}

type CategoryOrderRequest struct {
	Categories []menu.Category `json:"categories" binding:"required"`
}

type MoveCategoryRequest struct {
	Index     *int   `json:"index" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// CreateCategory adds a category at the end of the order (Admin only)
// POST /api/v1/admin/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "category creation")
		return
	}

	category, err := ctrl.gateway.CreateCategory(c.Request.Context(), menu.Category{ID: req.ID, Label: req.Label})
	if err != nil {
		respondWriteError(c, err, "create category")
		return
	}

	log.Info("Category created successfully", map[string]interface{}{
		"category_id": category.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"category": category,
	})
}

// UpdateCategory renames a category (Admin only)
// PUT /api/v1/admin/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "category update")
		return
	}

	if err := ctrl.gateway.UpdateCategory(c.Request.Context(), id, req.Label); err != nil {
		respondWriteError(c, err, "update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category updated successfully",
	})
}

// DeleteCategory removes a category; its products are left as they are
// DELETE /api/v1/admin/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.gateway.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWriteError(c, err, "delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}

// UpdateOrder stores the full category order (Admin only)
// PUT /api/v1/admin/categories/order
func (ctrl *CategoryController) UpdateOrder(c *gin.Context) {
	var req CategoryOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "category order")
		return
	}

	if err := ctrl.gateway.UpdateCategoryOrder(c.Request.Context(), req.Categories); err != nil {
		respondWriteError(c, err, "update category order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": ctrl.gateway.FetchCategories(c.Request.Context()),
	})
}

// MoveCategory swaps one category with its neighbour (Admin only)
// POST /api/v1/admin/categories/move
func (ctrl *CategoryController) MoveCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req MoveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "category move")
		return
	}

	categories, err := ctrl.board.ReloadAndMove(c.Request.Context(), *req.Index, viewstate.Direction(req.Direction))
	var reorderErr *viewstate.ReorderFailedError
	switch {
	case err == nil:
	case errors.Is(err, viewstate.ErrReorderInProgress):
		apperrors.Conflict(c, apperrors.MenuReorderInProgress, "Another reorder is in progress")
		return
	case errors.As(err, &reorderErr):
		if errors.Is(err, service.ErrStoreNotConfigured) {
			respondWriteError(c, err, "move category")
			return
		}
		log.Error("Category move failed", err, map[string]interface{}{
			"index":     *req.Index,
			"direction": req.Direction,
		})
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.MenuReorderFailed, reorderErr.Error())
		return
	default:
		respondWriteError(c, err, "move category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
	})
}
