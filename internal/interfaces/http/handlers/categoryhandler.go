package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/category/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/sanitize"
	"quickdesk/internal/shared/utils"
)

type AddCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryHandler struct {
	addCategoryUC    usecases.AddCategoryExecutor
	removeCategoryUC usecases.RemoveCategoryExecutor
	listCategoriesUC usecases.ListCategoriesExecutor
	logger           logger.Interface
}

func NewCategoryHandler(
	addCategoryUC usecases.AddCategoryExecutor,
	removeCategoryUC usecases.RemoveCategoryExecutor,
	listCategoriesUC usecases.ListCategoriesExecutor,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		addCategoryUC:    addCategoryUC,
		removeCategoryUC: removeCategoryUC,
		listCategoriesUC: listCategoriesUC,
		logger:           logger,
	}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listCategoriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddCategory handles POST /categories
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorRole, _ := middleware.ActorRole(c)

	result, err := h.addCategoryUC.Execute(c.Request.Context(), usecases.AddCategoryCommand{
		ActorRole: actorRole,
		Name:      sanitize.Text(req.Name),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category \""+result.Name+"\" added.")
}

// RemoveCategory handles DELETE /categories/:name
func (h *CategoryHandler) RemoveCategory(c *gin.Context) {
	name := c.Param("name")
	actorRole, _ := middleware.ActorRole(c)

	err := h.removeCategoryUC.Execute(c.Request.Context(), usecases.RemoveCategoryCommand{
		ActorRole: actorRole,
		Name:      name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category \""+name+"\" deleted.", nil)
}
