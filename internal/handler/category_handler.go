package handler

import (
	"event-voting/internal/model"
	"event-voting/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(routes *Routes) {
	routes.Client.GET("categories", h.ListActive)
	routes.Client.GET("categories/:categoryId/candidates", h.GetActiveWithCandidates)

	admin := routes.Admin.Group("categories")
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PATCH("reorder", h.Reorder)
		admin.GET(":categoryId", h.Get)
		admin.PATCH(":categoryId", h.Update)
		admin.DELETE(":categoryId", h.Delete)
		admin.PUT(":categoryId/icon", h.SetIcon)
		admin.DELETE(":categoryId/icon", h.RemoveIcon)
	}
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type ReorderCategoriesRequest struct {
	CategoryIDs []uuid.UUID `json:"category_ids" binding:"required,min=1"`
}

func (h *CategoryHandler) ListActive(c *gin.Context) {
	categories, err := h.service.ListActive(c)
	if err != nil {
		handleError(c, err, "ListActiveCategories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetActiveWithCandidates(c *gin.Context) {
	id, ok := ParamUUID(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.service.GetActiveWithCandidates(c, id)
	if err != nil {
		handleError(c, err, "GetCategoryCandidates")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListCategories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := ParamUUID(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "GetCategory")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	category, err := h.service.Create(c, model.CreateCategoryParams{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		handleError(c, err, "CreateCategory")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := ParamUUID(c, "categoryId")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	category, err := h.service.Update(c, id, model.UpdateCategoryParams{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		handleError(c, err, "UpdateCategory")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := ParamUUID(c, "categoryId")
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteCategory")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) Reorder(c *gin.Context) {
	var req ReorderCategoriesRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	categories, err := h.service.Reorder(c, req.CategoryIDs)
	if err != nil {
		handleError(c, err, "ReorderCategories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) SetIcon(c *gin.Context) {
	id, ok := ParamUUID(c, "categoryId")
	if !ok {
		return
	}

	upload, closeFile, err := readUpload(c, "icon", maxImageSize)
	if err != nil {
		handleError(c, err, "SetCategoryIcon")
		return
	}
	defer closeFile()

	category, err := h.service.SetIcon(c, id, upload)
	if err != nil {
		handleError(c, err, "SetCategoryIcon")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) RemoveIcon(c *gin.Context) {
	id, ok := ParamUUID(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.service.RemoveIcon(c, id)
	if err != nil {
		handleError(c, err, "RemoveCategoryIcon")
		return
	}
	c.JSON(http.StatusOK, category)
}
