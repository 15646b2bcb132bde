package handler

import (
	"event-voting/internal/model"
	"event-voting/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	service service.CandidateService
}

func NewCandidateHandler(service service.CandidateService) *CandidateHandler {
	return &CandidateHandler{service: service}
}

func (h *CandidateHandler) RegisterRoutes(routes *Routes) {
	admin := routes.Admin.Group("candidates")
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.DELETE("", h.DeleteAll)
		admin.GET(":candidateId", h.Get)
		admin.PATCH(":candidateId", h.Update)
		admin.DELETE(":candidateId", h.Delete)
		admin.PUT(":candidateId/image", h.SetImage)
		admin.DELETE(":candidateId/image", h.RemoveImage)
	}
}

type CreateCandidateRequest struct {
	NomineeID  string `json:"nominee_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
}

type UpdateCandidateRequest struct {
	NomineeID  *string `json:"nominee_id"`
	Name       *string `json:"name"`
	CategoryID *uuid.UUID `json:"category_id"`
}

func (h *CandidateHandler) List(c *gin.Context) {
	categoryID, ok := QueryUUID(c, "category_id")
	if !ok {
		return
	}

	candidates, err := h.service.List(c, categoryID)
	if err != nil {
		handleError(c, err, "ListCandidates")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	id, ok := ParamUUID(c, "candidateId")
	if !ok {
		return
	}

	candidate, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "GetCandidate")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	candidate, err := h.service.Create(c, model.CreateCandidateParams{
		CategoryID: req.CategoryID,
		NomineeID:  req.NomineeID,
		Name:       req.Name,
	})
	if err != nil {
		handleError(c, err, "CreateCandidate")
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := ParamUUID(c, "candidateId")
	if !ok {
		return
	}

	var req UpdateCandidateRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	candidate, err := h.service.Update(c, id, model.UpdateCandidateParams{
		CategoryID: req.CategoryID,
		NomineeID:  req.NomineeID,
		Name:       req.Name,
	})
	if err != nil {
		handleError(c, err, "UpdateCandidate")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, ok := ParamUUID(c, "candidateId")
	if !ok {
		return
	}

	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "DeleteCandidate")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CandidateHandler) DeleteAll(c *gin.Context) {
	count, err := h.service.DeleteAll(c)
	if err != nil {
		handleError(c, err, "DeleteAllCandidates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": count})
}

func (h *CandidateHandler) SetImage(c *gin.Context) {
	id, ok := ParamUUID(c, "candidateId")
	if !ok {
		return
	}

	upload, closeFile, err := readUpload(c, "image", maxImageSize)
	if err != nil {
		handleError(c, err, "SetCandidateImage")
		return
	}
	defer closeFile()

	candidate, err := h.service.SetImage(c, id, upload)
	if err != nil {
		handleError(c, err, "SetCandidateImage")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) RemoveImage(c *gin.Context) {
	id, ok := ParamUUID(c, "candidateId")
	if !ok {
		return
	}

	candidate, err := h.service.RemoveImage(c, id)
	if err != nil {
		handleError(c, err, "RemoveCandidateImage")
		return
	}
	c.JSON(http.StatusOK, candidate)
}
