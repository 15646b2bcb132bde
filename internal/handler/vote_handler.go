package handler

import (
	"event-voting/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VoteHandler struct {
	service service.VoteService
}

func NewVoteHandler(service service.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

func (h *VoteHandler) RegisterRoutes(routes *Routes) {
	routes.Voter.POST("votes", h.CastVote)
	routes.Voter.DELETE("votes/:categoryId", h.CancelVote)
	routes.Voter.GET("votes/status/:categoryId", h.GetVoteStatus)
}

type CastVoteRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
}

func (h *VoteHandler) CastVote(c *gin.Context) {
	cred, err := voterCredential(c)
	if err != nil {
		handleError(c, err, "CastVote")
		return
	}

	var req CastVoteRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.CastVote(c, cred, req.CandidateID, req.CategoryID)
	if err != nil {
		handleError(c, err, "CastVote")
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *VoteHandler) CancelVote(c *gin.Context) {
	cred, err := voterCredential(c)
	if err != nil {
		handleError(c, err, "CancelVote")
		return
	}

	categoryID, ok := ParamUUID(c, "categoryId")
	if !ok {
		return
	}

	result, err := h.service.CancelVote(c, cred, categoryID)
	if err != nil {
		handleError(c, err, "CancelVote")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *VoteHandler) GetVoteStatus(c *gin.Context) {
	cred, err := voterCredential(c)
	if err != nil {
		handleError(c, err, "GetVoteStatus")
		return
	}

	categoryID, ok := ParamUUID(c, "categoryId")
	if !ok {
		return
	}

	status, err := h.service.GetVoteStatus(c, cred, categoryID)
	if err != nil {
		handleError(c, err, "GetVoteStatus")
		return
	}
	c.JSON(http.StatusOK, status)
}
