package handler

import (
	"event-voting/internal/model"
	"event-voting/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const maxVideoSize = 200 << 20

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(routes *Routes) {
	routes.Client.GET("config", h.PublicConfig)

	admin := routes.Admin.Group("settings")
	{
		admin.GET("", h.Get)
		admin.PATCH("", h.Update)
		admin.POST("toggle-voting", h.ToggleVoting)
		admin.PUT("promo-video", h.SetPromoVideo)
		admin.DELETE("promo-video", h.DeletePromoVideo)
	}
}

type UpdateSettingsRequest struct {
	EventName           *string    `json:"event_name"`
	EventStartTime      *time.Time `json:"event_start_time"`
	ClearEventStartTime bool       `json:"clear_event_start_time"`
	VotingEnabled       *bool      `json:"voting_enabled"`
}

type ToggleVotingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *SettingsHandler) PublicConfig(c *gin.Context) {
	cfg, err := h.service.PublicConfig(c)
	if err != nil {
		handleError(c, err, "PublicConfig")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c)
	if err != nil {
		handleError(c, err, "GetSettings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	settings, err := h.service.Update(c, model.UpdateSettingsParams{
		EventName:           req.EventName,
		EventStartTime:      req.EventStartTime,
		ClearEventStartTime: req.ClearEventStartTime,
		VotingEnabled:       req.VotingEnabled,
	})
	if err != nil {
		handleError(c, err, "UpdateSettings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) ToggleVoting(c *gin.Context) {
	var req ToggleVotingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	settings, err := h.service.ToggleVoting(c, *req.Enabled)
	if err != nil {
		handleError(c, err, "ToggleVoting")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) SetPromoVideo(c *gin.Context) {
	upload, closeFile, err := readUpload(c, "video", maxVideoSize)
	if err != nil {
		handleError(c, err, "SetPromoVideo")
		return
	}
	defer closeFile()

	settings, err := h.service.SetPromoVideo(c, upload)
	if err != nil {
		handleError(c, err, "SetPromoVideo")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) DeletePromoVideo(c *gin.Context) {
	settings, err := h.service.DeletePromoVideo(c)
	if err != nil {
		handleError(c, err, "DeletePromoVideo")
		return
	}
	c.JSON(http.StatusOK, settings)
}
