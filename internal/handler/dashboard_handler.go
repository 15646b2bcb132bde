package handler

import (
	"event-voting/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(routes *Routes) {
	admin := routes.Admin.Group("dashboard")
	{
		admin.GET("stats", h.Stats)
		admin.GET("activities", h.RecentActivities)
		admin.GET("voting-stats", h.VotingStatistics)
	}
}

type RecentActivitiesQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c)
	if err != nil {
		handleError(c, err, "DashboardStats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) RecentActivities(c *gin.Context) {
	var query RecentActivitiesQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	activities, err := h.service.RecentActivities(c, query.Limit)
	if err != nil {
		handleError(c, err, "RecentActivities")
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *DashboardHandler) VotingStatistics(c *gin.Context) {
	stats, err := h.service.VotingStatistics(c)
	if err != nil {
		handleError(c, err, "VotingStatistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
