package handler

import (
	"event-voting/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.AdminService
}

func NewAuthHandler(service service.AdminService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(routes *Routes) {
	routes.AdminPublic.POST("auth/login", h.Login)
	routes.Admin.GET("auth/profile", h.Profile)
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	result, err := h.service.Login(c, req.Username, req.Password)
	if err != nil {
		handleError(c, err, "Login")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	cred, err := adminCredential(c)
	if err != nil {
		handleError(c, err, "Profile")
		return
	}

	admin, err := h.service.Profile(c, cred.AdminID)
	if err != nil {
		handleError(c, err, "Profile")
		return
	}
	c.JSON(http.StatusOK, admin)
}
