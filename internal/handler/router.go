package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Routes 依權限分組的路由
type Routes struct {
	Client      *gin.RouterGroup
	Voter       *gin.RouterGroup
	AdminPublic *gin.RouterGroup
	Admin       *gin.RouterGroup
}

type RouteRegistrar interface {
	RegisterRoutes(routes *Routes)
}

type RouterConfig struct {
	AllowedOrigin string
}

func NewRouter(cfg RouterConfig, verifier CredentialVerifier, handlers ...RouteRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), CORS(cfg.AllowedOrigin))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api/v1")
	routes := &Routes{
		Client:      api.Group("/client"),
		Voter:       api.Group("/client", RequireVoter(verifier)),
		AdminPublic: api.Group("/admin"),
		Admin:       api.Group("/admin", RequireAdmin(verifier)),
	}

	for _, h := range handlers {
		h.RegisterRoutes(routes)
	}

	return router
}
