package handler

import (
	"event-voting/internal/model"
	apperrors "event-voting/pkg/app_errors"
	"event-voting/pkg/logger"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	voterCredentialKey = "voter_credential"
	adminCredentialKey = "admin_credential"
)

// CredentialVerifier 由 identity.Issuer 實作
type CredentialVerifier interface {
	VerifyVoter(token string) (*model.VoterCredential, error)
	VerifyAdmin(token string) (*model.AdminCredential, error)
}

// RequireVoter 驗證投票者憑證，管理員憑證會被拒絕
func RequireVoter(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		cred, err := verifier.VerifyVoter(bearerToken(c))
		if err != nil {
			handleError(c, err, "RequireVoter")
			return
		}
		c.Set(voterCredentialKey, cred)
		c.Next()
	}
}

// RequireAdmin 驗證管理員憑證，投票者憑證會被拒絕
func RequireAdmin(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		cred, err := verifier.VerifyAdmin(bearerToken(c))
		if err != nil {
			handleError(c, err, "RequireAdmin")
			return
		}
		c.Set(adminCredentialKey, cred)
		c.Next()
	}
}

func voterCredential(c *gin.Context) (*model.VoterCredential, error) {
	if value, ok := c.Get(voterCredentialKey); ok {
		if cred, ok := value.(*model.VoterCredential); ok {
			return cred, nil
		}
	}
	return nil, apperrors.ErrMissingCredential
}

func adminCredential(c *gin.Context) (*model.AdminCredential, error) {
	if value, ok := c.Get(adminCredentialKey); ok {
		if cred, ok := value.(*model.AdminCredential); ok {
			return cred, nil
		}
	}
	return nil, apperrors.ErrMissingCredential
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequestLogger 每個請求寫一行 log
func RequestLogger() gin.HandlerFunc {
	log := logger.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("request completed", fields...)
			return
		}
		log.Info("request completed", fields...)
	}
}

// CORS 允許前端網域帶憑證呼叫 API
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowedOrigin == "*" || origin == allowedOrigin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
