package handler

import (
	"errors"
	"event-voting/internal/model"
	apperrors "event-voting/pkg/app_errors"
	"event-voting/pkg/logger"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  "invalid_argument",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  "invalid_argument",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  "invalid_argument",
		})
		return err
	}
	return nil
}

// ParamUUID 解析路徑參數，失敗時直接回應 400
func ParamUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
			"code":  "invalid_argument",
		})
		return uuid.Nil, false
	}
	return id, true
}

// QueryUUID 解析選填的查詢參數，未帶時回傳 nil
func QueryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
			"code":  "invalid_argument",
		})
		return nil, false
	}
	return &id, true
}

// errorStatus 依錯誤種類對應 HTTP status 與錯誤代碼
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "conflict"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("Unexpected error")
		c.AbortWithStatusJSON(status, gin.H{
			"error": "Internal server error",
			"code":  code,
		})
		return
	}

	message := apperrors.Message(err)
	log.Warn(message)
	c.AbortWithStatusJSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}

// readUpload 讀取 multipart 檔案；呼叫端需呼叫回傳的 close
func readUpload(c *gin.Context, field string, maxSize int64) (*model.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidInput
	}
	if header.Size > maxSize {
		return nil, nil, apperrors.ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &model.FileUpload{
		FileName:    header.Filename,
		ContentType: contentType(header),
		Size:        header.Size,
		Reader:      file,
	}, func() { _ = file.Close() }, nil
}

func contentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
