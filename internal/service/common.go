package service

import (
	"context"
	"event-voting/internal/model"
	"event-voting/internal/storage"
	"event-voting/pkg/logger"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TxBeginner 由 *pgxpool.Pool 實作
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type VoterTokenIssuer interface {
	IssueVoter(ticket *model.Ticket) (string, error)
}

type AdminTokenIssuer interface {
	IssueAdmin(admin *model.Admin) (string, error)
}

func publicURL(store storage.ObjectStorage, objectPath *string) *string {
	if objectPath == nil || *objectPath == "" {
		return nil
	}
	url := store.PublicURL(*objectPath)
	return &url
}

// deleteObject 刪除舊檔失敗只記錄，不影響請求結果
func deleteObject(ctx context.Context, store storage.ObjectStorage, objectPath *string) {
	if objectPath == nil || *objectPath == "" {
		return
	}
	if err := store.Delete(ctx, *objectPath); err != nil {
		logger.WithComponent("storage").Warn("Failed to delete object",
			zap.String("path", *objectPath), zap.Error(err))
	}
}

func hasContentTypePrefix(upload *model.FileUpload, prefix string) bool {
	return upload != nil && strings.HasPrefix(upload.ContentType, prefix)
}
