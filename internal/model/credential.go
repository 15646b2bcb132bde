package model

import (
	"time"

	"github.com/google/uuid"
)

// VoterCredential 已驗證的投票者憑證內容，只能由 identity.Issuer 產生
type VoterCredential struct {
	TicketID     uuid.UUID
	TicketSerial string
	ExpiresAt    time.Time
}

// AdminCredential 已驗證的管理員憑證內容
type AdminCredential struct {
	AdminID   uuid.UUID
	Username  string
	ExpiresAt time.Time
}
