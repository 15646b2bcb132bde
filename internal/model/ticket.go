package model

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// 票券序號只允許數字，與列印在票券上的一致
var serialPattern = regexp.MustCompile(`^\d{1,18}$`)

// Ticket 票券模型；ID 即 QR code 內容
type Ticket struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Serial    string    `json:"serial" db:"serial"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TicketSummary 回傳給投票者的票券資訊
type TicketSummary struct {
	ID              uuid.UUID   `json:"id"`
	Serial          string      `json:"serial"`
	VotedCategories []uuid.UUID `json:"voted_categories"`
}

// AuthenticateResult 票券登入結果
type AuthenticateResult struct {
	Token  string         `json:"token"`
	Ticket *TicketSummary `json:"ticket"`
}

// TicketWithVotes 後台查詢用，附帶已投票的分類數
type TicketWithVotes struct {
	Ticket
	VoteCount int `json:"vote_count" db:"vote_count"`
}

type ImportTicketsResult struct {
	Imported int       `json:"imported"`
	Skipped  int       `json:"skipped"`
	Tickets  []*Ticket `json:"tickets"`
}

// IsValidSerial 檢查序號格式
func IsValidSerial(serial string) bool {
	return serialPattern.MatchString(serial)
}
