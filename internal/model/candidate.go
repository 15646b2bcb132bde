package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const CandidateNameMaxLength = 120

// Candidate 分類底下的候選人
type Candidate struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CategoryID uuid.UUID `json:"category_id" db:"category_id"`
	NomineeID  string    `json:"nominee_id" db:"nominee_id"`
	Name       string    `json:"name" db:"name"`
	Image      *string   `json:"image" db:"image"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`

	ImageURL     *string `json:"image_url" db:"-"`
	CategoryName string  `json:"category_name,omitempty" db:"-"`
}

type CreateCandidateParams struct {
	CategoryID uuid.UUID
	NomineeID  string
	Name       string
}

type UpdateCandidateParams struct {
	CategoryID *uuid.UUID
	NomineeID  *string
	Name       *string
}

// NormalizeCandidateName 去除前後空白並檢查長度
func NormalizeCandidateName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > CandidateNameMaxLength {
		return "", false
	}
	return trimmed, true
}
