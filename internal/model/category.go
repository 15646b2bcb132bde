package model

import (
	"time"

	"github.com/google/uuid"
)

// Category 投票分類
type Category struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Icon         *string   `json:"icon" db:"icon"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	DisplayOrder int       `json:"order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	IconURL        *string      `json:"icon_url" db:"-"`
	CandidateCount *int         `json:"candidate_count,omitempty" db:"-"`
	Candidates     []*Candidate `json:"candidates,omitempty" db:"-"`
}

type CreateCategoryParams struct {
	Name     string
	IsActive *bool
}

type UpdateCategoryParams struct {
	Name     *string
	IsActive *bool
}
