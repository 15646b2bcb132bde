package model

import (
	"time"

	"github.com/google/uuid"
)

// Vote 一張票券在一個分類的一票
type Vote struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TicketID    uuid.UUID `json:"ticket_id" db:"ticket_id"`
	CategoryID  uuid.UUID `json:"category_id" db:"category_id"`
	CandidateID uuid.UUID `json:"candidate_id" db:"candidate_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type VoteResponse struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	CategoryID  uuid.UUID `json:"category_id"`
}

type CastVoteResult struct {
	Vote            VoteResponse `json:"vote"`
	VotedCategories []uuid.UUID  `json:"voted_categories"`
}

type CancelVoteResult struct {
	VotedCategories []uuid.UUID `json:"voted_categories"`
}

type VoteStatus struct {
	HasVoted         bool       `json:"has_voted"`
	VotedCandidateID *uuid.UUID `json:"voted_candidate_id"`
}

func (v *Vote) ToResponse() VoteResponse {
	return VoteResponse{
		ID:          v.ID,
		CandidateID: v.CandidateID,
		CategoryID:  v.CategoryID,
	}
}
