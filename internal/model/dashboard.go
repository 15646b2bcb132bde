package model

import (
	"time"

	"github.com/google/uuid"
)

type DashboardStats struct {
	TotalCategories  int `json:"total_categories"`
	ActiveCategories int `json:"active_categories"`
	TotalCandidates  int `json:"total_candidates"`
	TotalTickets     int `json:"total_tickets"`
	UsedTickets      int `json:"used_tickets"`
	TotalVotes       int `json:"total_votes"`
}

type ActivityType string

const (
	ActivityVote      ActivityType = "vote"
	ActivityTicket    ActivityType = "ticket"
	ActivityCandidate ActivityType = "candidate"
	ActivityCategory  ActivityType = "category"
)

// Activity 後台最近活動
type Activity struct {
	ID          uuid.UUID    `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}

// CandidateVoteCount repository 回傳的原始計票列
type CandidateVoteCount struct {
	CategoryID   uuid.UUID
	CategoryName string
	CategoryIcon *string
	CandidateID  *uuid.UUID
	NomineeID    string
	Name         string
	Image        *string
	VoteCount    int
}

type CandidateStatistics struct {
	ID         uuid.UUID `json:"id"`
	NomineeID  string    `json:"nominee_id"`
	Name       string    `json:"name"`
	ImageURL   *string   `json:"image_url"`
	VoteCount  int       `json:"vote_count"`
	Percentage int       `json:"percentage"`
	IsWinner   bool      `json:"is_winner"`
}

type CategoryStatistics struct {
	ID         uuid.UUID              `json:"id"`
	Name       string                 `json:"name"`
	IconURL    *string                `json:"icon_url"`
	TotalVotes int                    `json:"total_votes"`
	Candidates []*CandidateStatistics `json:"candidates"`
}

type VotingStatistics struct {
	Categories  []*CategoryStatistics `json:"categories"`
	TotalVotes  int                   `json:"total_votes"`
	TotalVoters int                   `json:"total_voters"`
}
