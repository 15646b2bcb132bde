package service

import (
	"context"
	"event-voting/internal/model"
	"event-voting/internal/repository"
	"event-voting/internal/storage"
	"math"

	"github.com/google/uuid"
)

const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 50
)

type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
	RecentActivities(ctx context.Context, limit int) ([]*model.Activity, error)
	VotingStatistics(ctx context.Context) (*model.VotingStatistics, error)
}

type DashboardServiceImpl struct {
	repository repository.DashboardRepository
	storage    storage.ObjectStorage
}

func NewDashboardService(dashboardRepository repository.DashboardRepository, objectStorage storage.ObjectStorage) DashboardService {
	return &DashboardServiceImpl{
		repository: dashboardRepository,
		storage:    objectStorage,
	}
}

func (s *DashboardServiceImpl) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return s.repository.Stats(ctx)
}

func (s *DashboardServiceImpl) RecentActivities(ctx context.Context, limit int) ([]*model.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}
	return s.repository.RecentActivities(ctx, limit)
}

// VotingStatistics 依分類彙整得票；同票最高者皆為勝出，零票不算勝出
func (s *DashboardServiceImpl) VotingStatistics(ctx context.Context) (*model.VotingStatistics, error) {
	counts, err := s.repository.CandidateVoteCounts(ctx)
	if err != nil {
		return nil, err
	}

	voters, err := s.repository.CountVoters(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.VotingStatistics{
		Categories:  make([]*model.CategoryStatistics, 0),
		TotalVoters: voters,
	}

	byID := make(map[uuid.UUID]*model.CategoryStatistics)
	for _, row := range counts {
		category, ok := byID[row.CategoryID]
		if !ok {
			category = &model.CategoryStatistics{
				ID:         row.CategoryID,
				Name:       row.CategoryName,
				IconURL:    publicURL(s.storage, row.CategoryIcon),
				Candidates: make([]*model.CandidateStatistics, 0),
			}
			byID[row.CategoryID] = category
			result.Categories = append(result.Categories, category)
		}
		if row.CandidateID == nil {
			continue
		}

		category.TotalVotes += row.VoteCount
		category.Candidates = append(category.Candidates, &model.CandidateStatistics{
			ID:        *row.CandidateID,
			NomineeID: row.NomineeID,
			Name:      row.Name,
			ImageURL:  publicURL(s.storage, row.Image),
			VoteCount: row.VoteCount,
		})
	}

	for _, category := range result.Categories {
		result.TotalVotes += category.TotalVotes

		maxVotes := 0
		for _, candidate := range category.Candidates {
			if candidate.VoteCount > maxVotes {
				maxVotes = candidate.VoteCount
			}
		}
		for _, candidate := range category.Candidates {
			candidate.Percentage = percentage(candidate.VoteCount, category.TotalVotes)
			candidate.IsWinner = maxVotes > 0 && candidate.VoteCount == maxVotes
		}
	}

	return result, nil
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}
