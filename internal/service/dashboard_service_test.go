package service

import (
	"context"
	"event-voting/internal/model"
	repomocks "event-voting/internal/repository/mocks"
	storagemocks "event-voting/internal/storage/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func voteCountRow(categoryID uuid.UUID, categoryName, nominee string, count int) *model.CandidateVoteCount {
	id := uuid.New()
	return &model.CandidateVoteCount{
		CategoryID:   categoryID,
		CategoryName: categoryName,
		CandidateID:  &id,
		NomineeID:    nominee,
		Name:         "Nominee " + nominee,
		VoteCount:    count,
	}
}

func TestVotingStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := repomocks.NewDashboardRepositoryMock()
		band := uuid.New()
		song := uuid.New()
		empty := uuid.New()
		icon := "categories/icons/band.png"

		rows := []*model.CandidateVoteCount{
			voteCountRow(band, "Best Band", "A", 2),
			voteCountRow(band, "Best Band", "B", 1),
			voteCountRow(song, "Best Song", "C", 3),
			voteCountRow(song, "Best Song", "D", 3),
			{CategoryID: empty, CategoryName: "Empty"},
		}
		rows[0].CategoryIcon = &icon
		repo.On("CandidateVoteCounts", mock.Anything).Return(rows, nil).Once()
		repo.On("CountVoters", mock.Anything).Return(4, nil).Once()

		stats, err := NewDashboardService(repo, storagemocks.NewObjectStorageMock()).VotingStatistics(ctx)

		require.NoError(t, err)
		assert.Equal(t, 9, stats.TotalVotes)
		assert.Equal(t, 4, stats.TotalVoters)
		require.Len(t, stats.Categories, 3)

		bandStats := stats.Categories[0]
		assert.Equal(t, "Best Band", bandStats.Name)
		assert.Equal(t, 3, bandStats.TotalVotes)
		require.NotNil(t, bandStats.IconURL)
		assert.Equal(t, "http://storage.test/uploads/categories/icons/band.png", *bandStats.IconURL)
		assert.Equal(t, 67, bandStats.Candidates[0].Percentage)
		assert.Equal(t, 33, bandStats.Candidates[1].Percentage)
		assert.True(t, bandStats.Candidates[0].IsWinner)
		assert.False(t, bandStats.Candidates[1].IsWinner)

		// 同票皆為勝出
		songStats := stats.Categories[1]
		assert.True(t, songStats.Candidates[0].IsWinner)
		assert.True(t, songStats.Candidates[1].IsWinner)
		assert.Equal(t, 50, songStats.Candidates[0].Percentage)

		emptyStats := stats.Categories[2]
		assert.Empty(t, emptyStats.Candidates)
		assert.Equal(t, 0, emptyStats.TotalVotes)
	})

	t.Run("Success - No votes", func(t *testing.T) {
		repo := repomocks.NewDashboardRepositoryMock()
		category := uuid.New()
		repo.On("CandidateVoteCounts", mock.Anything).Return([]*model.CandidateVoteCount{
			voteCountRow(category, "Best Band", "A", 0),
			voteCountRow(category, "Best Band", "B", 0),
		}, nil).Once()
		repo.On("CountVoters", mock.Anything).Return(0, nil).Once()

		stats, err := NewDashboardService(repo, storagemocks.NewObjectStorageMock()).VotingStatistics(ctx)

		require.NoError(t, err)
		for _, candidate := range stats.Categories[0].Candidates {
			assert.Equal(t, 0, candidate.Percentage)
			assert.False(t, candidate.IsWinner)
		}
	})
}

func TestRecentActivities(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		limit    int
		expected int
	}{
		{"Success - Default limit", 0, DefaultActivityLimit},
		{"Success - Custom limit", 5, 5},
		{"Success - Clamped limit", 500, MaxActivityLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := repomocks.NewDashboardRepositoryMock()
			repo.On("RecentActivities", mock.Anything, tc.expected).Return([]*model.Activity{}, nil).Once()

			_, err := NewDashboardService(repo, storagemocks.NewObjectStorageMock()).RecentActivities(ctx, tc.limit)

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}
