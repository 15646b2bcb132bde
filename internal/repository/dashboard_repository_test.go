package repository

import (
	"context"
	apperrors "event-voting/pkg/app_errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository(t *testing.T) {
	ctx := context.Background()
	pool := getTestDB(t)
	repo := NewDashboardRepository(pool)

	band := createTestCategory(t, pool, "Best Band", true)
	createTestCategory(t, pool, "Hidden", false)
	alpha := createTestCandidate(t, pool, band.ID, "A1", "Alpha")
	createTestCandidate(t, pool, band.ID, "B2", "Beta")
	tickets := createTestTickets(t, pool, "001", "002", "003")
	createTestVote(t, pool, tickets[0].ID, alpha)
	createTestVote(t, pool, tickets[1].ID, alpha)

	t.Run("Success - Stats", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalCategories)
		assert.Equal(t, 1, stats.ActiveCategories)
		assert.Equal(t, 2, stats.TotalCandidates)
		assert.Equal(t, 3, stats.TotalTickets)
		assert.Equal(t, 2, stats.UsedTickets)
		assert.Equal(t, 2, stats.TotalVotes)
	})

	t.Run("Success - Vote counts", func(t *testing.T) {
		counts, err := repo.CandidateVoteCounts(ctx)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, "A1", counts[0].NomineeID)
		assert.Equal(t, 2, counts[0].VoteCount)
		assert.Equal(t, 0, counts[1].VoteCount)

		voters, err := repo.CountVoters(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, voters)
	})

	t.Run("Success - Recent activities", func(t *testing.T) {
		activities, err := repo.RecentActivities(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, activities, 3)
	})
}

func TestAdminRepository(t *testing.T) {
	ctx := context.Background()
	pool := getTestDB(t)
	repo := NewAdminRepository(pool)

	created, err := repo.Create(ctx, "root", "hash")
	require.NoError(t, err)

	found, err := repo.FindByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.Create(ctx, "root", "other")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateAdmin)

	_, err = repo.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrAdminNotFound)
}
