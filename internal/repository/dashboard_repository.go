package repository

import (
	"context"
	"event-voting/internal/model"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepository interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
	// 依時間新到舊合併投票、票券、候選人、分類的最近紀錄
	RecentActivities(ctx context.Context, limit int) ([]*model.Activity, error)
	// 啟用中分類的每位候選人得票數
	CandidateVoteCounts(ctx context.Context) ([]*model.CandidateVoteCount, error)
	CountVoters(ctx context.Context) (int, error)
}

type DashboardRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &DashboardRepositoryImpl{
		pool: pool,
	}
}

func (r *DashboardRepositoryImpl) Stats(ctx context.Context) (*model.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM categories WHERE is_active = TRUE),
			(SELECT COUNT(*) FROM candidates),
			(SELECT COUNT(*) FROM tickets),
			(SELECT COUNT(DISTINCT ticket_id) FROM votes),
			(SELECT COUNT(*) FROM votes)
	`

	var stats model.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalCategories,
		&stats.ActiveCategories,
		&stats.TotalCandidates,
		&stats.TotalTickets,
		&stats.UsedTickets,
		&stats.TotalVotes,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *DashboardRepositoryImpl) RecentActivities(ctx context.Context, limit int) ([]*model.Activity, error) {
	query := `
		SELECT id, type, description, created_at FROM (
			(SELECT v.id, 'vote' AS type,
			        'Ticket #' || t.serial || ' voted for ' || ca.name || ' in ' || c.name AS description,
			        v.created_at
			 FROM votes v
			 JOIN tickets t ON t.id = v.ticket_id
			 JOIN candidates ca ON ca.id = v.candidate_id
			 JOIN categories c ON c.id = v.category_id
			 ORDER BY v.created_at DESC LIMIT $1)
			UNION ALL
			(SELECT id, 'ticket', 'Ticket #' || serial || ' created', created_at
			 FROM tickets ORDER BY created_at DESC LIMIT $1)
			UNION ALL
			(SELECT id, 'candidate', 'Candidate ' || name || ' added', created_at
			 FROM candidates ORDER BY created_at DESC LIMIT $1)
			UNION ALL
			(SELECT id, 'category', 'Category ' || name || ' created', created_at
			 FROM categories ORDER BY created_at DESC LIMIT $1)
		) activities
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*model.Activity, 0, limit)
	for rows.Next() {
		var (
			id          uuid.UUID
			kind        string
			description string
			createdAt   time.Time
		)
		if err := rows.Scan(&id, &kind, &description, &createdAt); err != nil {
			return nil, err
		}
		activities = append(activities, &model.Activity{
			ID:          id,
			Type:        model.ActivityType(kind),
			Description: description,
			CreatedAt:   createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *DashboardRepositoryImpl) CandidateVoteCounts(ctx context.Context) ([]*model.CandidateVoteCount, error) {
	query := `
		SELECT c.id, c.name, c.icon,
		       ca.id, COALESCE(ca.nominee_id, ''), COALESCE(ca.name, ''), ca.image,
		       COUNT(v.id) AS vote_count
		FROM categories c
		LEFT JOIN candidates ca ON ca.category_id = c.id
		LEFT JOIN votes v ON v.candidate_id = ca.id
		WHERE c.is_active = TRUE
		GROUP BY c.id, ca.id
		ORDER BY c.display_order ASC, c.created_at ASC, vote_count DESC, ca.nominee_id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]*model.CandidateVoteCount, 0)
	for rows.Next() {
		var count model.CandidateVoteCount
		err := rows.Scan(
			&count.CategoryID,
			&count.CategoryName,
			&count.CategoryIcon,
			&count.CandidateID,
			&count.NomineeID,
			&count.Name,
			&count.Image,
			&count.VoteCount,
		)
		if err != nil {
			return nil, err
		}
		counts = append(counts, &count)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *DashboardRepositoryImpl) CountVoters(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT ticket_id) FROM votes`).Scan(&count)
	return count, err
}
