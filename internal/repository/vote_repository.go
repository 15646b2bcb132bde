package repository

import (
	"context"
	"errors"
	"event-voting/internal/database"
	"event-voting/internal/model"
	apperrors "event-voting/pkg/app_errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VoteRepository interface {
	// 新增一票；(ticket, category) 重複時回傳 ErrAlreadyVoted
	Create(ctx context.Context, vote *model.Vote) (*model.Vote, error)
	FindByTicketAndCategory(ctx context.Context, ticketID, categoryID uuid.UUID) (*model.Vote, error)
	DeleteByTicketAndCategory(ctx context.Context, ticketID, categoryID uuid.UUID) error
	// 依投票時間排序的已投分類
	ListCategoryIDsByTicket(ctx context.Context, ticketID uuid.UUID) ([]uuid.UUID, error)
}

type VoteRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVoteRepository(pool *pgxpool.Pool) VoteRepository {
	return &VoteRepositoryImpl{
		pool: pool,
	}
}

func (r *VoteRepositoryImpl) Create(ctx context.Context, vote *model.Vote) (*model.Vote, error) {
	query := `
		INSERT INTO votes (ticket_id, category_id, candidate_id)
		VALUES ($1, $2, $3)
		RETURNING id, ticket_id, category_id, candidate_id, created_at
	`

	var created model.Vote
	err := r.pool.QueryRow(ctx, query,
		vote.TicketID, vote.CategoryID, vote.CandidateID,
	).Scan(
		&created.ID,
		&created.TicketID,
		&created.CategoryID,
		&created.CandidateID,
		&created.CreatedAt,
	)

	if err != nil {
		if constraintViolation(err, pgUniqueViolation) == database.VoteUniqueConstraint {
			return nil, apperrors.ErrAlreadyVoted
		}
		// 檢查之後票券或候選人被刪除
		switch constraintViolation(err, pgForeignKeyViolation) {
		case "votes_ticket_id_fkey":
			return nil, apperrors.ErrTicketRevoked
		case "votes_candidate_id_fkey":
			return nil, apperrors.ErrCandidateNotFound
		case "votes_category_id_fkey":
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to create vote: %w", err)
	}

	return &created, nil
}

func (r *VoteRepositoryImpl) FindByTicketAndCategory(ctx context.Context, ticketID, categoryID uuid.UUID) (*model.Vote, error) {
	query := `
		SELECT id, ticket_id, category_id, candidate_id, created_at
		FROM votes
		WHERE ticket_id = $1 AND category_id = $2
	`

	var vote model.Vote
	err := r.pool.QueryRow(ctx, query, ticketID, categoryID).Scan(
		&vote.ID,
		&vote.TicketID,
		&vote.CategoryID,
		&vote.CandidateID,
		&vote.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrVoteNotFound
		}
		return nil, err
	}

	return &vote, nil
}

func (r *VoteRepositoryImpl) DeleteByTicketAndCategory(ctx context.Context, ticketID, categoryID uuid.UUID) error {
	query := `
		DELETE FROM votes
		WHERE ticket_id = $1 AND category_id = $2
	`

	result, err := r.pool.Exec(ctx, query, ticketID, categoryID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrVoteNotFound
	}

	return nil
}

func (r *VoteRepositoryImpl) ListCategoryIDsByTicket(ctx context.Context, ticketID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT category_id
		FROM votes
		WHERE ticket_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}

	categoryIDs, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, err
	}

	return categoryIDs, nil
}
