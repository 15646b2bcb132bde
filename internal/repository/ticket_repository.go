package repository

import (
	"context"
	"errors"
	"event-voting/internal/model"
	apperrors "event-voting/pkg/app_errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// 產生序號時使用的 advisory lock key
const ticketSerialLockKey = 0x7469636b

type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	FindBySerial(ctx context.Context, serial string) (*model.Ticket, error)
	List(ctx context.Context) ([]*model.TicketWithVotes, error)
	DeleteBySerial(ctx context.Context, serial string) error
	DeleteAll(ctx context.Context) (int64, error)

	// Transaction methods
	LockSerials(ctx context.Context, tx pgx.Tx) error
	MaxSerial(ctx context.Context, tx pgx.Tx) (int, error)
	CreateBatch(ctx context.Context, tx pgx.Tx, serials []string, skipDuplicates bool) ([]*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	query := `
		SELECT id, serial, created_at
		FROM tickets
		WHERE id = $1
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Serial,
		&ticket.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) FindBySerial(ctx context.Context, serial string) (*model.Ticket, error) {
	query := `
		SELECT id, serial, created_at
		FROM tickets
		WHERE serial = $1
	`

	var ticket model.Ticket
	err := r.pool.QueryRow(ctx, query, serial).Scan(
		&ticket.ID,
		&ticket.Serial,
		&ticket.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) List(ctx context.Context) ([]*model.TicketWithVotes, error) {
	query := `
		SELECT t.id, t.serial, t.created_at, COUNT(v.id) AS vote_count
		FROM tickets t
		LEFT JOIN votes v ON v.ticket_id = t.id
		GROUP BY t.id
		ORDER BY t.serial ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.TicketWithVotes, 0)

	for rows.Next() {
		var ticket model.TicketWithVotes
		err := rows.Scan(
			&ticket.ID,
			&ticket.Serial,
			&ticket.CreatedAt,
			&ticket.VoteCount,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

// DeleteBySerial 刪除票券，投票紀錄由 ON DELETE CASCADE 一併刪除
func (r *TicketRepositoryImpl) DeleteBySerial(ctx context.Context, serial string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE serial = $1`, serial)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}

func (r *TicketRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM tickets`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// LockSerials 取得交易層級的 advisory lock，commit/rollback 時自動釋放
func (r *TicketRepositoryImpl) LockSerials(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(ticketSerialLockKey))
	return err
}

// MaxSerial 回傳目前最大的數字序號，沒有票券時回傳 0
func (r *TicketRepositoryImpl) MaxSerial(ctx context.Context, tx pgx.Tx) (int, error) {
	query := `
		SELECT COALESCE(MAX(CASE WHEN serial ~ '^[0-9]+$' THEN serial::BIGINT END), 0)
		FROM tickets
	`

	var max int
	if err := tx.QueryRow(ctx, query).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

// CreateBatch 批次新增票券，回傳實際新增的票券
func (r *TicketRepositoryImpl) CreateBatch(ctx context.Context, tx pgx.Tx, serials []string, skipDuplicates bool) ([]*model.Ticket, error) {
	query := `
		INSERT INTO tickets (serial)
		SELECT unnest($1::TEXT[])
		RETURNING id, serial, created_at
	`
	if skipDuplicates {
		query = `
			INSERT INTO tickets (serial)
			SELECT unnest($1::TEXT[])
			ON CONFLICT (serial) DO NOTHING
			RETURNING id, serial, created_at
		`
	}

	rows, err := tx.Query(ctx, query, serials)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0, len(serials))
	for rows.Next() {
		var ticket model.Ticket
		if err := rows.Scan(&ticket.ID, &ticket.Serial, &ticket.CreatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateSerial
		}
		return nil, fmt.Errorf("failed to create tickets: %w", err)
	}

	return tickets, nil
}
