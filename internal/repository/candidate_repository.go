package repository

import (
	"context"
	"errors"
	"event-voting/internal/model"
	apperrors "event-voting/pkg/app_errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CandidateRepository interface {
	// categoryID 為 nil 時列出全部
	List(ctx context.Context, categoryID *uuid.UUID) ([]*model.Candidate, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	Create(ctx context.Context, params model.CreateCandidateParams) (*model.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateCandidateParams) (*model.Candidate, error)
	SetImage(ctx context.Context, id uuid.UUID, image *string) (*model.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteAll 回傳刪除數量與被刪除候選人的圖片路徑，供清除物件儲存
	DeleteAll(ctx context.Context) (int, []string, error)
}

type CandidateRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) CandidateRepository {
	return &CandidateRepositoryImpl{
		pool: pool,
	}
}

const candidateReturning = `RETURNING id, category_id, nominee_id, name, image, created_at, updated_at`

func scanCandidate(row pgx.Row, withCategory bool) (*model.Candidate, error) {
	var candidate model.Candidate
	dest := []any{
		&candidate.ID,
		&candidate.CategoryID,
		&candidate.NomineeID,
		&candidate.Name,
		&candidate.Image,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
	}
	if withCategory {
		dest = append(dest, &candidate.CategoryName)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepositoryImpl) List(ctx context.Context, categoryID *uuid.UUID) ([]*model.Candidate, error) {
	query := `
		SELECT ca.id, ca.category_id, ca.nominee_id, ca.name, ca.image,
		       ca.created_at, ca.updated_at, c.name
		FROM candidates ca
		JOIN categories c ON c.id = ca.category_id
		WHERE ($1::UUID IS NULL OR ca.category_id = $1)
		ORDER BY c.display_order ASC, ca.nominee_id ASC
	`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]*model.Candidate, 0)
	for rows.Next() {
		candidate, err := scanCandidate(rows, true)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (r *CandidateRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	query := `
		SELECT ca.id, ca.category_id, ca.nominee_id, ca.name, ca.image,
		       ca.created_at, ca.updated_at, c.name
		FROM candidates ca
		JOIN categories c ON c.id = ca.category_id
		WHERE ca.id = $1
	`

	candidate, err := scanCandidate(r.pool.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, err
	}

	return candidate, nil
}

func (r *CandidateRepositoryImpl) Create(ctx context.Context, params model.CreateCandidateParams) (*model.Candidate, error) {
	query := `
		INSERT INTO candidates (category_id, nominee_id, name)
		VALUES ($1, $2, $3)
	` + candidateReturning

	candidate, err := scanCandidate(r.pool.QueryRow(ctx, query, params.CategoryID, params.NomineeID, params.Name), false)
	if err != nil {
		return nil, translateCandidateError(err)
	}

	return candidate, nil
}

func (r *CandidateRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateCandidateParams) (*model.Candidate, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.CategoryID != nil {
		sets = append(sets, fmt.Sprintf("category_id = $%d", argPos))
		args = append(args, *params.CategoryID)
		argPos++
	}
	if params.NomineeID != nil {
		sets = append(sets, fmt.Sprintf("nominee_id = $%d", argPos))
		args = append(args, *params.NomineeID)
		argPos++
	}
	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}

	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE candidates
		SET %s
		WHERE id = $%d
	`, strings.Join(sets, ", "), argPos) + candidateReturning

	candidate, err := scanCandidate(r.pool.QueryRow(ctx, query, args...), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, translateCandidateError(err)
	}

	return candidate, nil
}

func (r *CandidateRepositoryImpl) SetImage(ctx context.Context, id uuid.UUID, image *string) (*model.Candidate, error) {
	query := `
		UPDATE candidates
		SET image = $1, updated_at = $2
		WHERE id = $3
	` + candidateReturning

	candidate, err := scanCandidate(r.pool.QueryRow(ctx, query, image, time.Now().UTC(), id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, err
	}

	return candidate, nil
}

func (r *CandidateRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCandidateNotFound
	}

	return nil
}

func (r *CandidateRepositoryImpl) DeleteAll(ctx context.Context) (int, []string, error) {
	rows, err := r.pool.Query(ctx, `DELETE FROM candidates RETURNING image`)
	if err != nil {
		return 0, nil, err
	}

	images, err := pgx.CollectRows(rows, pgx.RowTo[*string])
	if err != nil {
		return 0, nil, err
	}

	paths := make([]string, 0, len(images))
	for _, image := range images {
		if image != nil && *image != "" {
			paths = append(paths, *image)
		}
	}
	return len(images), paths, nil
}

func translateCandidateError(err error) error {
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicateNominee
	}
	if constraintViolation(err, pgForeignKeyViolation) != "" {
		return apperrors.ErrCategoryNotFound
	}
	return fmt.Errorf("failed to save candidate: %w", err)
}
