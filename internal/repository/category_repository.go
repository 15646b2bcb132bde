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

type CategoryRepository interface {
	List(ctx context.Context) ([]*model.Category, error)
	ListActive(ctx context.Context) ([]*model.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	// 新增分類，排序為目前最大值 + 1
	Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateCategoryParams) (*model.Category, error)
	SetIcon(ctx context.Context, id uuid.UUID, icon *string) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Transaction methods
	Reorder(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error
}

type CategoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &CategoryRepositoryImpl{
		pool: pool,
	}
}

const categoryColumns = `c.id, c.name, c.icon, c.is_active, c.display_order, c.created_at, c.updated_at`

func scanCategory(row pgx.Row, withCount bool) (*model.Category, error) {
	var category model.Category
	dest := []any{
		&category.ID,
		&category.Name,
		&category.Icon,
		&category.IsActive,
		&category.DisplayOrder,
		&category.CreatedAt,
		&category.UpdatedAt,
	}
	var count int
	if withCount {
		dest = append(dest, &count)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if withCount {
		category.CandidateCount = &count
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) list(ctx context.Context, activeOnly bool) ([]*model.Category, error) {
	where := ""
	if activeOnly {
		where = "WHERE c.is_active = TRUE"
	}

	query := fmt.Sprintf(`
		SELECT %s, COUNT(ca.id) AS candidate_count
		FROM categories c
		LEFT JOIN candidates ca ON ca.category_id = c.id
		%s
		GROUP BY c.id
		ORDER BY c.display_order ASC, c.created_at ASC
	`, categoryColumns, where)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*model.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows, true)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*model.Category, error) {
	return r.list(ctx, false)
}

func (r *CategoryRepositoryImpl) ListActive(ctx context.Context) ([]*model.Category, error) {
	return r.list(ctx, true)
}

func (r *CategoryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM categories c
		WHERE c.id = $1
	`, categoryColumns)

	category, err := scanCategory(r.pool.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error) {
	isActive := true
	if params.IsActive != nil {
		isActive = *params.IsActive
	}

	query := `
		INSERT INTO categories (name, is_active, display_order)
		SELECT $1, $2, COALESCE(MAX(display_order), 0) + 1 FROM categories
		RETURNING id, name, icon, is_active, display_order, created_at, updated_at
	`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, params.Name, isActive), false)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateCategory
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateCategoryParams) (*model.Category, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.IsActive != nil {
		sets = append(sets, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *params.IsActive)
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
		UPDATE categories
		SET %s
		WHERE id = $%d
		RETURNING id, name, icon, is_active, display_order, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)

	category, err := scanCategory(r.pool.QueryRow(ctx, query, args...), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateCategory
		}
		return nil, err
	}

	return category, nil
}

func (r *CategoryRepositoryImpl) SetIcon(ctx context.Context, id uuid.UUID, icon *string) (*model.Category, error) {
	query := `
		UPDATE categories
		SET icon = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, name, icon, is_active, display_order, created_at, updated_at
	`

	category, err := scanCategory(r.pool.QueryRow(ctx, query, icon, time.Now().UTC(), id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	return category, nil
}

// Delete 刪除分類，候選人與投票一併刪除
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// Reorder 依陣列位置設定排序（第 i 個 -> i+1）
func (r *CategoryRepositoryImpl) Reorder(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error {
	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for i, id := range ids {
		batch.Queue(`UPDATE categories SET display_order = $1, updated_at = $2 WHERE id = $3`, i+1, now, id)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range ids {
		tag, err := results.Exec()
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrCategoryNotFound
		}
	}

	return results.Close()
}
