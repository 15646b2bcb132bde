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

type AdminRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*model.Admin, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type AdminRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &AdminRepositoryImpl{
		pool: pool,
	}
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at, updated_at
	`

	var admin model.Admin
	err := r.pool.QueryRow(ctx, query, username, passwordHash).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateAdmin
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return &admin, nil
}

func (r *AdminRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *AdminRepositoryImpl) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.findOne(ctx, `WHERE username = $1`, username)
}

func (r *AdminRepositoryImpl) findOne(ctx context.Context, where string, arg any) (*model.Admin, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM admins
	` + where

	var admin model.Admin
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, err
	}

	return &admin, nil
}
