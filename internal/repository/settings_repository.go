package repository

import (
	"context"
	"errors"
	"event-voting/internal/model"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository interface {
	// 讀取設定，不存在時建立預設值
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, params model.UpdateSettingsParams) (*model.Settings, error)
	SetPromoVideo(ctx context.Context, path *string) (*model.Settings, error)
}

type SettingsRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &SettingsRepositoryImpl{
		pool: pool,
	}
}

const settingsColumns = `id, event_name, event_start_time, voting_enabled, promo_video, created_at, updated_at`

func scanSettings(row pgx.Row) (*model.Settings, error) {
	var settings model.Settings
	err := row.Scan(
		&settings.ID,
		&settings.EventName,
		&settings.EventStartTime,
		&settings.VotingEnabled,
		&settings.PromoVideo,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepositoryImpl) Get(ctx context.Context) (*model.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE id = $1`

	settings, err := scanSettings(r.pool.QueryRow(ctx, query, model.SettingsID))
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	return scanSettings(r.pool.QueryRow(ctx, query, model.SettingsID))
}

func (r *SettingsRepositoryImpl) Update(ctx context.Context, params model.UpdateSettingsParams) (*model.Settings, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.EventName != nil {
		sets = append(sets, fmt.Sprintf("event_name = $%d", argPos))
		args = append(args, *params.EventName)
		argPos++
	}
	if params.ClearEventStartTime {
		sets = append(sets, "event_start_time = NULL")
	} else if params.EventStartTime != nil {
		sets = append(sets, fmt.Sprintf("event_start_time = $%d", argPos))
		args = append(args, params.EventStartTime.UTC())
		argPos++
	}
	if params.VotingEnabled != nil {
		sets = append(sets, fmt.Sprintf("voting_enabled = $%d", argPos))
		args = append(args, *params.VotingEnabled)
		argPos++
	}

	if len(sets) == 0 {
		return r.Get(ctx)
	}

	if err := r.ensure(ctx); err != nil {
		return nil, err
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	args = append(args, model.SettingsID)

	query := fmt.Sprintf(`
		UPDATE settings
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, settingsColumns)

	return scanSettings(r.pool.QueryRow(ctx, query, args...))
}

func (r *SettingsRepositoryImpl) SetPromoVideo(ctx context.Context, path *string) (*model.Settings, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}

	query := `
		UPDATE settings
		SET promo_video = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + settingsColumns

	return scanSettings(r.pool.QueryRow(ctx, query, path, time.Now().UTC(), model.SettingsID))
}

func (r *SettingsRepositoryImpl) ensure(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO settings (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`, model.SettingsID)
	if err != nil {
		return fmt.Errorf("failed to create default settings: %w", err)
	}
	return nil
}
