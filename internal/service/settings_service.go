package service

import (
	"context"
	"event-voting/internal/cache"
	"event-voting/internal/model"
	"event-voting/internal/repository"
	"event-voting/internal/storage"
	apperrors "event-voting/pkg/app_errors"
	"event-voting/pkg/logger"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type SettingsService interface {
	VotingPolicy
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, params model.UpdateSettingsParams) (*model.Settings, error)
	ToggleVoting(ctx context.Context, enabled bool) (*model.Settings, error)
	// 前台可見的設定
	PublicConfig(ctx context.Context) (*model.PublicConfig, error)
	SetPromoVideo(ctx context.Context, upload *model.FileUpload) (*model.Settings, error)
	DeletePromoVideo(ctx context.Context) (*model.Settings, error)
}

type SettingsServiceImpl struct {
	repository repository.SettingsRepository
	flagCache  cache.VotingFlagCache
	storage    storage.ObjectStorage
	now        func() time.Time
}

func NewSettingsService(
	settingsRepository repository.SettingsRepository,
	flagCache cache.VotingFlagCache,
	objectStorage storage.ObjectStorage,
) SettingsService {
	return &SettingsServiceImpl{
		repository: settingsRepository,
		flagCache:  flagCache,
		storage:    objectStorage,
		now:        time.Now,
	}
}

// IsVotingEnabled 先讀 Redis，未命中或 Redis 失敗時讀資料庫
func (s *SettingsServiceImpl) IsVotingEnabled(ctx context.Context) (bool, error) {
	log := logger.WithComponent("settings")

	enabled, found, err := s.flagCache.GetVotingEnabled(ctx)
	if err != nil {
		log.Warn("Failed to read voting flag from cache", zap.Error(err))
		settings, err := s.repository.Get(ctx)
		if err != nil {
			return false, err
		}
		return settings.VotingEnabled, nil
	}
	if found {
		return enabled, nil
	}

	// 世代要在讀資料庫之前取得，期間若有寫入，回填會被放棄
	generation, genErr := s.flagCache.Generation(ctx)
	if genErr != nil {
		log.Warn("Failed to read voting flag generation", zap.Error(genErr))
	}

	settings, err := s.repository.Get(ctx)
	if err != nil {
		return false, err
	}

	if genErr == nil {
		if _, err := s.flagCache.SetVotingEnabled(ctx, settings.VotingEnabled, generation); err != nil {
			log.Warn("Failed to write voting flag to cache", zap.Error(err))
		}
	}
	return settings.VotingEnabled, nil
}

func (s *SettingsServiceImpl) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repository.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.withURL(settings), nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, params model.UpdateSettingsParams) (*model.Settings, error) {
	if params.EventName != nil && *params.EventName == "" {
		return nil, apperrors.ErrInvalidInput
	}

	if params.VotingEnabled == nil {
		settings, err := s.repository.Update(ctx, params)
		if err != nil {
			return nil, err
		}
		return s.withURL(settings), nil
	}

	// 投票開關：寫入前後都讓快取失效，不從寫入端回填
	if err := s.flagCache.Invalidate(ctx); err != nil {
		return nil, fmt.Errorf("failed to invalidate voting flag cache: %w", err)
	}

	settings, err := s.repository.Update(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := s.flagCache.Invalidate(ctx); err != nil {
		logger.WithComponent("settings").Error("Voting flag saved but cache invalidation failed",
			zap.Bool("voting_enabled", settings.VotingEnabled), zap.Error(err))
		return nil, fmt.Errorf("failed to invalidate voting flag cache: %w", err)
	}
	return s.withURL(settings), nil
}

func (s *SettingsServiceImpl) ToggleVoting(ctx context.Context, enabled bool) (*model.Settings, error) {
	return s.Update(ctx, model.UpdateSettingsParams{VotingEnabled: &enabled})
}

func (s *SettingsServiceImpl) PublicConfig(ctx context.Context) (*model.PublicConfig, error) {
	settings, err := s.repository.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return &model.PublicConfig{
		EventName:      settings.EventName,
		EventStartTime: settings.EventStartTime,
		VotingEnabled:  settings.VotingEnabled,
		IsEventStarted: settings.IsEventStarted(now),
		ServerTime:     now,
		PromoVideoURL:  publicURL(s.storage, settings.PromoVideo),
	}, nil
}

func (s *SettingsServiceImpl) SetPromoVideo(ctx context.Context, upload *model.FileUpload) (*model.Settings, error) {
	if !hasContentTypePrefix(upload, "video/") {
		return nil, apperrors.ErrUnsupportedFile
	}

	current, err := s.repository.Get(ctx)
	if err != nil {
		return nil, err
	}

	objectPath, err := s.storage.Upload(ctx, storage.FolderVideos, upload.FileName, upload.Reader, upload.Size, upload.ContentType)
	if err != nil {
		return nil, err
	}

	settings, err := s.repository.SetPromoVideo(ctx, &objectPath)
	if err != nil {
		deleteObject(ctx, s.storage, &objectPath)
		return nil, err
	}

	deleteObject(ctx, s.storage, current.PromoVideo)
	return s.withURL(settings), nil
}

func (s *SettingsServiceImpl) DeletePromoVideo(ctx context.Context) (*model.Settings, error) {
	current, err := s.repository.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current.PromoVideo == nil || *current.PromoVideo == "" {
		return nil, apperrors.ErrPromoVideoNotFound
	}

	settings, err := s.repository.SetPromoVideo(ctx, nil)
	if err != nil {
		return nil, err
	}

	deleteObject(ctx, s.storage, current.PromoVideo)
	return s.withURL(settings), nil
}

func (s *SettingsServiceImpl) withURL(settings *model.Settings) *model.Settings {
	settings.PromoVideoURL = publicURL(s.storage, settings.PromoVideo)
	return settings
}
