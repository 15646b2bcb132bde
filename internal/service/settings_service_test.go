package service

import (
	"bytes"
	"context"
	"errors"
	cachemocks "event-voting/internal/cache/mocks"
	"event-voting/internal/model"
	repomocks "event-voting/internal/repository/mocks"
	"event-voting/internal/storage"
	storagemocks "event-voting/internal/storage/mocks"
	apperrors "event-voting/pkg/app_errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settingsFixture struct {
	repo    *repomocks.SettingsRepositoryMock
	cache   *cachemocks.VotingFlagCacheMock
	storage *storagemocks.ObjectStorageMock
}

func newSettingsFixture() *settingsFixture {
	return &settingsFixture{
		repo:    repomocks.NewSettingsRepositoryMock(),
		cache:   cachemocks.NewVotingFlagCacheMock(),
		storage: storagemocks.NewObjectStorageMock(),
	}
}

func (f *settingsFixture) service(now time.Time) SettingsService {
	s := NewSettingsService(f.repo, f.cache, f.storage).(*SettingsServiceImpl)
	s.now = func() time.Time { return now }
	return s
}

// memFlagCache 以記憶體模擬 Redis 世代語意
type memFlagCache struct {
	mu             sync.Mutex
	enabled        bool
	found          bool
	generation     int64
	invalidateErrs []error
}

func (c *memFlagCache) GetVotingEnabled(ctx context.Context) (bool, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled, c.found, nil
}

func (c *memFlagCache) Generation(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation, nil
}

func (c *memFlagCache) SetVotingEnabled(ctx context.Context, enabled bool, generation int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false, nil
	}
	c.enabled, c.found = enabled, true
	return true, nil
}

func (c *memFlagCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.invalidateErrs) > 0 {
		err := c.invalidateErrs[0]
		c.invalidateErrs = c.invalidateErrs[1:]
		if err != nil {
			return err
		}
	}
	c.generation++
	c.found = false
	return nil
}

func TestIsVotingEnabled(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Success - Cache hit", func(t *testing.T) {
		f := newSettingsFixture()
		f.cache.On("GetVotingEnabled", mock.Anything).Return(true, true, nil).Once()

		enabled, err := f.service(now).IsVotingEnabled(ctx)

		require.NoError(t, err)
		assert.True(t, enabled)
		f.repo.AssertNotCalled(t, "Get", mock.Anything)
	})

	t.Run("Success - Cache miss", func(t *testing.T) {
		f := newSettingsFixture()
		f.cache.On("GetVotingEnabled", mock.Anything).Return(false, false, nil).Once()
		f.cache.On("Generation", mock.Anything).Return(int64(4), nil).Once()
		f.repo.On("Get", mock.Anything).Return(&model.Settings{VotingEnabled: true}, nil).Once()
		f.cache.On("SetVotingEnabled", mock.Anything, true, int64(4)).Return(true, nil).Once()

		enabled, err := f.service(now).IsVotingEnabled(ctx)

		require.NoError(t, err)
		assert.True(t, enabled)
		f.cache.AssertExpectations(t)
	})

	t.Run("Success - Redis unavailable", func(t *testing.T) {
		f := newSettingsFixture()
		redisErr := errors.New("dial tcp: connection refused")
		f.cache.On("GetVotingEnabled", mock.Anything).Return(false, false, redisErr).Once()
		f.repo.On("Get", mock.Anything).Return(&model.Settings{VotingEnabled: false}, nil).Once()

		enabled, err := f.service(now).IsVotingEnabled(ctx)

		require.NoError(t, err)
		assert.False(t, enabled)
		f.cache.AssertNotCalled(t, "SetVotingEnabled", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Generation unavailable skips fill", func(t *testing.T) {
		f := newSettingsFixture()
		f.cache.On("GetVotingEnabled", mock.Anything).Return(false, false, nil).Once()
		f.cache.On("Generation", mock.Anything).Return(int64(0), errors.New("i/o timeout")).Once()
		f.repo.On("Get", mock.Anything).Return(&model.Settings{VotingEnabled: true}, nil).Once()

		enabled, err := f.service(now).IsVotingEnabled(ctx)

		require.NoError(t, err)
		assert.True(t, enabled)
		f.cache.AssertNotCalled(t, "SetVotingEnabled", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - Database error", func(t *testing.T) {
		f := newSettingsFixture()
		dbErr := errors.New("db down")
		f.cache.On("GetVotingEnabled", mock.Anything).Return(false, false, nil).Once()
		f.cache.On("Generation", mock.Anything).Return(int64(0), nil).Once()
		f.repo.On("Get", mock.Anything).Return(nil, dbErr).Once()

		_, err := f.service(now).IsVotingEnabled(ctx)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestToggleVoting(t *testing.T) {
	ctx := context.Background()
	disabled := func(p model.UpdateSettingsParams) bool {
		return p.VotingEnabled != nil && !*p.VotingEnabled && p.EventName == nil
	}

	t.Run("Success", func(t *testing.T) {
		f := newSettingsFixture()
		f.cache.On("Invalidate", mock.Anything).Return(nil).Twice()
		f.repo.On("Update", mock.Anything, mock.MatchedBy(func(p model.UpdateSettingsParams) bool {
			return p.VotingEnabled != nil && *p.VotingEnabled && p.EventName == nil
		})).Return(&model.Settings{ID: model.SettingsID, VotingEnabled: true}, nil).Once()

		settings, err := f.service(time.Now()).ToggleVoting(ctx, true)

		require.NoError(t, err)
		assert.True(t, settings.VotingEnabled)
		f.cache.AssertExpectations(t)
		f.cache.AssertNotCalled(t, "SetVotingEnabled", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Gate closes once disabled", func(t *testing.T) {
		f := newSettingsFixture()
		flags := &memFlagCache{enabled: true, found: true}
		svc := NewSettingsService(f.repo, flags, f.storage)
		f.repo.On("Update", mock.Anything, mock.MatchedBy(disabled)).Return(&model.Settings{VotingEnabled: false}, nil).Once()
		f.repo.On("Get", mock.Anything).Return(&model.Settings{VotingEnabled: false}, nil).Once()

		enabled, err := svc.IsVotingEnabled(ctx)
		require.NoError(t, err)
		require.True(t, enabled)

		_, err = svc.ToggleVoting(ctx, false)
		require.NoError(t, err)

		enabled, err = svc.IsVotingEnabled(ctx)
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("Failed - Cache unavailable before save", func(t *testing.T) {
		f := newSettingsFixture()
		flags := &memFlagCache{enabled: true, found: true, invalidateErrs: []error{errors.New("i/o timeout")}}
		svc := NewSettingsService(f.repo, flags, f.storage)

		_, err := svc.ToggleVoting(ctx, false)

		require.Error(t, err)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Failed - Cache unavailable after save", func(t *testing.T) {
		f := newSettingsFixture()
		flags := &memFlagCache{enabled: true, found: true, invalidateErrs: []error{nil, errors.New("i/o timeout")}}
		svc := NewSettingsService(f.repo, flags, f.storage)
		f.repo.On("Update", mock.Anything, mock.MatchedBy(disabled)).Return(&model.Settings{VotingEnabled: false}, nil).Once()
		f.repo.On("Get", mock.Anything).Return(&model.Settings{VotingEnabled: false}, nil).Once()

		_, err := svc.ToggleVoting(ctx, false)
		require.Error(t, err)

		// 第一次失效已清掉舊值，閘門仍以資料庫為準
		enabled, err := svc.IsVotingEnabled(ctx)
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("Success - Concurrent fill does not restore old value", func(t *testing.T) {
		f := newSettingsFixture()
		flags := &memFlagCache{}
		svc := NewSettingsService(f.repo, flags, f.storage)
		f.repo.On("Update", mock.Anything, mock.MatchedBy(disabled)).Return(&model.Settings{VotingEnabled: false}, nil).Once()
		// 讀到舊列的同時，管理員關閉投票
		f.repo.On("Get", mock.Anything).Run(func(mock.Arguments) {
			_, err := svc.ToggleVoting(ctx, false)
			require.NoError(t, err)
		}).Return(&model.Settings{VotingEnabled: true}, nil).Once()
		f.repo.On("Get", mock.Anything).Return(&model.Settings{VotingEnabled: false}, nil).Once()

		_, err := svc.IsVotingEnabled(ctx)
		require.NoError(t, err)

		_, found, _ := flags.GetVotingEnabled(ctx)
		assert.False(t, found)

		enabled, err := svc.IsVotingEnabled(ctx)
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("Success - Event name update leaves cache alone", func(t *testing.T) {
		f := newSettingsFixture()
		name := "Gala"
		f.repo.On("Update", mock.Anything, mock.Anything).Return(&model.Settings{EventName: name}, nil).Once()

		_, err := f.service(time.Now()).Update(ctx, model.UpdateSettingsParams{EventName: &name})

		require.NoError(t, err)
		f.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("Failed - Empty event name", func(t *testing.T) {
		f := newSettingsFixture()
		empty := ""

		_, err := f.service(time.Now()).Update(ctx, model.UpdateSettingsParams{EventName: &empty})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestPublicConfig(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	video := "videos/promo.mp4"

	t.Run("Success - Not started", func(t *testing.T) {
		f := newSettingsFixture()
		start := now.Add(time.Hour)
		f.repo.On("Get", mock.Anything).Return(&model.Settings{
			EventName:      "Gala",
			EventStartTime: &start,
			PromoVideo:     &video,
		}, nil).Once()

		cfg, err := f.service(now).PublicConfig(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Gala", cfg.EventName)
		assert.False(t, cfg.IsEventStarted)
		assert.Equal(t, now, cfg.ServerTime)
		require.NotNil(t, cfg.PromoVideoURL)
		assert.Equal(t, "http://storage.test/uploads/videos/promo.mp4", *cfg.PromoVideoURL)
	})

	t.Run("Success - No start time", func(t *testing.T) {
		f := newSettingsFixture()
		f.repo.On("Get", mock.Anything).Return(&model.Settings{EventName: "Event"}, nil).Once()

		cfg, err := f.service(now).PublicConfig(ctx)

		require.NoError(t, err)
		assert.True(t, cfg.IsEventStarted)
		assert.Nil(t, cfg.PromoVideoURL)
	})
}

func TestPromoVideo(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Replace", func(t *testing.T) {
		f := newSettingsFixture()
		old := "videos/old.mp4"
		upload := &model.FileUpload{FileName: "promo.mp4", ContentType: "video/mp4", Size: 4, Reader: bytes.NewReader([]byte("data"))}

		f.repo.On("Get", mock.Anything).Return(&model.Settings{PromoVideo: &old}, nil).Once()
		f.storage.On("Upload", mock.Anything, storage.FolderVideos, "promo.mp4", upload.Reader, int64(4), "video/mp4").Return("videos/new.mp4", nil).Once()
		f.repo.On("SetPromoVideo", mock.Anything, mock.MatchedBy(func(p *string) bool {
			return p != nil && *p == "videos/new.mp4"
		})).Return(&model.Settings{PromoVideo: strPtr("videos/new.mp4")}, nil).Once()
		f.storage.On("Delete", mock.Anything, old).Return(nil).Once()

		settings, err := f.service(time.Now()).SetPromoVideo(ctx, upload)

		require.NoError(t, err)
		require.NotNil(t, settings.PromoVideoURL)
		assert.Equal(t, "http://storage.test/uploads/videos/new.mp4", *settings.PromoVideoURL)
		f.storage.AssertExpectations(t)
	})

	t.Run("Failed - Not a video", func(t *testing.T) {
		f := newSettingsFixture()
		upload := &model.FileUpload{FileName: "a.png", ContentType: "image/png"}

		_, err := f.service(time.Now()).SetPromoVideo(ctx, upload)

		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFile)
		f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - Delete without video", func(t *testing.T) {
		f := newSettingsFixture()
		f.repo.On("Get", mock.Anything).Return(&model.Settings{}, nil).Once()

		_, err := f.service(time.Now()).DeletePromoVideo(ctx)

		assert.ErrorIs(t, err, apperrors.ErrPromoVideoNotFound)
	})

	t.Run("Success - Delete ignores storage error", func(t *testing.T) {
		f := newSettingsFixture()
		old := "videos/old.mp4"
		f.repo.On("Get", mock.Anything).Return(&model.Settings{PromoVideo: &old}, nil).Once()
		f.repo.On("SetPromoVideo", mock.Anything, (*string)(nil)).Return(&model.Settings{}, nil).Once()
		f.storage.On("Delete", mock.Anything, old).Return(errors.New("minio unavailable")).Once()

		settings, err := f.service(time.Now()).DeletePromoVideo(ctx)

		require.NoError(t, err)
		assert.Nil(t, settings.PromoVideoURL)
	})
}

func strPtr(s string) *string {
	return &s
}
