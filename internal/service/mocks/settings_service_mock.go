package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/stretchr/testify/mock"
)

type SettingsServiceMock struct {
	mock.Mock
}

func NewSettingsServiceMock() *SettingsServiceMock {
	return &SettingsServiceMock{}
}

func (m *SettingsServiceMock) IsVotingEnabled(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *SettingsServiceMock) Get(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *SettingsServiceMock) Update(ctx context.Context, params model.UpdateSettingsParams) (*model.Settings, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *SettingsServiceMock) ToggleVoting(ctx context.Context, enabled bool) (*model.Settings, error) {
	args := m.Called(ctx, enabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *SettingsServiceMock) PublicConfig(ctx context.Context) (*model.PublicConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PublicConfig), args.Error(1)
}

func (m *SettingsServiceMock) SetPromoVideo(ctx context.Context, upload *model.FileUpload) (*model.Settings, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *SettingsServiceMock) DeletePromoVideo(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}
