package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/stretchr/testify/mock"
)

type DashboardServiceMock struct {
	mock.Mock
}

func NewDashboardServiceMock() *DashboardServiceMock {
	return &DashboardServiceMock{}
}

func (m *DashboardServiceMock) Stats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *DashboardServiceMock) RecentActivities(ctx context.Context, limit int) ([]*model.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Activity), args.Error(1)
}

func (m *DashboardServiceMock) VotingStatistics(ctx context.Context) (*model.VotingStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VotingStatistics), args.Error(1)
}
