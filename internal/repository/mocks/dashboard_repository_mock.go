package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/stretchr/testify/mock"
)

type DashboardRepositoryMock struct {
	mock.Mock
}

func NewDashboardRepositoryMock() *DashboardRepositoryMock {
	return &DashboardRepositoryMock{}
}

func (m *DashboardRepositoryMock) Stats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

func (m *DashboardRepositoryMock) RecentActivities(ctx context.Context, limit int) ([]*model.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Activity), args.Error(1)
}

func (m *DashboardRepositoryMock) CandidateVoteCounts(ctx context.Context) ([]*model.CandidateVoteCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CandidateVoteCount), args.Error(1)
}

func (m *DashboardRepositoryMock) CountVoters(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
