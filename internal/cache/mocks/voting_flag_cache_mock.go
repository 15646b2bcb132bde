package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type VotingFlagCacheMock struct {
	mock.Mock
}

func NewVotingFlagCacheMock() *VotingFlagCacheMock {
	return &VotingFlagCacheMock{}
}

func (m *VotingFlagCacheMock) GetVotingEnabled(ctx context.Context) (bool, bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *VotingFlagCacheMock) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *VotingFlagCacheMock) SetVotingEnabled(ctx context.Context, enabled bool, generation int64) (bool, error) {
	args := m.Called(ctx, enabled, generation)
	return args.Bool(0), args.Error(1)
}

func (m *VotingFlagCacheMock) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
