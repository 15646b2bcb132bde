package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type VoteServiceMock struct {
	mock.Mock
}

func NewVoteServiceMock() *VoteServiceMock {
	return &VoteServiceMock{}
}

func (m *VoteServiceMock) CastVote(ctx context.Context, cred *model.VoterCredential, candidateID, categoryID uuid.UUID) (*model.CastVoteResult, error) {
	args := m.Called(ctx, cred, candidateID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CastVoteResult), args.Error(1)
}

func (m *VoteServiceMock) CancelVote(ctx context.Context, cred *model.VoterCredential, categoryID uuid.UUID) (*model.CancelVoteResult, error) {
	args := m.Called(ctx, cred, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CancelVoteResult), args.Error(1)
}

func (m *VoteServiceMock) GetVoteStatus(ctx context.Context, cred *model.VoterCredential, categoryID uuid.UUID) (*model.VoteStatus, error) {
	args := m.Called(ctx, cred, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VoteStatus), args.Error(1)
}
