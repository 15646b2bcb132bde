package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type VoteRepositoryMock struct {
	mock.Mock
}

func NewVoteRepositoryMock() *VoteRepositoryMock {
	return &VoteRepositoryMock{}
}

func (m *VoteRepositoryMock) Create(ctx context.Context, vote *model.Vote) (*model.Vote, error) {
	args := m.Called(ctx, vote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vote), args.Error(1)
}

func (m *VoteRepositoryMock) FindByTicketAndCategory(ctx context.Context, ticketID, categoryID uuid.UUID) (*model.Vote, error) {
	args := m.Called(ctx, ticketID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vote), args.Error(1)
}

func (m *VoteRepositoryMock) DeleteByTicketAndCategory(ctx context.Context, ticketID, categoryID uuid.UUID) error {
	args := m.Called(ctx, ticketID, categoryID)
	return args.Error(0)
}

func (m *VoteRepositoryMock) ListCategoryIDsByTicket(ctx context.Context, ticketID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
