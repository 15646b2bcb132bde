package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type TicketRepositoryMock struct {
	mock.Mock
}

func NewTicketRepositoryMock() *TicketRepositoryMock {
	return &TicketRepositoryMock{}
}

func (m *TicketRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketRepositoryMock) FindBySerial(ctx context.Context, serial string) (*model.Ticket, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketRepositoryMock) List(ctx context.Context) ([]*model.TicketWithVotes, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TicketWithVotes), args.Error(1)
}

func (m *TicketRepositoryMock) DeleteBySerial(ctx context.Context, serial string) error {
	args := m.Called(ctx, serial)
	return args.Error(0)
}

func (m *TicketRepositoryMock) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *TicketRepositoryMock) LockSerials(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *TicketRepositoryMock) MaxSerial(ctx context.Context, tx pgx.Tx) (int, error) {
	args := m.Called(ctx, tx)
	return args.Int(0), args.Error(1)
}

func (m *TicketRepositoryMock) CreateBatch(ctx context.Context, tx pgx.Tx, serials []string, skipDuplicates bool) ([]*model.Ticket, error) {
	args := m.Called(ctx, tx, serials, skipDuplicates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ticket), args.Error(1)
}
