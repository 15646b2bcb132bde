package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/stretchr/testify/mock"
)

type TicketServiceMock struct {
	mock.Mock
}

func NewTicketServiceMock() *TicketServiceMock {
	return &TicketServiceMock{}
}

func (m *TicketServiceMock) Authenticate(ctx context.Context, ticketID string) (*model.AuthenticateResult, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthenticateResult), args.Error(1)
}

func (m *TicketServiceMock) Verify(ctx context.Context, cred *model.VoterCredential) (*model.TicketSummary, error) {
	args := m.Called(ctx, cred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TicketSummary), args.Error(1)
}

func (m *TicketServiceMock) Generate(ctx context.Context, quantity int) ([]*model.Ticket, error) {
	args := m.Called(ctx, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Ticket), args.Error(1)
}

func (m *TicketServiceMock) Import(ctx context.Context, serials []string, skipDuplicates bool) (*model.ImportTicketsResult, error) {
	args := m.Called(ctx, serials, skipDuplicates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ImportTicketsResult), args.Error(1)
}

func (m *TicketServiceMock) List(ctx context.Context) ([]*model.TicketWithVotes, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TicketWithVotes), args.Error(1)
}

func (m *TicketServiceMock) GetBySerial(ctx context.Context, serial string) (*model.Ticket, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ticket), args.Error(1)
}

func (m *TicketServiceMock) DeleteBySerial(ctx context.Context, serial string) error {
	args := m.Called(ctx, serial)
	return args.Error(0)
}

func (m *TicketServiceMock) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
