package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AdminServiceMock struct {
	mock.Mock
}

func NewAdminServiceMock() *AdminServiceMock {
	return &AdminServiceMock{}
}

func (m *AdminServiceMock) Login(ctx context.Context, username, password string) (*model.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResult), args.Error(1)
}

func (m *AdminServiceMock) Profile(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *AdminServiceMock) CreateAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}
