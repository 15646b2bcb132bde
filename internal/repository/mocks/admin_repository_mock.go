package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AdminRepositoryMock struct {
	mock.Mock
}

func NewAdminRepositoryMock() *AdminRepositoryMock {
	return &AdminRepositoryMock{}
}

func (m *AdminRepositoryMock) Create(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *AdminRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *AdminRepositoryMock) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}
