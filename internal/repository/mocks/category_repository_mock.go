package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type CategoryRepositoryMock struct {
	mock.Mock
}

func NewCategoryRepositoryMock() *CategoryRepositoryMock {
	return &CategoryRepositoryMock{}
}

func (m *CategoryRepositoryMock) List(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) ListActive(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) Update(ctx context.Context, id uuid.UUID, params model.UpdateCategoryParams) (*model.Category, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) SetIcon(ctx context.Context, id uuid.UUID, icon *string) (*model.Category, error) {
	args := m.Called(ctx, id, icon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryRepositoryMock) Reorder(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) error {
	args := m.Called(ctx, tx, ids)
	return args.Error(0)
}
