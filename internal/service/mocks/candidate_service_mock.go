package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CandidateServiceMock struct {
	mock.Mock
}

func NewCandidateServiceMock() *CandidateServiceMock {
	return &CandidateServiceMock{}
}

func (m *CandidateServiceMock) List(ctx context.Context, categoryID *uuid.UUID) ([]*model.Candidate, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Candidate), args.Error(1)
}

func (m *CandidateServiceMock) Get(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}

func (m *CandidateServiceMock) Create(ctx context.Context, params model.CreateCandidateParams) (*model.Candidate, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}

func (m *CandidateServiceMock) Update(ctx context.Context, id uuid.UUID, params model.UpdateCandidateParams) (*model.Candidate, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}

func (m *CandidateServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CandidateServiceMock) DeleteAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *CandidateServiceMock) SetImage(ctx context.Context, id uuid.UUID, upload *model.FileUpload) (*model.Candidate, error) {
	args := m.Called(ctx, id, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}

func (m *CandidateServiceMock) RemoveImage(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}
