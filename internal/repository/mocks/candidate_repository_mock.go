package mocks

import (
	"context"
	"event-voting/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CandidateRepositoryMock struct {
	mock.Mock
}

func NewCandidateRepositoryMock() *CandidateRepositoryMock {
	return &CandidateRepositoryMock{}
}

func (m *CandidateRepositoryMock) List(ctx context.Context, categoryID *uuid.UUID) ([]*model.Candidate, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Candidate), args.Error(1)
}

func (m *CandidateRepositoryMock) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}

func (m *CandidateRepositoryMock) Create(ctx context.Context, params model.CreateCandidateParams) (*model.Candidate, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}

func (m *CandidateRepositoryMock) Update(ctx context.Context, id uuid.UUID, params model.UpdateCandidateParams) (*model.Candidate, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}

func (m *CandidateRepositoryMock) SetImage(ctx context.Context, id uuid.UUID, image *string) (*model.Candidate, error) {
	args := m.Called(ctx, id, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Candidate), args.Error(1)
}

func (m *CandidateRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CandidateRepositoryMock) DeleteAll(ctx context.Context) (int, []string, error) {
	args := m.Called(ctx)
	var images []string
	if args.Get(1) != nil {
		images = args.Get(1).([]string)
	}
	return args.Int(0), images, args.Error(2)
}
