package service

import (
	"context"
	"event-voting/internal/model"
	"event-voting/internal/repository"
	"event-voting/internal/storage"
	apperrors "event-voting/pkg/app_errors"
	"strings"

	"github.com/google/uuid"
)

type CandidateService interface {
	List(ctx context.Context, categoryID *uuid.UUID) ([]*model.Candidate, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	Create(ctx context.Context, params model.CreateCandidateParams) (*model.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateCandidateParams) (*model.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// 回傳刪除的數量
	DeleteAll(ctx context.Context) (int, error)
	SetImage(ctx context.Context, id uuid.UUID, upload *model.FileUpload) (*model.Candidate, error)
	RemoveImage(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
}

type CandidateServiceImpl struct {
	repository         repository.CandidateRepository
	categoryRepository repository.CategoryRepository
	storage            storage.ObjectStorage
}

func NewCandidateService(
	candidateRepository repository.CandidateRepository,
	categoryRepository repository.CategoryRepository,
	objectStorage storage.ObjectStorage,
) CandidateService {
	return &CandidateServiceImpl{
		repository:         candidateRepository,
		categoryRepository: categoryRepository,
		storage:            objectStorage,
	}
}

func (s *CandidateServiceImpl) List(ctx context.Context, categoryID *uuid.UUID) ([]*model.Candidate, error) {
	candidates, err := s.repository.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	for _, candidate := range candidates {
		s.withURL(candidate)
	}
	return candidates, nil
}

func (s *CandidateServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	candidate, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withURL(candidate), nil
}

func (s *CandidateServiceImpl) Create(ctx context.Context, params model.CreateCandidateParams) (*model.Candidate, error) {
	name, ok := model.NormalizeCandidateName(params.Name)
	if !ok {
		return nil, apperrors.ErrInvalidInput
	}
	params.Name = name

	params.NomineeID = strings.TrimSpace(params.NomineeID)
	if params.NomineeID == "" {
		return nil, apperrors.ErrInvalidInput
	}

	if _, err := s.categoryRepository.FindByID(ctx, params.CategoryID); err != nil {
		return nil, err
	}

	candidate, err := s.repository.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	return s.withURL(candidate), nil
}

func (s *CandidateServiceImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateCandidateParams) (*model.Candidate, error) {
	if params.Name != nil {
		name, ok := model.NormalizeCandidateName(*params.Name)
		if !ok {
			return nil, apperrors.ErrInvalidInput
		}
		params.Name = &name
	}
	if params.NomineeID != nil {
		nomineeID := strings.TrimSpace(*params.NomineeID)
		if nomineeID == "" {
			return nil, apperrors.ErrInvalidInput
		}
		params.NomineeID = &nomineeID
	}
	if params.CategoryID != nil {
		if _, err := s.categoryRepository.FindByID(ctx, *params.CategoryID); err != nil {
			return nil, err
		}
	}

	candidate, err := s.repository.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	return s.withURL(candidate), nil
}

func (s *CandidateServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	candidate, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	deleteObject(ctx, s.storage, candidate.Image)
	return nil
}

func (s *CandidateServiceImpl) DeleteAll(ctx context.Context) (int, error) {
	deleted, images, err := s.repository.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	for i := range images {
		deleteObject(ctx, s.storage, &images[i])
	}
	return deleted, nil
}

func (s *CandidateServiceImpl) SetImage(ctx context.Context, id uuid.UUID, upload *model.FileUpload) (*model.Candidate, error) {
	if !hasContentTypePrefix(upload, "image/") {
		return nil, apperrors.ErrUnsupportedFile
	}

	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	objectPath, err := s.storage.Upload(ctx, storage.FolderCandidatePhotos, upload.FileName, upload.Reader, upload.Size, upload.ContentType)
	if err != nil {
		return nil, err
	}

	candidate, err := s.repository.SetImage(ctx, id, &objectPath)
	if err != nil {
		deleteObject(ctx, s.storage, &objectPath)
		return nil, err
	}

	deleteObject(ctx, s.storage, current.Image)
	return s.withURL(candidate), nil
}

func (s *CandidateServiceImpl) RemoveImage(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Image == nil || *current.Image == "" {
		return nil, apperrors.ErrImageNotFound
	}

	candidate, err := s.repository.SetImage(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	deleteObject(ctx, s.storage, current.Image)
	return s.withURL(candidate), nil
}

func (s *CandidateServiceImpl) withURL(candidate *model.Candidate) *model.Candidate {
	candidate.ImageURL = publicURL(s.storage, candidate.Image)
	return candidate
}
