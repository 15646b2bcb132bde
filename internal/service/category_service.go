package service

import (
	"context"
	"event-voting/internal/model"
	"event-voting/internal/repository"
	"event-voting/internal/storage"
	apperrors "event-voting/pkg/app_errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CategoryService interface {
	// 前台：啟用中的分類
	ListActive(ctx context.Context) ([]*model.Category, error)
	// 前台：啟用中的分類與候選人，停用視為不存在
	GetActiveWithCandidates(ctx context.Context, id uuid.UUID) (*model.Category, error)

	List(ctx context.Context) ([]*model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateCategoryParams) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) ([]*model.Category, error)
	SetIcon(ctx context.Context, id uuid.UUID, upload *model.FileUpload) (*model.Category, error)
	RemoveIcon(ctx context.Context, id uuid.UUID) (*model.Category, error)
}

type CategoryServiceImpl struct {
	db                  TxBeginner
	repository          repository.CategoryRepository
	candidateRepository repository.CandidateRepository
	storage             storage.ObjectStorage
}

func NewCategoryService(
	db TxBeginner,
	categoryRepository repository.CategoryRepository,
	candidateRepository repository.CandidateRepository,
	objectStorage storage.ObjectStorage,
) CategoryService {
	return &CategoryServiceImpl{
		db:                  db,
		repository:          categoryRepository,
		candidateRepository: candidateRepository,
		storage:             objectStorage,
	}
}

func (s *CategoryServiceImpl) ListActive(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.repository.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.withURLs(categories), nil
}

func (s *CategoryServiceImpl) GetActiveWithCandidates(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, apperrors.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.withURLs(categories), nil
}

func (s *CategoryServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates, err := s.candidateRepository.List(ctx, &id)
	if err != nil {
		return nil, err
	}
	for _, candidate := range candidates {
		candidate.ImageURL = publicURL(s.storage, candidate.Image)
	}

	count := len(candidates)
	category.Candidates = candidates
	category.CandidateCount = &count
	return s.withURL(category), nil
}

func (s *CategoryServiceImpl) Create(ctx context.Context, params model.CreateCategoryParams) (*model.Category, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return nil, apperrors.ErrInvalidInput
	}

	category, err := s.repository.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	return s.withURL(category), nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateCategoryParams) (*model.Category, error) {
	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, apperrors.ErrInvalidInput
		}
		params.Name = &name
	}

	category, err := s.repository.Update(ctx, id, params)
	if err != nil {
		return nil, err
	}
	return s.withURL(category), nil
}

// Delete 刪除分類及其候選人、投票，並清除相關圖檔
func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	candidates, err := s.candidateRepository.List(ctx, &id)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	deleteObject(ctx, s.storage, category.Icon)
	for _, candidate := range candidates {
		deleteObject(ctx, s.storage, candidate.Image)
	}
	return nil
}

func (s *CategoryServiceImpl) Reorder(ctx context.Context, ids []uuid.UUID) ([]*model.Category, error) {
	if len(ids) == 0 {
		return nil, apperrors.ErrInvalidInput
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return nil, apperrors.ErrInvalidInput
		}
		seen[id] = struct{}{}
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.repository.Reorder(ctx, tx, ids); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return s.List(ctx)
}

func (s *CategoryServiceImpl) SetIcon(ctx context.Context, id uuid.UUID, upload *model.FileUpload) (*model.Category, error) {
	if !hasContentTypePrefix(upload, "image/") {
		return nil, apperrors.ErrUnsupportedFile
	}

	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	objectPath, err := s.storage.Upload(ctx, storage.FolderCategoryIcons, upload.FileName, upload.Reader, upload.Size, upload.ContentType)
	if err != nil {
		return nil, err
	}

	category, err := s.repository.SetIcon(ctx, id, &objectPath)
	if err != nil {
		deleteObject(ctx, s.storage, &objectPath)
		return nil, err
	}

	deleteObject(ctx, s.storage, current.Icon)
	return s.withURL(category), nil
}

func (s *CategoryServiceImpl) RemoveIcon(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Icon == nil || *current.Icon == "" {
		return nil, apperrors.ErrImageNotFound
	}

	category, err := s.repository.SetIcon(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	deleteObject(ctx, s.storage, current.Icon)
	return s.withURL(category), nil
}

func (s *CategoryServiceImpl) withURL(category *model.Category) *model.Category {
	category.IconURL = publicURL(s.storage, category.Icon)
	return category
}

func (s *CategoryServiceImpl) withURLs(categories []*model.Category) []*model.Category {
	for _, category := range categories {
		s.withURL(category)
	}
	return categories
}
