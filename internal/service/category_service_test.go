package service

import (
	"bytes"
	"context"
	"event-voting/internal/model"
	repomocks "event-voting/internal/repository/mocks"
	"event-voting/internal/storage"
	storagemocks "event-voting/internal/storage/mocks"
	apperrors "event-voting/pkg/app_errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	db         *fakeDB
	categories *repomocks.CategoryRepositoryMock
	candidates *repomocks.CandidateRepositoryMock
	storage    *storagemocks.ObjectStorageMock
}

func newCatalogFixture() *catalogFixture {
	return &catalogFixture{
		db:         &fakeDB{tx: &fakeTx{}},
		categories: repomocks.NewCategoryRepositoryMock(),
		candidates: repomocks.NewCandidateRepositoryMock(),
		storage:    storagemocks.NewObjectStorageMock(),
	}
}

func (f *catalogFixture) categoryService() CategoryService {
	return NewCategoryService(f.db, f.categories, f.candidates, f.storage)
}

func (f *catalogFixture) candidateService() CandidateService {
	return NewCandidateService(f.candidates, f.categories, f.storage)
}

func TestGetActiveWithCandidates(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newCatalogFixture()
		id := uuid.New()
		photo := "candidates/photos/a.png"
		f.categories.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id, IsActive: true}, nil).Once()
		f.candidates.On("List", mock.Anything, &id).Return([]*model.Candidate{{ID: uuid.New(), Image: &photo}}, nil).Once()

		category, err := f.categoryService().GetActiveWithCandidates(ctx, id)

		require.NoError(t, err)
		require.Len(t, category.Candidates, 1)
		assert.Equal(t, 1, *category.CandidateCount)
		assert.Equal(t, "http://storage.test/uploads/"+photo, *category.Candidates[0].ImageURL)
	})

	t.Run("Failed - Inactive", func(t *testing.T) {
		f := newCatalogFixture()
		id := uuid.New()
		f.categories.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id, IsActive: false}, nil).Once()
		f.candidates.On("List", mock.Anything, &id).Return([]*model.Candidate{}, nil).Once()

		_, err := f.categoryService().GetActiveWithCandidates(ctx, id)

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})
}

func TestReorderCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newCatalogFixture()
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		f.categories.On("Reorder", mock.Anything, f.db.tx, ids).Return(nil).Once()
		f.categories.On("List", mock.Anything).Return([]*model.Category{{ID: ids[0]}, {ID: ids[1]}}, nil).Once()

		categories, err := f.categoryService().Reorder(ctx, ids)

		require.NoError(t, err)
		assert.Len(t, categories, 2)
		assert.True(t, f.db.tx.committed)
	})

	t.Run("Failed - Duplicate IDs", func(t *testing.T) {
		f := newCatalogFixture()
		id := uuid.New()

		_, err := f.categoryService().Reorder(ctx, []uuid.UUID{id, id})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - Unknown category", func(t *testing.T) {
		f := newCatalogFixture()
		ids := []uuid.UUID{uuid.New()}
		f.categories.On("Reorder", mock.Anything, f.db.tx, ids).Return(apperrors.ErrCategoryNotFound).Once()

		_, err := f.categoryService().Reorder(ctx, ids)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.True(t, f.db.tx.rolledBack)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newCatalogFixture()
		id := uuid.New()
		icon := "categories/icons/x.png"
		photo := "candidates/photos/y.png"
		f.categories.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id, Icon: &icon}, nil).Once()
		f.candidates.On("List", mock.Anything, &id).Return([]*model.Candidate{{Image: &photo}, {}}, nil).Once()
		f.categories.On("Delete", mock.Anything, id).Return(nil).Once()
		f.storage.On("Delete", mock.Anything, icon).Return(nil).Once()
		f.storage.On("Delete", mock.Anything, photo).Return(nil).Once()

		err := f.categoryService().Delete(ctx, id)

		require.NoError(t, err)
		f.storage.AssertExpectations(t)
	})
}

func TestSetCategoryIcon(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newCatalogFixture()
		id := uuid.New()
		upload := &model.FileUpload{FileName: "icon.png", ContentType: "image/png", Size: 3, Reader: bytes.NewReader([]byte("png"))}
		f.categories.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id}, nil).Once()
		f.storage.On("Upload", mock.Anything, storage.FolderCategoryIcons, "icon.png", upload.Reader, int64(3), "image/png").
			Return("categories/icons/new.png", nil).Once()
		newIcon := "categories/icons/new.png"
		f.categories.On("SetIcon", mock.Anything, id, &newIcon).Return(&model.Category{ID: id, Icon: &newIcon}, nil).Once()

		category, err := f.categoryService().SetIcon(ctx, id, upload)

		require.NoError(t, err)
		assert.Equal(t, "http://storage.test/uploads/categories/icons/new.png", *category.IconURL)
		f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Failed - Not an image", func(t *testing.T) {
		f := newCatalogFixture()
		upload := &model.FileUpload{FileName: "a.txt", ContentType: "text/plain"}

		_, err := f.categoryService().SetIcon(ctx, uuid.New(), upload)

		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFile)
	})

	t.Run("Failed - Remove without icon", func(t *testing.T) {
		f := newCatalogFixture()
		id := uuid.New()
		f.categories.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id}, nil).Once()

		_, err := f.categoryService().RemoveIcon(ctx, id)

		assert.ErrorIs(t, err, apperrors.ErrImageNotFound)
	})
}

func TestCreateCandidate(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		f := newCatalogFixture()
		f.categories.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID}, nil).Once()
		f.candidates.On("Create", mock.Anything, model.CreateCandidateParams{
			CategoryID: categoryID,
			NomineeID:  "N1",
			Name:       "Alpha",
		}).Return(&model.Candidate{ID: uuid.New(), CategoryID: categoryID, NomineeID: "N1", Name: "Alpha"}, nil).Once()

		candidate, err := f.candidateService().Create(ctx, model.CreateCandidateParams{
			CategoryID: categoryID,
			NomineeID:  " N1 ",
			Name:       "  Alpha ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Alpha", candidate.Name)
		assert.Nil(t, candidate.ImageURL)
	})

	t.Run("Failed - Name too long", func(t *testing.T) {
		f := newCatalogFixture()

		_, err := f.candidateService().Create(ctx, model.CreateCandidateParams{
			CategoryID: categoryID,
			NomineeID:  "N1",
			Name:       strings.Repeat("x", model.CandidateNameMaxLength+1),
		})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		f.candidates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - Unknown category", func(t *testing.T) {
		f := newCatalogFixture()
		f.categories.On("FindByID", mock.Anything, categoryID).Return(nil, apperrors.ErrCategoryNotFound).Once()

		_, err := f.candidateService().Create(ctx, model.CreateCandidateParams{
			CategoryID: categoryID,
			NomineeID:  "N1",
			Name:       "Alpha",
		})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Failed - Duplicate nominee", func(t *testing.T) {
		f := newCatalogFixture()
		f.categories.On("FindByID", mock.Anything, categoryID).Return(&model.Category{ID: categoryID}, nil).Once()
		f.candidates.On("Create", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicateNominee).Once()

		_, err := f.candidateService().Create(ctx, model.CreateCandidateParams{
			CategoryID: categoryID,
			NomineeID:  "N1",
			Name:       "Alpha",
		})

		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestDeleteAllCandidates(t *testing.T) {
	f := newCatalogFixture()
	f.candidates.On("DeleteAll", mock.Anything).Return(3, []string{"candidates/photos/a.png"}, nil).Once()
	f.storage.On("Delete", mock.Anything, "candidates/photos/a.png").Return(nil).Once()

	deleted, err := f.candidateService().DeleteAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	f.storage.AssertExpectations(t)
}
