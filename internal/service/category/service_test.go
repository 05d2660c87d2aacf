package category_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	category_repository_mock "fanfic-blog-service/mocks/category"
	postgres_mock "fanfic-blog-service/mocks/postgres"
)

func TestCategoryService_ListCategories(t *testing.T) {
	log := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		categoryRepo := new(category_repository_mock.Repository)
		uow := new(postgres_mock.UnitOfWork)

		want := []*model.Category{
			{ID: 1, Name: "Adventure", PostCount: 2},
			{ID: 2, Name: "Fantasy", PostCount: 0},
		}
		categoryRepo.On("List", mock.Anything).Return(want, nil)

		s := NewCategoryService(categoryRepo, uow, log)
		got, err := s.ListCategories(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, want, got)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		categoryRepo := new(category_repository_mock.Repository)
		uow := new(postgres_mock.UnitOfWork)

		categoryRepo.On("List", mock.Anything).Return(nil, errors.New("db error"))

		s := NewCategoryService(categoryRepo, uow, log)
		got, err := s.ListCategories(context.Background())

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, custom_errors.ErrDatabaseQuery))
		categoryRepo.AssertExpectations(t)
	})
}

func TestCategoryService_GetCategoryByID(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(categoryRepo *category_repository_mock.Repository)
		id          int64
		want        *model.Category
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(categoryRepo *category_repository_mock.Repository) {
				categoryRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Category{ID: 1, Name: "Fantasy", PostCount: 3}, nil)
			},
			id:   1,
			want: &model.Category{ID: 1, Name: "Fantasy", PostCount: 3},
		},
		{
			name: "Not found",
			mocks: func(categoryRepo *category_repository_mock.Repository) {
				categoryRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrCategoryNotFound)
			},
			id:          404,
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrCategoryNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryRepo := new(category_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tt.mocks(categoryRepo)

			s := NewCategoryService(categoryRepo, uow, log)
			got, err := s.GetCategoryByID(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErrType))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			categoryRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_CreateCategory(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(categoryRepo *category_repository_mock.Repository)
		categoryName string
		want        *model.Category
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(categoryRepo *category_repository_mock.Repository) {
				categoryRepo.On("Create", mock.Anything, "Fantasy").Return(&model.Category{ID: 1, Name: "Fantasy"}, nil)
			},
			categoryName: "Fantasy",
			want:         &model.Category{ID: 1, Name: "Fantasy"},
		},
		{
			name: "Name already taken",
			mocks: func(categoryRepo *category_repository_mock.Repository) {
				categoryRepo.On("Create", mock.Anything, "fantasy").Return(nil, custom_errors.ErrCategoryAlreadyExists)
			},
			categoryName: "fantasy",
			want:         nil,
			wantErr:      true,
			wantErrType:  custom_errors.ErrCategoryAlreadyExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryRepo := new(category_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tt.mocks(categoryRepo)

			s := NewCategoryService(categoryRepo, uow, log)
			got, err := s.CreateCategory(context.Background(), tt.categoryName)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErrType))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			categoryRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(categoryRepo *category_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction)
		id          int64
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(categoryRepo *category_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("CategoryRepository").Return(categoryRepo)
				categoryRepo.On("PostCount", mock.Anything, int64(1)).Return(int64(0), nil)
				categoryRepo.On("Delete", mock.Anything, int64(1)).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			id: 1,
		},
		{
			name: "Category still has posts",
			mocks: func(categoryRepo *category_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("CategoryRepository").Return(categoryRepo)
				categoryRepo.On("PostCount", mock.Anything, int64(1)).Return(int64(4), nil)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			id:          1,
			wantErr:     true,
			wantErrType: custom_errors.ErrCategoryHasPosts,
		},
		{
			name: "Not found",
			mocks: func(categoryRepo *category_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("CategoryRepository").Return(categoryRepo)
				categoryRepo.On("PostCount", mock.Anything, int64(404)).Return(int64(0), custom_errors.ErrCategoryNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			id:          404,
			wantErr:     true,
			wantErrType: custom_errors.ErrCategoryNotFound,
		},
		{
			name: "Transaction begin error",
			mocks: func(categoryRepo *category_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(nil, errors.New("db error"))
			},
			id:          1,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryRepo := new(category_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			tt.mocks(categoryRepo, uow, tx)

			s := NewCategoryService(categoryRepo, uow, log)
			err := s.DeleteCategory(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErrType))
			} else {
				assert.NoError(t, err)
			}

			categoryRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
		})
	}
}
