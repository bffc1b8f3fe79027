package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCategoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service          CategoryServiceInterface

	userID uuid.UUID
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = NewCategoryService(s.mockCategoryRepo)

	s.userID = uuid.New()
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryServiceTestSuite) TestCreateCategory() {
	var created *models.Category
	s.mockCategoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(category *models.Category) error {
		created = category
		return nil
	})

	category, err := s.service.CreateCategory(s.userID, models.KindIncome, "Freelance")

	s.NoError(err)
	s.Equal(created, category)
	s.Equal(s.userID, category.UserID)
	s.Equal(models.KindIncome, category.Kind)
	s.Equal("Freelance", category.Name)
}

func (s *CategoryServiceTestSuite) TestCreateCategory_Validation() {
	testCases := []struct {
		name        string
		kind        string
		catName     string
		expectedErr error
	}{
		{"empty name", models.KindExpense, "", models.ErrCategoryNameRequired},
		{"empty kind", "", "Food", models.ErrCategoryKindRequired},
		{"bad kind", "transfer", "Food", models.ErrInvalidKind},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			category, err := s.service.CreateCategory(s.userID, tc.kind, tc.catName)

			s.ErrorIs(err, tc.expectedErr)
			s.Nil(category)
		})
	}
}

func (s *CategoryServiceTestSuite) TestListCategories() {
	expected := []models.Category{
		{Name: "Groceries"},
		{Name: "Rent"},
	}
	s.mockCategoryRepo.EXPECT().GetByUserAndKind(s.userID, models.KindExpense).Return(expected, nil)

	categories, err := s.service.ListCategories(s.userID, models.KindExpense)

	s.NoError(err)
	s.Equal(expected, categories)
}

func (s *CategoryServiceTestSuite) TestListCategories_InvalidKind() {
	_, err := s.service.ListCategories(s.userID, "transfer")
	s.ErrorIs(err, models.ErrInvalidKind)
}

func (s *CategoryServiceTestSuite) TestRenameCategory() {
	categoryID := uuid.New()
	existing := &models.Category{ID: categoryID, UserID: s.userID, Kind: models.KindExpense, Name: "Old"}
	renamed := &models.Category{ID: categoryID, UserID: s.userID, Kind: models.KindExpense, Name: "New"}

	s.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(existing, nil)
	s.mockCategoryRepo.EXPECT().Update(categoryID, map[string]interface{}{"name": "New"}).Return(nil)
	s.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(renamed, nil)

	category, err := s.service.RenameCategory(s.userID, categoryID, "New")

	s.NoError(err)
	s.Equal("New", category.Name)
}

func (s *CategoryServiceTestSuite) TestRenameCategory_EmptyName() {
	_, err := s.service.RenameCategory(s.userID, uuid.New(), "")
	s.ErrorIs(err, models.ErrCategoryNameRequired)
}

func (s *CategoryServiceTestSuite) TestRenameCategory_OtherUsersCategoryHidden() {
	categoryID := uuid.New()
	foreign := &models.Category{ID: categoryID, UserID: uuid.New(), Name: "Theirs"}

	s.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(foreign, nil)

	_, err := s.service.RenameCategory(s.userID, categoryID, "Mine")

	s.ErrorIs(err, repositories.ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestDeleteCategory() {
	categoryID := uuid.New()
	existing := &models.Category{ID: categoryID, UserID: s.userID}

	s.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(existing, nil)
	s.mockCategoryRepo.EXPECT().Delete(categoryID).Return(nil)

	s.NoError(s.service.DeleteCategory(s.userID, categoryID))
}

func (s *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	categoryID := uuid.New()

	s.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(nil, repositories.ErrCategoryNotFound)

	err := s.service.DeleteCategory(s.userID, categoryID)

	s.ErrorIs(err, repositories.ErrCategoryNotFound)
}
