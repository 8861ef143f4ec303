package services

import (
	"context"

	"studio-backend/internal/cache"
	"studio-backend/internal/models"
)

// catalogStore is implemented by CatalogRepository; narrowed so the delete
// guards are testable without Postgres.
type catalogStore interface {
	CreateCategory(ctx context.Context, c *models.Category) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, c *models.Category) error
	DeleteCategory(ctx context.Context, id int) error
	CountSubCategories(ctx context.Context, categoryID int) (int, error)

	CreateSubCategory(ctx context.Context, s *models.SubCategory) error
	ListSubCategories(ctx context.Context, categoryID int) ([]*models.SubCategory, error)
	UpdateSubCategory(ctx context.Context, s *models.SubCategory) error
	DeleteSubCategory(ctx context.Context, id int) error
	CountSections(ctx context.Context, subcategoryID int) (int, error)

	CreateSection(ctx context.Context, s *models.Section) error
	ListSections(ctx context.Context, subcategoryID int) ([]*models.Section, error)
	UpdateSection(ctx context.Context, s *models.Section) error
	DeleteSection(ctx context.Context, id int) error
}

type CatalogService struct {
	Repo catalogStore
}

func NewCatalogService(repo catalogStore) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) invalidate(ctx context.Context) {
	cache.InvalidateKeys(ctx, cache.CatalogTreeKey)
	cache.InvalidatePattern(ctx, "catalog:sections:*")
}

// Categories

func (s *CatalogService) CreateCategory(ctx context.Context, req *models.CategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, Invalid("name is required")
	}
	category := &models.Category{Name: req.Name}
	if err := s.Repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int, req *models.CategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, Invalid("name is required")
	}
	category := &models.Category{ID: id, Name: req.Name}
	if err := s.Repo.UpdateCategory(ctx, category); err != nil {
		return nil, ErrNotFound
	}
	s.invalidate(ctx)
	return category, nil
}

// DeleteCategory refuses while subcategories still reference the category.
// Check-then-delete; the race window is accepted for this admin tool.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	count, err := s.Repo.CountSubCategories(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasSubCategories
	}
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

// SubCategories

func (s *CatalogService) CreateSubCategory(ctx context.Context, req *models.SubCategoryRequest) (*models.SubCategory, error) {
	if req.Name == "" || req.CategoryID == 0 {
		return nil, Invalid("name and category_id are required")
	}
	sub := &models.SubCategory{CategoryID: req.CategoryID, Name: req.Name}
	if err := s.Repo.CreateSubCategory(ctx, sub); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return sub, nil
}

func (s *CatalogService) ListSubCategories(ctx context.Context, categoryID int) ([]*models.SubCategory, error) {
	return s.Repo.ListSubCategories(ctx, categoryID)
}

func (s *CatalogService) UpdateSubCategory(ctx context.Context, id int, req *models.SubCategoryRequest) (*models.SubCategory, error) {
	if req.Name == "" || req.CategoryID == 0 {
		return nil, Invalid("name and category_id are required")
	}
	sub := &models.SubCategory{ID: id, CategoryID: req.CategoryID, Name: req.Name}
	if err := s.Repo.UpdateSubCategory(ctx, sub); err != nil {
		return nil, ErrNotFound
	}
	s.invalidate(ctx)
	return sub, nil
}

func (s *CatalogService) DeleteSubCategory(ctx context.Context, id int) error {
	count, err := s.Repo.CountSections(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHasSections
	}
	if err := s.Repo.DeleteSubCategory(ctx, id); err != nil {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

// Sections

func (s *CatalogService) CreateSection(ctx context.Context, req *models.SectionRequest) (*models.Section, error) {
	if req.Material == "" || req.SubCategoryID == 0 {
		return nil, Invalid("material and subcategory_id are required")
	}
	if req.Type == "" {
		req.Type = models.MeasurementArea
	}
	section := &models.Section{
		SubCategoryID: req.SubCategoryID,
		Material:      req.Material,
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
	}
	if err := s.Repo.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return section, nil
}

func (s *CatalogService) ListSections(ctx context.Context, subcategoryID int) ([]*models.Section, error) {
	return s.Repo.ListSections(ctx, subcategoryID)
}

func (s *CatalogService) UpdateSection(ctx context.Context, id int, req *models.SectionRequest) (*models.Section, error) {
	if req.Material == "" || req.SubCategoryID == 0 {
		return nil, Invalid("material and subcategory_id are required")
	}
	section := &models.Section{
		ID:            id,
		SubCategoryID: req.SubCategoryID,
		Material:      req.Material,
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
	}
	if err := s.Repo.UpdateSection(ctx, section); err != nil {
		return nil, ErrNotFound
	}
	s.invalidate(ctx)
	return section, nil
}

func (s *CatalogService) DeleteSection(ctx context.Context, id int) error {
	if err := s.Repo.DeleteSection(ctx, id); err != nil {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}
