package services

import (
	"context"
	"errors"
	"testing"

	"studio-backend/internal/models"
)

// fakeCatalogStore holds the three levels in memory and derives the child
// counts the delete guards check.
type fakeCatalogStore struct {
	categories    map[int]*models.Category
	subcategories map[int]*models.SubCategory
	sections      map[int]*models.Section
	nextID        int
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{
		categories:    map[int]*models.Category{},
		subcategories: map[int]*models.SubCategory{},
		sections:      map[int]*models.Section{},
		nextID:        1,
	}
}

func (f *fakeCatalogStore) id() int {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeCatalogStore) CreateCategory(ctx context.Context, c *models.Category) error {
	c.ID = f.id()
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCatalogStore) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCatalogStore) UpdateCategory(ctx context.Context, c *models.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return errors.New("no rows")
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCatalogStore) DeleteCategory(ctx context.Context, id int) error {
	if _, ok := f.categories[id]; !ok {
		return errors.New("no rows")
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCatalogStore) CountSubCategories(ctx context.Context, categoryID int) (int, error) {
	n := 0
	for _, s := range f.subcategories {
		if s.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCatalogStore) CreateSubCategory(ctx context.Context, s *models.SubCategory) error {
	s.ID = f.id()
	f.subcategories[s.ID] = s
	return nil
}

func (f *fakeCatalogStore) ListSubCategories(ctx context.Context, categoryID int) ([]*models.SubCategory, error) {
	var out []*models.SubCategory
	for _, s := range f.subcategories {
		if categoryID == 0 || s.CategoryID == categoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalogStore) UpdateSubCategory(ctx context.Context, s *models.SubCategory) error {
	if _, ok := f.subcategories[s.ID]; !ok {
		return errors.New("no rows")
	}
	f.subcategories[s.ID] = s
	return nil
}

func (f *fakeCatalogStore) DeleteSubCategory(ctx context.Context, id int) error {
	if _, ok := f.subcategories[id]; !ok {
		return errors.New("no rows")
	}
	delete(f.subcategories, id)
	return nil
}

func (f *fakeCatalogStore) CountSections(ctx context.Context, subcategoryID int) (int, error) {
	n := 0
	for _, s := range f.sections {
		if s.SubCategoryID == subcategoryID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCatalogStore) CreateSection(ctx context.Context, s *models.Section) error {
	s.ID = f.id()
	f.sections[s.ID] = s
	return nil
}

func (f *fakeCatalogStore) ListSections(ctx context.Context, subcategoryID int) ([]*models.Section, error) {
	var out []*models.Section
	for _, s := range f.sections {
		if subcategoryID == 0 || s.SubCategoryID == subcategoryID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalogStore) UpdateSection(ctx context.Context, s *models.Section) error {
	if _, ok := f.sections[s.ID]; !ok {
		return errors.New("no rows")
	}
	f.sections[s.ID] = s
	return nil
}

func (f *fakeCatalogStore) DeleteSection(ctx context.Context, id int) error {
	if _, ok := f.sections[id]; !ok {
		return errors.New("no rows")
	}
	delete(f.sections, id)
	return nil
}

func seedCatalog(t *testing.T, svc *CatalogService) (*models.Category, *models.SubCategory, *models.Section) {
	t.Helper()
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, &models.CategoryRequest{Name: "Woodwork"})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	sub, err := svc.CreateSubCategory(ctx, &models.SubCategoryRequest{CategoryID: cat.ID, Name: "Wardrobes"})
	if err != nil {
		t.Fatalf("seed subcategory: %v", err)
	}
	section, err := svc.CreateSection(ctx, &models.SectionRequest{
		SubCategoryID: sub.ID,
		Material:      "Plywood BWP",
		Amount:        1450,
	})
	if err != nil {
		t.Fatalf("seed section: %v", err)
	}
	return cat, sub, section
}

func TestDeleteCategoryGuard(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogStore())
	ctx := context.Background()

	cat, sub, section := seedCatalog(t, svc)

	if err := svc.DeleteCategory(ctx, cat.ID); !errors.Is(err, ErrHasSubCategories) {
		t.Fatalf("got %v, want ErrHasSubCategories", err)
	}
	if err := svc.DeleteSubCategory(ctx, sub.ID); !errors.Is(err, ErrHasSections) {
		t.Fatalf("got %v, want ErrHasSections", err)
	}

	// Bottom-up deletion succeeds
	if err := svc.DeleteSection(ctx, section.ID); err != nil {
		t.Fatalf("delete section: %v", err)
	}
	if err := svc.DeleteSubCategory(ctx, sub.ID); err != nil {
		t.Fatalf("delete subcategory: %v", err)
	}
	if err := svc.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogStore())

	if err := svc.DeleteCategory(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCreateSectionDefaultsMeasurementType(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogStore())
	ctx := context.Background()

	cat, _ := svc.CreateCategory(ctx, &models.CategoryRequest{Name: "Woodwork"})
	sub, _ := svc.CreateSubCategory(ctx, &models.SubCategoryRequest{CategoryID: cat.ID, Name: "TV Units"})

	section, err := svc.CreateSection(ctx, &models.SectionRequest{
		SubCategoryID: sub.ID,
		Material:      "Laminate",
		Amount:        950,
	})
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	if section.Type != models.MeasurementArea {
		t.Errorf("type: got %q want %q", section.Type, models.MeasurementArea)
	}
}

func TestCatalogValidation(t *testing.T) {
	svc := NewCatalogService(newFakeCatalogStore())
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, &models.CategoryRequest{}); !IsValidation(err) {
		t.Errorf("category without name: got %v", err)
	}
	if _, err := svc.CreateSubCategory(ctx, &models.SubCategoryRequest{Name: "orphan"}); !IsValidation(err) {
		t.Errorf("subcategory without category_id: got %v", err)
	}
	if _, err := svc.CreateSection(ctx, &models.SectionRequest{SubCategoryID: 1}); !IsValidation(err) {
		t.Errorf("section without material: got %v", err)
	}
}
