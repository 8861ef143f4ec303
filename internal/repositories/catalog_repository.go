package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogRepository covers the three catalog levels. Counts back the
// application-level delete guards (a parent cannot go while children
// reference it).
type CatalogRepository struct {
	DB *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// Categories

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *models.Category) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO categories(name) VALUES($1) RETURNING id, created_at`,
		c.Name).Scan(&c.ID, &c.CreatedAt)
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, c *models.Category) error {
	tag, err := r.DB.Exec(ctx, `UPDATE categories SET name=$1 WHERE id=$2`, c.Name, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) CountSubCategories(ctx context.Context, categoryID int) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM subcategories WHERE category_id=$1`, categoryID).Scan(&count)
	return count, err
}

// SubCategories

func (r *CatalogRepository) CreateSubCategory(ctx context.Context, s *models.SubCategory) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO subcategories(category_id, name) VALUES($1, $2) RETURNING id, created_at`,
		s.CategoryID, s.Name).Scan(&s.ID, &s.CreatedAt)
}

func (r *CatalogRepository) ListSubCategories(ctx context.Context, categoryID int) ([]*models.SubCategory, error) {
	clause := `ORDER BY name`
	args := []interface{}{}
	if categoryID > 0 {
		clause = `WHERE category_id=$1 ORDER BY name`
		args = append(args, categoryID)
	}
	rows, err := r.DB.Query(ctx,
		`SELECT id, category_id, name, created_at FROM subcategories `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.SubCategory
	for rows.Next() {
		var s models.SubCategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

func (r *CatalogRepository) UpdateSubCategory(ctx context.Context, s *models.SubCategory) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE subcategories SET category_id=$1, name=$2 WHERE id=$3`,
		s.CategoryID, s.Name, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) DeleteSubCategory(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM subcategories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) CountSections(ctx context.Context, subcategoryID int) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM sections WHERE subcategory_id=$1`, subcategoryID).Scan(&count)
	return count, err
}

// Sections

func (r *CatalogRepository) CreateSection(ctx context.Context, s *models.Section) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO sections(subcategory_id, material, description, amount, type)
         VALUES($1, $2, $3, $4, $5) RETURNING id, created_at`,
		s.SubCategoryID, s.Material, s.Description, s.Amount, s.Type,
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *CatalogRepository) ListSections(ctx context.Context, subcategoryID int) ([]*models.Section, error) {
	clause := `ORDER BY material`
	args := []interface{}{}
	if subcategoryID > 0 {
		clause = `WHERE subcategory_id=$1 ORDER BY material`
		args = append(args, subcategoryID)
	}
	rows, err := r.DB.Query(ctx,
		`SELECT id, subcategory_id, material, description, amount, type, created_at
         FROM sections `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		var s models.Section
		err := rows.Scan(&s.ID, &s.SubCategoryID, &s.Material, &s.Description,
			&s.Amount, &s.Type, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		sections = append(sections, &s)
	}
	return sections, rows.Err()
}

func (r *CatalogRepository) UpdateSection(ctx context.Context, s *models.Section) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE sections SET subcategory_id=$1, material=$2, description=$3, amount=$4, type=$5
         WHERE id=$6`,
		s.SubCategoryID, s.Material, s.Description, s.Amount, s.Type, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CatalogRepository) DeleteSection(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM sections WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
