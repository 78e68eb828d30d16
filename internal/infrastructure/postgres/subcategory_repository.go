package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL (usable con pool o tx).
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías. Pasar pool o tx (Querier).
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

const subcategoryCols = `id, name, description, category_id, active, created_at, updated_at`

// Create persiste una nueva subcategoría.
func (r *SubcategoryRepo) Create(s *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, name, description, category_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Description, s.CategoryID, s.Active, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID.
func (r *SubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	return r.getOne(`SELECT `+subcategoryCols+` FROM subcategories WHERE id = $1`, id)
}

// GetByName obtiene una subcategoría por nombre (único).
func (r *SubcategoryRepo) GetByName(name string) (*entity.Subcategory, error) {
	return r.getOne(`SELECT `+subcategoryCols+` FROM subcategories WHERE name = $1`, name)
}

func (r *SubcategoryRepo) getOne(query string, arg any) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

// Update actualiza una subcategoría existente (incluye active y category_id).
func (r *SubcategoryRepo) Update(s *entity.Subcategory) error {
	query := `
		UPDATE subcategories SET name = $2, description = $3, category_id = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.Description, s.CategoryID, s.Active, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// List lista subcategorías con paginación; includeInactive=false filtra active.
func (r *SubcategoryRepo) List(limit, offset int, includeInactive bool) ([]*entity.Subcategory, error) {
	query := `
		SELECT ` + subcategoryCols + `
		FROM subcategories WHERE ($3 OR active) ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, includeInactive)
}

// ListByCategory lista las subcategorías de una categoría.
func (r *SubcategoryRepo) ListByCategory(categoryID string, includeInactive bool) ([]*entity.Subcategory, error) {
	query := `
		SELECT ` + subcategoryCols + `
		FROM subcategories WHERE category_id = $1 AND ($2 OR active) ORDER BY name`
	return r.list(query, categoryID, includeInactive)
}

func (r *SubcategoryRepo) list(query string, args ...any) ([]*entity.Subcategory, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una subcategoría por ID.
func (r *SubcategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

// DeactivateByCategory apaga en bloque las subcategorías de una categoría (paso de cascada).
func (r *SubcategoryRepo) DeactivateByCategory(categoryID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE subcategories SET active = false, updated_at = now() WHERE category_id = $1 AND active`,
		categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate subcategories: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByCategory elimina en bloque las subcategorías de una categoría (paso de cascada).
func (r *SubcategoryRepo) DeleteByCategory(categoryID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM subcategories WHERE category_id = $1`,
		categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete subcategories: %w", err)
	}
	return cmd.RowsAffected(), nil
}
