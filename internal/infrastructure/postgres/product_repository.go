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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productCols = `id, name, description, price, stock, category_id, subcategory_id, created_by, images, active, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, subcategory_id, created_by, images, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.SubcategoryID,
		nullable(p.CreatedBy), p.Images, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productCols+` FROM products WHERE id = $1`, id)
}

// GetByName obtiene un producto por nombre (único).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productCols+` FROM products WHERE name = $1`, name)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &p.SubcategoryID,
		&createdBy, &p.Images, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	return &p, nil
}

// Update actualiza un producto existente (incluye active y referencias).
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5,
			category_id = $6, subcategory_id = $7, images = $8, active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.SubcategoryID,
		p.Images, p.Active, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación; includeInactive=false filtra active.
func (r *ProductRepo) List(limit, offset int, includeInactive bool) ([]*entity.Product, error) {
	query := `
		SELECT ` + productCols + `
		FROM products WHERE ($3 OR active) ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var createdBy *string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.SubcategoryID, &createdBy, &p.Images, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if createdBy != nil {
			p.CreatedBy = *createdBy
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DeactivateByCategory apaga en bloque los productos de una categoría. Filtra
// por la referencia category_id del propio producto, no vía subcategorías.
func (r *ProductRepo) DeactivateByCategory(categoryID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now() WHERE category_id = $1 AND active`,
		categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate products by category: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeactivateBySubcategory apaga en bloque los productos de una subcategoría.
func (r *ProductRepo) DeactivateBySubcategory(subcategoryID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = false, updated_at = now() WHERE subcategory_id = $1 AND active`,
		subcategoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate products by subcategory: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByCategory elimina en bloque los productos de una categoría.
func (r *ProductRepo) DeleteByCategory(categoryID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE category_id = $1`,
		categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete products by category: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteBySubcategory elimina en bloque los productos de una subcategoría.
func (r *ProductRepo) DeleteBySubcategory(subcategoryID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE subcategory_id = $1`,
		subcategoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete products by subcategory: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// nullable convierte "" a NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
