package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CascadeTxRunner ejecuta una cascada dentro de una transacción del almacén.
// fn recibe repos atados a la misma transacción; si fn retorna error se hace
// rollback completo. Lo implementa postgres.TxRunner.
type CascadeTxRunner interface {
	Run(ctx context.Context, fn func(
		catRepo repository.CategoryRepository,
		subRepo repository.SubcategoryRepository,
		prodRepo repository.ProductRepository,
	) error) error
}
