package owners

import "context"

// API es lo que este módulo necesita del backend de datos.
// List retorna además el total reportado (meta.total o x-total-count).
type API interface {
	List(ctx context.Context, page, limit int) ([]Owner, int, error)
	Create(ctx context.Context, in Input) (Owner, error)
	Update(ctx context.Context, id int64, in Input) (Owner, error)
	Delete(ctx context.Context, id int64) error
}
