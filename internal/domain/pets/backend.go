package pets

import "context"

// API es lo que este módulo necesita del backend de datos.
// List retorna además el total reportado (meta.total o x-total-count).
type API interface {
	List(ctx context.Context, page, limit int) ([]Pet, int, error)
	Create(ctx context.Context, in Input) (Pet, error)
	Update(ctx context.Context, id int64, in Input) (Pet, error)
	Delete(ctx context.Context, id int64) error

	// ListOwners alimenta el selector de propietario del form.
	ListOwners(ctx context.Context, page, limit int) ([]OwnerOption, error)
}
