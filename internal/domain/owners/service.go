package owners

import (
	"context"
	"fmt"
	"sync"

	"vetcare-front/internal/domain/pets"
	"vetcare-front/internal/platform/logger"
)

const listLimit = 500

type Service struct {
	api     API
	petsAPI pets.API
	log     logger.Logger
}

func NewService(api API, petsAPI pets.API, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{api: api, petsAPI: petsAPI, log: log}
}

// LoadAll es el fetch de montaje: propietarios y mascotas en paralelo,
// esperados juntos. La lista de mascotas alimenta el conteo por dueño
// y el detalle; si cualquiera falla, la página reporta error de carga.
func (s *Service) LoadAll(ctx context.Context) (State, error) {
	var (
		wg        sync.WaitGroup
		ownerList []Owner
		petList   []pets.Pet
		ownerErr  error
		petsErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		ownerList, _, ownerErr = s.api.List(ctx, 1, listLimit)
	}()
	go func() {
		defer wg.Done()
		petList, _, petsErr = s.petsAPI.List(ctx, 1, listLimit)
	}()
	wg.Wait()

	if ownerErr != nil || petsErr != nil {
		err := ownerErr
		if err == nil {
			err = petsErr
		}
		s.log.Error("carga de propietarios falló", map[string]any{"error": err.Error()})
		return State{}, fmt.Errorf("Error cargando datos: %w", err)
	}

	st := State{Owners: ownerList, Pets: petList, Loaded: true}
	if len(ownerList) > 0 {
		st.SelectedID = ownerList[0].ID
	}
	return st, nil
}

// Save valida y decide create vs update según venga id.
func (s *Service) Save(ctx context.Context, in Input) (Owner, error) {
	if err := in.Validate(); err != nil {
		return Owner{}, err
	}

	if in.ID != 0 {
		return s.api.Update(ctx, in.ID, in)
	}
	return s.api.Create(ctx, in)
}

// Delete borra en el backend. La limpieza local (propietario + sus
// mascotas en un solo paso) la hace la vista: es un espejo del cascade
// del backend, no un reemplazo.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}
