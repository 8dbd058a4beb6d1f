package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"vetcare-front/internal/adapters/backend/envelope"
	"vetcare-front/internal/platform/logger"
)

// listLimit: la página trabaja con la lista completa en memoria.
const listLimit = 500

var ErrInvalidInput = errors.New("Nombre y propietario son requeridos")

type Service struct {
	api API
	log logger.Logger
}

func NewService(api API, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{api: api, log: log}
}

// LoadAll es el fetch de montaje de la página: mascotas y propietarios
// en paralelo, esperados juntos. Si cualquiera falla, la página entera
// reporta error de carga (sin reintentos).
func (s *Service) LoadAll(ctx context.Context) (State, error) {
	var (
		wg       sync.WaitGroup
		pets     []Pet
		owners   []OwnerOption
		petsErr  error
		ownerErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		pets, _, petsErr = s.api.List(ctx, 1, listLimit)
	}()
	go func() {
		defer wg.Done()
		owners, ownerErr = s.api.ListOwners(ctx, 1, listLimit)
	}()
	wg.Wait()

	if petsErr != nil || ownerErr != nil {
		err := petsErr
		if err == nil {
			err = ownerErr
		}
		s.log.Error("carga de mascotas falló", map[string]any{"error": err.Error()})
		return State{}, fmt.Errorf("Error cargando datos: %w", err)
	}

	return State{Pets: pets, Owners: owners, Loaded: true}, nil
}

// Save valida y decide create vs update según venga id.
// La validación es síncrona y corta antes de tocar la red.
func (s *Service) Save(ctx context.Context, in Input) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" || in.OwnerID == 0 {
		return Pet{}, ErrInvalidInput
	}

	if in.ID != 0 {
		return s.api.Update(ctx, in.ID, in)
	}
	return s.api.Create(ctx, in)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}

// ErrorMessages aplana un error de guardado para display.
func ErrorMessages(err error) []string {
	return envelope.Messages(err)
}
