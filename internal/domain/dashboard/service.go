// Package dashboard arma las métricas de la página principal y el
// listado corto de propietarios para el selector de crear-mascota.
package dashboard

import (
	"context"
	"sync"

	"vetcare-front/internal/domain/owners"
	"vetcare-front/internal/domain/pets"
	"vetcare-front/internal/platform/logger"
)

// optionsLimit: primeros propietarios para el selector.
const optionsLimit = 50

type State struct {
	OwnersTotal int
	PetsTotal   int

	OwnerOptions []owners.Owner
}

type Service struct {
	owners owners.API
	pets   pets.API
	log    logger.Logger
}

func NewService(ownersAPI owners.API, petsAPI pets.API, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{owners: ownersAPI, pets: petsAPI, log: log}
}

// Load dispara los tres fetch juntos y los espera juntos. Una falla
// se loguea y deja su métrica en cero sin bloquear las demás; la
// página siempre se renderiza.
func (s *Service) Load(ctx context.Context) State {
	var (
		wg sync.WaitGroup
		st State
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		_, total, err := s.owners.List(ctx, 1, 1)
		if err != nil {
			s.log.Warn("métrica de propietarios no disponible", map[string]any{"error": err.Error()})
			return
		}
		st.OwnersTotal = total
	}()
	go func() {
		defer wg.Done()
		_, total, err := s.pets.List(ctx, 1, 1)
		if err != nil {
			s.log.Warn("métrica de mascotas no disponible", map[string]any{"error": err.Error()})
			return
		}
		st.PetsTotal = total
	}()
	go func() {
		defer wg.Done()
		list, _, err := s.owners.List(ctx, 1, optionsLimit)
		if err != nil {
			s.log.Warn("lista de propietarios no disponible", map[string]any{"error": err.Error()})
			return
		}
		st.OwnerOptions = list
	}()
	wg.Wait()

	return st
}
