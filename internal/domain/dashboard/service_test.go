package dashboard

import (
	"context"
	"errors"
	"testing"

	"vetcare-front/internal/domain/owners"
	"vetcare-front/internal/domain/pets"
	"vetcare-front/internal/platform/logger"
)

type fakeOwners struct {
	list  []owners.Owner
	total int
	err   error
}

func (f *fakeOwners) List(_ context.Context, _, limit int) ([]owners.Owner, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	if limit < len(f.list) {
		return f.list[:limit], f.total, nil
	}
	return f.list, f.total, nil
}

func (f *fakeOwners) Create(_ context.Context, _ owners.Input) (owners.Owner, error) {
	return owners.Owner{}, nil
}

func (f *fakeOwners) Update(_ context.Context, _ int64, _ owners.Input) (owners.Owner, error) {
	return owners.Owner{}, nil
}

func (f *fakeOwners) Delete(_ context.Context, _ int64) error { return nil }

type fakePets struct {
	total int
	err   error
}

func (f *fakePets) List(_ context.Context, _, _ int) ([]pets.Pet, int, error) {
	return nil, f.total, f.err
}

func (f *fakePets) Create(_ context.Context, _ pets.Input) (pets.Pet, error) {
	return pets.Pet{}, nil
}

func (f *fakePets) Update(_ context.Context, _ int64, _ pets.Input) (pets.Pet, error) {
	return pets.Pet{}, nil
}

func (f *fakePets) Delete(_ context.Context, _ int64) error { return nil }

func (f *fakePets) ListOwners(_ context.Context, _, _ int) ([]pets.OwnerOption, error) {
	return nil, nil
}

func TestLoad_TodoDisponible(t *testing.T) {
	ow := &fakeOwners{
		list:  []owners.Owner{{ID: 7, Name: "Marta"}, {ID: 8, Name: "Luis"}},
		total: 12,
	}
	pe := &fakePets{total: 30}

	st := NewService(ow, pe, logger.Nop()).Load(context.Background())

	if st.OwnersTotal != 12 || st.PetsTotal != 30 {
		t.Fatalf("totales: %d / %d", st.OwnersTotal, st.PetsTotal)
	}
	if len(st.OwnerOptions) != 2 {
		t.Fatalf("opciones: %+v", st.OwnerOptions)
	}
}

func TestLoad_UnaMetricaCaidaNoBloqueaLasDemas(t *testing.T) {
	ow := &fakeOwners{err: errors.New("backend caído")}
	pe := &fakePets{total: 30}

	st := NewService(ow, pe, logger.Nop()).Load(context.Background())

	if st.OwnersTotal != 0 {
		t.Fatalf("la métrica caída queda en cero: %d", st.OwnersTotal)
	}
	if st.PetsTotal != 30 {
		t.Fatalf("la otra métrica sigue llegando: %d", st.PetsTotal)
	}
	if st.OwnerOptions != nil {
		t.Fatalf("sin opciones si el fetch falló: %+v", st.OwnerOptions)
	}
}
