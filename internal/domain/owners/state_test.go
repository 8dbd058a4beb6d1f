package owners

import (
	"testing"

	"vetcare-front/internal/domain/pets"
)

func sampleState() State {
	return State{
		Owners: []Owner{
			{ID: 7, Name: "Marta Piedra", Email: "marta@x.com"},
			{ID: 8, Name: "Luis Solís", Email: "luis@x.com"},
		},
		Pets: []pets.Pet{
			{ID: 1, Name: "Firulais", OwnerID: 7},
			{ID: 2, Name: "Michi", OwnerID: 8},
			{ID: 3, Name: "Rocky", LegacyOwnerID: 7},
		},
		SelectedID: 7,
		Loaded:     true,
	}
}

func TestFiltered_NombreOEmail(t *testing.T) {
	st := sampleState()

	st.Filter = "marta"
	if got := st.Filtered(); len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("por nombre: %+v", got)
	}

	st.Filter = "LUIS@X.COM"
	if got := st.Filtered(); len(got) != 1 || got[0].ID != 8 {
		t.Fatalf("por email, case-insensitive: %+v", got)
	}

	st.Filter = "nadie"
	if got := st.Filtered(); len(got) != 0 {
		t.Fatalf("sin match: %+v", got)
	}
}

func TestPetCount_IncluyeCampoLegado(t *testing.T) {
	st := sampleState()
	// Rocky viene con propietario_id en vez de owner_id
	if n := st.PetCount(7); n != 2 {
		t.Fatalf("dueño 7: %d mascotas", n)
	}
	if n := st.PetCount(8); n != 1 {
		t.Fatalf("dueño 8: %d mascotas", n)
	}
}

func TestSelected(t *testing.T) {
	st := sampleState()

	sel, ok := st.Selected()
	if !ok || sel.Name != "Marta Piedra" {
		t.Fatalf("seleccionado: %+v ok=%v", sel, ok)
	}

	// si el seleccionado ya no está en la lista, no hay selección
	st.SelectedID = 99
	if _, ok := st.Selected(); ok {
		t.Fatal("id fuera de la lista no debe resolver")
	}
}
