package pets

import (
	"reflect"
	"testing"
)

func sampleState() State {
	return State{
		Pets: []Pet{
			{ID: 1, Name: "Firulais", Species: "Perro", Breed: "Labrador", OwnerID: 7, OwnerName: "Marta"},
			{ID: 2, Name: "Michi", Species: "Gato", Breed: "Criollo", OwnerID: 8, OwnerName: "Luis"},
			{ID: 3, Name: "Rocky", Species: "Perro", Breed: "Boxer", OwnerID: 8, OwnerName: "Luis"},
		},
		Owners: []OwnerOption{
			{ID: 7, Name: "Marta", Email: "m@x"},
			{ID: 8, Name: "Luis", Email: "l@x"},
		},
		Loaded: true,
	}
}

func names(list []Pet) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Name
	}
	return out
}

func TestFiltered(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		species string
		want    []string
	}{
		{"sin filtros", "", "", []string{"Firulais", "Michi", "Rocky"}},
		{"especie exacta", "", "Perro", []string{"Firulais", "Rocky"}},
		{"substring de nombre", "fir", "", []string{"Firulais"}},
		{"substring de raza", "boxer", "", []string{"Rocky"}},
		{"substring del dueño", "luis", "", []string{"Michi", "Rocky"}},
		{"especie y búsqueda combinadas", "luis", "Perro", []string{"Rocky"}},
		{"especie es igualdad, no substring", "", "Perr", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := sampleState()
			st.Query = tc.query
			st.Species = tc.species

			got := names(st.Filtered())
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, quería %v", got, tc.want)
			}
		})
	}
}

func TestSpeciesList_UnicasYOrdenadas(t *testing.T) {
	st := sampleState()
	got := st.SpeciesList()
	if want := []string{"Gato", "Perro"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestOwnerKey_AceptaCampoLegado(t *testing.T) {
	if got := (Pet{OwnerID: 7}).OwnerKey(); got != 7 {
		t.Fatalf("owner_id: %d", got)
	}
	if got := (Pet{LegacyOwnerID: 9}).OwnerKey(); got != 9 {
		t.Fatalf("propietario_id legado: %d", got)
	}
	if got := (Pet{OwnerID: 7, LegacyOwnerID: 9}).OwnerKey(); got != 7 {
		t.Fatalf("owner_id gana sobre el legado: %d", got)
	}
}

func TestOwnerLabel(t *testing.T) {
	st := sampleState()

	// denormalizado por el backend gana
	if got := st.OwnerLabel(Pet{OwnerID: 8, OwnerName: "Luis S."}); got != "Luis S." {
		t.Fatalf("label %q", got)
	}
	// si no viene, se resuelve contra la lista de opciones
	if got := st.OwnerLabel(Pet{OwnerID: 7}); got != "Marta" {
		t.Fatalf("label %q", got)
	}
}
