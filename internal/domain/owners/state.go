package owners

import (
	"strings"

	"vetcare-front/internal/domain/pets"
)

// State es el estado local de la página de propietarios para una
// sesión: ambas listas completas en memoria (la de mascotas se usa
// para el conteo y el detalle), el filtro y la selección vigentes.
type State struct {
	Owners []Owner
	Pets   []pets.Pet

	Filter     string
	SelectedID int64

	FormErrors []string
	Loaded     bool
}

// Filtered busca por substring case-insensitive en nombre o email,
// siempre sobre la lista completa.
func (st State) Filtered() []Owner {
	q := strings.ToLower(strings.TrimSpace(st.Filter))
	if q == "" {
		return st.Owners
	}

	out := make([]Owner, 0, len(st.Owners))
	for _, o := range st.Owners {
		if strings.Contains(strings.ToLower(o.Name), q) ||
			strings.Contains(strings.ToLower(o.Email), q) {
			out = append(out, o)
		}
	}
	return out
}

// PetCount cuenta mascotas por propietario desde la lista local.
func (st State) PetCount(ownerID int64) int {
	n := 0
	for _, p := range st.Pets {
		if p.OwnerKey() == ownerID {
			n++
		}
	}
	return n
}

// PetsOf lista las mascotas del propietario seleccionado.
func (st State) PetsOf(ownerID int64) []pets.Pet {
	out := []pets.Pet{}
	for _, p := range st.Pets {
		if p.OwnerKey() == ownerID {
			out = append(out, p)
		}
	}
	return out
}

// Selected retorna el propietario seleccionado, si sigue en la lista.
func (st State) Selected() (Owner, bool) {
	for _, o := range st.Owners {
		if o.ID == st.SelectedID {
			return o, true
		}
	}
	return Owner{}, false
}
