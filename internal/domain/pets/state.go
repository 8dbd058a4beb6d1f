package pets

import (
	"sort"
	"strings"
)

// State es el estado local de la página de mascotas para una sesión:
// las listas completas en memoria, más los filtros vigentes. El
// filtrado se recalcula siempre sobre la lista completa.
type State struct {
	Pets   []Pet
	Owners []OwnerOption

	Query   string
	Species string

	FormErrors []string
	Loaded     bool
}

// SpeciesList junta las especies presentes, para el filtro.
func (st State) SpeciesList() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range st.Pets {
		if p.Species == "" || seen[p.Species] {
			continue
		}
		seen[p.Species] = true
		out = append(out, p.Species)
	}
	sort.Strings(out)
	return out
}

// Filtered aplica el filtro de especie (igualdad) y la búsqueda por
// substring case-insensitive sobre nombre, raza y nombre del dueño.
func (st State) Filtered() []Pet {
	q := strings.ToLower(strings.TrimSpace(st.Query))

	out := make([]Pet, 0, len(st.Pets))
	for _, p := range st.Pets {
		if st.Species != "" && p.Species != st.Species {
			continue
		}
		if q == "" {
			out = append(out, p)
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Breed), q) ||
			strings.Contains(strings.ToLower(p.OwnerName), q) {
			out = append(out, p)
		}
	}
	return out
}

// OwnerLabel resuelve el display del dueño desde la lista local.
func (st State) OwnerLabel(p Pet) string {
	if p.OwnerName != "" {
		return p.OwnerName
	}
	for _, o := range st.Owners {
		if o.ID == p.OwnerKey() {
			return o.Name
		}
	}
	return "-"
}
