// Package listview implementa la disciplina de listas en memoria que
// comparten las páginas CRUD: reconciliar por id tras create/update y
// remover por id tras delete. Las listas nunca se persisten; viven lo
// que vive la vista.
package listview

// Entity es cualquier elemento identificable por id numérico.
type Entity interface {
	Key() int64
}

// Reconcile aplica la regla uniforme post create/update: si el id ya
// está en la lista, reemplaza esa entrada en su posición; si no,
// inserta al frente. Converge igual venga de "crear" o de "editar",
// y evita filas duplicadas si un retry duplicó un create que el
// backend dedupliqueó.
func Reconcile[T Entity](list []T, item T) []T {
	for i, cur := range list {
		if cur.Key() == item.Key() {
			out := make([]T, len(list))
			copy(out, list)
			out[i] = item
			return out
		}
	}

	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	out = append(out, list...)
	return out
}

// RemoveByID filtra la entrada con ese id (si está).
func RemoveByID[T Entity](list []T, id int64) []T {
	return RemoveWhere(list, func(e T) bool { return e.Key() == id })
}

// RemoveWhere filtra todas las entradas que matchean.
func RemoveWhere[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if !match(e) {
			out = append(out, e)
		}
	}
	return out
}
