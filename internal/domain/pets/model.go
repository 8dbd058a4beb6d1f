package pets

// Pet es la mascota tal como viaja por el wire (campos en español).
// La integridad referencial de OwnerID la garantiza el backend, no
// este cliente.
type Pet struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	Species string `json:"especie,omitempty"`
	Breed   string `json:"raza,omitempty"`
	Age     *int   `json:"edad,omitempty"`
	History string `json:"historial_medico,omitempty"`
	OwnerID int64  `json:"owner_id"`

	// Algunas respuestas viejas usan propietario_id en vez de owner_id.
	LegacyOwnerID int64 `json:"propietario_id,omitempty"`

	// Denormalizado por el backend para display en el listado.
	OwnerName string `json:"propietario_nombre,omitempty"`
}

func (p Pet) Key() int64 { return p.ID }

// OwnerKey resuelve el id del propietario aceptando ambos nombres de campo.
func (p Pet) OwnerKey() int64 {
	if p.OwnerID != 0 {
		return p.OwnerID
	}
	return p.LegacyOwnerID
}

// OwnerOption es lo mínimo que la página necesita de un propietario:
// el selector del form y el display del dueño.
type OwnerOption struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// Input es el payload de create/update de mascota.
type Input struct {
	ID      int64  `json:"-"`
	Name    string `json:"nombre"`
	Species string `json:"especie"`
	Breed   string `json:"raza"`
	Age     *int   `json:"edad"`
	History string `json:"historial_medico"`
	OwnerID int64  `json:"owner_id"`
}
