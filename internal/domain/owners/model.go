package owners

// Owner es el propietario tal como viaja por el wire.
type Owner struct {
	ID      int64  `json:"id"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}

func (o Owner) Key() int64 { return o.ID }

// Input es el payload de create/update de propietario.
type Input struct {
	ID      int64  `json:"-"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
}
