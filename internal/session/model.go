package session

import "time"

// Source identifica qué backend emitió la sesión.
// El token solo es válido contra el backend de su source.
type Source string

const (
	SourceLocal    Source = "local"
	SourceProfesor Source = "profesor"
	SourceExpress  Source = "express"
)

// Role viene SIEMPRE afirmado por el backend. El cliente nunca
// eleva un role localmente; "user" es solo fallback de display.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// UserRecord es el perfil tal como lo entregan los backends.
// Los tags JSON son el contrato de wire (campos en español).
type UserRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Phone string `json:"telefono,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// Session es el registro del lado cliente de la identidad autenticada:
// token bearer, perfil, y qué backend lo emitió.
// Invariante: Source seteado si y solo si Token seteado;
// se limpian juntos en logout (acá, borrando la sesión entera).
type Session struct {
	ID     string
	Token  string
	User   UserRecord
	Source Source

	CreatedAt time.Time
}

func (s Session) IsAdmin() bool {
	return s.User.Role == RoleAdmin
}
