package backend

import "vetcare-front/internal/session"

// LoginResult es lo que un backend entrega al autenticar.
// User viene solo si el login ya traía el usuario embebido.
type LoginResult struct {
	Token string
	User  *session.UserRecord
}

// RegisterInput es el payload de alta de cuenta (usuario o admin).
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// ProfileUpdate actualiza el perfil propio. Los campos de contraseña
// son punteros a propósito: nil => el campo NO viaja en el JSON y el
// backend deja la contraseña como está. String vacío no es lo mismo.
type ProfileUpdate struct {
	Name            string
	Email           string
	Phone           string
	CurrentPassword *string
	NewPassword     *string
}
