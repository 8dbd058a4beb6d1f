package backend

import (
	"context"
	"errors"

	"vetcare-front/internal/session"
)

// ErrTokenNotFound: la respuesta de login no traía token en ninguno
// de los campos conocidos. La sesión queda sin tocar.
var ErrTokenNotFound = errors.New("token no encontrado en respuesta de login")

// PrimaryAuth es el backend primario ("profesor"). Solo autentica;
// sus cuentas nunca se tratan como admin del lado cliente.
type PrimaryAuth interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Profile(ctx context.Context) (session.UserRecord, error)
}

// SecondaryAuth es el backend secundario ("express"): login, registro
// y perfil. Es el único origen del que se honra un role admin.
type SecondaryAuth interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Profile(ctx context.Context) (session.UserRecord, error)
	UpdateProfile(ctx context.Context, in ProfileUpdate) (session.UserRecord, error)
	Register(ctx context.Context, in RegisterInput) (LoginResult, error)
	RegisterAdmin(ctx context.Context, in RegisterInput) (session.UserRecord, error)
}
