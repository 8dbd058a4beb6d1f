package expressapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"vetcare-front/internal/adapters/backend/envelope"
	"vetcare-front/internal/ports/backend"
	"vetcare-front/internal/session"
)

const (
	loginPath         = "/auth/login"
	profilePath       = "/auth/profile"
	registerPath      = "/auth/register"
	registerAdminPath = "/auth/register-admin"
)

// Órdenes de prioridad observados en este backend: el login anida el
// token bajo data antes que access_token; el registro al revés.
var (
	loginTokenOrder = []string{
		envelope.FieldToken,
		envelope.FieldDataToken,
		envelope.FieldAccessToken,
	}
	registerTokenOrder = []string{
		envelope.FieldToken,
		envelope.FieldAccessToken,
		envelope.FieldDataToken,
	}
)

func (c *Client) Login(ctx context.Context, email, password string) (backend.LoginResult, error) {
	in := map[string]string{"email": email, "password": password}

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPost, loginPath, nil, in, &raw); err != nil {
		return backend.LoginResult{}, err
	}

	tok := envelope.Token(raw, loginTokenOrder)
	if tok == "" {
		return backend.LoginResult{}, fmt.Errorf("%w (Express)", backend.ErrTokenNotFound)
	}

	res := backend.LoginResult{Token: tok}
	if u, ok := envelope.LoginUser(raw); ok {
		res.User = &u
	}
	return res, nil
}

func (c *Client) Profile(ctx context.Context) (session.UserRecord, error) {
	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodGet, profilePath, nil, nil, &raw); err != nil {
		return session.UserRecord{}, err
	}

	u, ok := envelope.ProfileUser(raw)
	if !ok {
		return session.UserRecord{}, errors.New("expressapi: respuesta de perfil inválida")
	}
	return u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in backend.ProfileUpdate) (session.UserRecord, error) {
	// Punteros con omitempty: contraseñas ausentes no viajan, y el
	// backend deja la contraseña tal cual.
	payload := struct {
		Name            string  `json:"nombre"`
		Email           string  `json:"email"`
		Phone           string  `json:"telefono"`
		CurrentPassword *string `json:"currentPassword,omitempty"`
		NewPassword     *string `json:"newPassword,omitempty"`
	}{
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		CurrentPassword: in.CurrentPassword,
		NewPassword:     in.NewPassword,
	}

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPut, profilePath, nil, payload, &raw); err != nil {
		return session.UserRecord{}, err
	}

	u, ok := envelope.ProfileUser(raw)
	if !ok {
		return session.UserRecord{}, errors.New("expressapi: respuesta de perfil inválida")
	}
	return u, nil
}

func (c *Client) Register(ctx context.Context, in backend.RegisterInput) (backend.LoginResult, error) {
	// role:"user" explícito para dejar clara la intención; el backend
	// igual fuerza el role del lado servidor.
	payload := struct {
		Name     string `json:"nombre"`
		Email    string `json:"email"`
		Phone    string `json:"telefono"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}{in.Name, in.Email, in.Phone, in.Password, "user"}

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPost, registerPath, nil, payload, &raw); err != nil {
		return backend.LoginResult{}, err
	}

	// Acá un token ausente NO es error: el alta pudo quedar pendiente
	// de activación por un admin.
	res := backend.LoginResult{Token: envelope.Token(raw, registerTokenOrder)}
	if u, ok := envelope.LoginUser(raw); ok {
		res.User = &u
	}
	return res, nil
}

func (c *Client) RegisterAdmin(ctx context.Context, in backend.RegisterInput) (session.UserRecord, error) {
	payload := struct {
		Name     string `json:"nombre"`
		Email    string `json:"email"`
		Phone    string `json:"telefono"`
		Password string `json:"password"`
	}{in.Name, in.Email, in.Phone, in.Password}

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPost, registerAdminPath, nil, payload, &raw); err != nil {
		return session.UserRecord{}, err
	}

	// data.user -> data -> body, según venga.
	if u, ok := envelope.LoginUser(raw); ok {
		return u, nil
	}
	if u, ok := envelope.ProfileUser(raw); ok {
		return u, nil
	}
	return session.UserRecord{}, errors.New("expressapi: respuesta de register-admin inválida")
}
