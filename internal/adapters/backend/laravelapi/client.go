// Package laravelapi es el adapter del backend primario ("profesor"),
// una API Laravel remota. Solo expone login y perfil; el cliente no la
// usa para datos.
package laravelapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"vetcare-front/internal/adapters/backend/envelope"
	"vetcare-front/internal/platform/httpclient"
	"vetcare-front/internal/ports/backend"
	"vetcare-front/internal/session"
)

const (
	loginPath   = "/api/login"
	profilePath = "/api/profile"
)

// Orden de prioridad en que este backend puede traer el token.
var tokenOrder = []string{
	envelope.FieldToken,
	envelope.FieldAccessToken,
	envelope.FieldDataToken,
}

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("laravelapi: %w", err)
	}
	// Interceptor: el token se lee fresco del contexto en cada llamada.
	hc.Token = session.TokenFromContext
	return &Client{http: hc}, nil
}

// NewWith inyecta un httpclient ya armado (tests).
func NewWith(hc *httpclient.Client) *Client {
	hc.Token = session.TokenFromContext
	return &Client{http: hc}
}

func (c *Client) Login(ctx context.Context, email, password string) (backend.LoginResult, error) {
	in := map[string]string{"email": email, "password": password}

	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodPost, loginPath, nil, in, &raw); err != nil {
		return backend.LoginResult{}, err
	}

	tok := envelope.Token(raw, tokenOrder)
	if tok == "" {
		return backend.LoginResult{}, fmt.Errorf("%w (Laravel)", backend.ErrTokenNotFound)
	}

	// Este backend no embede el usuario en el login; el perfil se
	// pide aparte.
	return backend.LoginResult{Token: tok}, nil
}

func (c *Client) Profile(ctx context.Context) (session.UserRecord, error) {
	var raw json.RawMessage
	if err := c.http.DoJSON(ctx, http.MethodGet, profilePath, nil, nil, &raw); err != nil {
		return session.UserRecord{}, err
	}

	u, ok := envelope.ProfileUser(raw)
	if !ok {
		return session.UserRecord{}, errors.New("laravelapi: respuesta de perfil inválida")
	}
	return u, nil
}
