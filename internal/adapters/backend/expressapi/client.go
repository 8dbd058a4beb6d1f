// Package expressapi es el adapter del backend secundario ("express"):
// autenticación, registro, perfil y el CRUD de propietarios/mascotas.
// Es el único backend del que se honra un role admin.
package expressapi

import (
	"fmt"
	"time"

	"vetcare-front/internal/platform/httpclient"
	"vetcare-front/internal/session"
)

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("expressapi: %w", err)
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

// Owners expone la vista de este cliente sobre /propietarios.
func (c *Client) Owners() *OwnersClient {
	return &OwnersClient{http: c.http}
}

// Pets expone la vista de este cliente sobre /mascotas.
func (c *Client) Pets() *PetsClient {
	return &PetsClient{http: c.http}
}
