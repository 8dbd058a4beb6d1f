// Package envelope concentra el parsing de los sobres ad-hoc que usan
// los dos backends: el token puede venir en `token`, `access_token` o
// `data.token`; el usuario en `data.user`, `data` o `user`; las listas
// bajo `data` con `meta.total` (o el header x-total-count). Antes esto
// eran cadenas de prioridad repetidas inline en cada página.
package envelope

import (
	"encoding/json"
	"strings"

	"vetcare-front/internal/session"
)

// Campos donde un backend puede esconder el token de login.
const (
	FieldToken       = "token"
	FieldAccessToken = "access_token"
	FieldDataToken   = "data.token"
)

type loginBody struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"access_token"`
	User        json.RawMessage `json:"user"`
	Data        json.RawMessage `json:"data"`
}

type dataBody struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// Token busca el token en los campos indicados, en ese orden.
// Retorna "" si no aparece en ninguno; el caller decide el error
// (cada backend tiene su propio orden de prioridad).
func Token(raw json.RawMessage, order []string) string {
	var body loginBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	var data dataBody
	if len(body.Data) > 0 {
		_ = json.Unmarshal(body.Data, &data)
	}

	for _, f := range order {
		var tok string
		switch f {
		case FieldToken:
			tok = body.Token
		case FieldAccessToken:
			tok = body.AccessToken
		case FieldDataToken:
			tok = data.Token
		}
		if strings.TrimSpace(tok) != "" {
			return strings.TrimSpace(tok)
		}
	}
	return ""
}

// LoginUser extrae el usuario embebido en una respuesta de login,
// probando data.user -> data -> user. El segundo candidato puede ser
// el sobre completo (con token adentro): en ese caso el perfil sale
// sin email y el caller debe pedir /profile aparte.
func LoginUser(raw json.RawMessage) (session.UserRecord, bool) {
	var body loginBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return session.UserRecord{}, false
	}

	if len(body.Data) > 0 {
		var data dataBody
		_ = json.Unmarshal(body.Data, &data)
		if u, ok := asUser(data.User); ok {
			return u, true
		}
		if u, ok := asUser(body.Data); ok {
			return u, true
		}
	}
	return asUser(body.User)
}

// ProfileUser decodifica una respuesta de perfil: el user puede venir
// bajo `data` o ser el body entero.
func ProfileUser(raw json.RawMessage) (session.UserRecord, bool) {
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if u, ok := asUser(body.Data); ok {
			return u, true
		}
	}
	return asUser(raw)
}

func asUser(raw json.RawMessage) (session.UserRecord, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return session.UserRecord{}, false
	}
	var u session.UserRecord
	if err := json.Unmarshal(raw, &u); err != nil {
		return session.UserRecord{}, false
	}
	return u, true
}

// List decodifica una colección: `{data: [...]}` o el array pelado.
func List[T any](raw json.RawMessage) ([]T, error) {
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Data) > 0 && string(body.Data) != "null" {
		raw = body.Data
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Resource decodifica un recurso: `{data: {...}}` o el objeto pelado.
func Resource[T any](raw json.RawMessage) (T, error) {
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Data) > 0 && string(body.Data) != "null" {
		raw = body.Data
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Total saca meta.total de una colección; si no viene, el caller
// usa el header x-total-count como fallback.
func Total(raw json.RawMessage) (int, bool) {
	var body struct {
		Meta struct {
			Total *int `json:"total"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Meta.Total == nil {
		return 0, false
	}
	return *body.Meta.Total, true
}
