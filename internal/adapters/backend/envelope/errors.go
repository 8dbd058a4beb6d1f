package envelope

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"vetcare-front/internal/platform/httpclient"
)

var adminGate = regexp.MustCompile(`(?i)admin`)

type errorBody struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

// fieldError cubre los dos formatos conocidos:
// express-validator ({param, msg}) y custom ({field|path, message}).
type fieldError struct {
	Param   string `json:"param"`
	Field   string `json:"field"`
	Path    string `json:"path"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

// Messages normaliza un error de backend a strings de display:
// array de errores por campo => "campo: mensaje"; message suelto;
// cualquier otra forma => el error tal cual o "Error desconocido".
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return []string{err.Error()}
	}

	var body errorBody
	if jErr := json.Unmarshal([]byte(httpErr.Body), &body); jErr != nil {
		if httpErr.Body != "" {
			return []string{httpErr.Body}
		}
		return []string{"Error desconocido"}
	}

	if len(body.Errors) > 0 && string(body.Errors) != "null" {
		var rawItems []json.RawMessage
		if jErr := json.Unmarshal(body.Errors, &rawItems); jErr == nil {
			msgs := make([]string, 0, len(rawItems))
			for _, item := range rawItems {
				var fe fieldError
				_ = json.Unmarshal(item, &fe)

				field := firstNonEmpty(fe.Param, fe.Field, fe.Path, "campo")
				msg := firstNonEmpty(fe.Msg, fe.Message, string(item))
				msgs = append(msgs, field+": "+msg)
			}
			if len(msgs) > 0 {
				return msgs
			}
		}
	}

	if body.Message != "" {
		return []string{body.Message}
	}
	return []string{"Error desconocido"}
}

// IsAdminGated detecta el registro protegido por admin: 403, o un
// message que mencione "admin" (heurística heredada del backend).
func IsAdminGated(err error) bool {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	if httpErr.StatusCode == http.StatusForbidden {
		return true
	}

	var body errorBody
	if jErr := json.Unmarshal([]byte(httpErr.Body), &body); jErr != nil {
		return false
	}
	return body.Message != "" && adminGate.MatchString(body.Message)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
