package web

import (
	"net/http"
	"net/url"
	"strings"
)

// Flash names usados en la app.
const (
	FlashAlert  = "flash_alert"  // alert bloqueante (p.ej. acceso denegado)
	FlashNotice = "flash_notice" // aviso informativo
	FlashErrors = "flash_errors" // lista de errores de formulario, separada por \n
)

// SetFlashErrors serializa una lista de mensajes en un solo flash.
func SetFlashErrors(w http.ResponseWriter, msgs []string) {
	SetFlash(w, FlashErrors, strings.Join(msgs, "\n"))
}

// PopFlashErrors recupera la lista dejada por SetFlashErrors.
func PopFlashErrors(w http.ResponseWriter, r *http.Request) []string {
	raw := PopFlash(w, r, FlashErrors)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

// SetFlash deja un mensaje one-shot en cookie; se consume en el
// próximo render con PopFlash.
func SetFlash(w http.ResponseWriter, name, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlash lee y borra el mensaje, si hay.
func PopFlash(w http.ResponseWriter, r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil || c.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}
