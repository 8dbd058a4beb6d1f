package middleware

import (
	"net/http"

	"vetcare-front/internal/session"
)

// SessionCookie es la cookie que referencia la sesión del lado front.
const SessionCookie = "vetcare_session"

// SessionContext:
// - Si viene cookie y la sesión existe en el store, la inyecta al
//   contexto (lectura fresca en cada request, nunca cacheada).
// - Si no hay sesión, el request sigue igual; los guards deciden.
func SessionContext(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, ok := store.Get(c.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := session.NewContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetSessionCookie deja la cookie de sesión tras un login exitoso.
func SetSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearSessionCookie la borra (logout).
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
