package middleware

import (
	"net/http"

	"vetcare-front/internal/session"
	"vetcare-front/internal/web"
)

// RequireSession redirige al login si no hay sesión. Silencioso:
// sin sesión no hay error que mostrar.
func RequireSession(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := session.FromContext(r.Context()); !ok {
				http.Redirect(w, r, loginURL, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin protege las vistas solo-admin: un user/guest recibe un
// alert bloqueante y vuelve al dashboard (NO al login; el dashboard
// sí está permitido para cualquier sesión).
func RequireAdmin(dashboardURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			if !sess.IsAdmin() {
				web.SetFlash(w, web.FlashAlert, "Acceso denegado: sólo administradores pueden acceder.")
				http.Redirect(w, r, dashboardURL, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
