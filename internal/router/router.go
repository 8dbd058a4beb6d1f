// Package router arma el árbol de rutas completo: páginas públicas,
// páginas con sesión y la zona admin, con los guards aplicados por
// grupo y no por handler.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"vetcare-front/internal/domain/auth"
	"vetcare-front/internal/domain/dashboard"
	"vetcare-front/internal/domain/owners"
	"vetcare-front/internal/domain/pets"
	"vetcare-front/internal/domain/viewstate"
	"vetcare-front/internal/middleware"
	"vetcare-front/internal/platform/logger"
	"vetcare-front/internal/session"
	"vetcare-front/internal/web"
)

type Options struct {
	Sessions session.Store

	Auth      *auth.Service
	Owners    *owners.Service
	Pets      *pets.Service
	Dashboard *dashboard.Service

	Renderer *web.Renderer
	Log      logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SessionContext(opts.Sessions))

	ownerViews := viewstate.NewStore[owners.State]()
	petViews := viewstate.NewStore[pets.State]()
	dropViews := func(sessionID string) {
		ownerViews.Drop(sessionID)
		petViews.Drop(sessionID)
	}

	// Públicas: login y registro.
	auth.RegisterRoutes(r, opts.Auth, opts.Renderer)

	// Con sesión: dashboard, perfil y logout.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession("/"))

		auth.RegisterSessionRoutes(r, opts.Auth, opts.Renderer, dropViews)
		dashboard.RegisterRoutes(r, dashboard.Services{
			Dashboard: opts.Dashboard,
			Auth:      opts.Auth,
			Owners:    opts.Owners,
			Pets:      opts.Pets,
		}, opts.Renderer)

		// Zona admin: las páginas de gestión completas.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin("/dashboard"))

			owners.RegisterRoutes(r, opts.Owners, opts.Pets, ownerViews, opts.Renderer)
			pets.RegisterRoutes(r, opts.Pets, petViews, opts.Renderer)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}
