package dashboard

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vetcare-front/internal/domain/auth"
	"vetcare-front/internal/domain/owners"
	"vetcare-front/internal/domain/pets"
	"vetcare-front/internal/ports/backend"
	"vetcare-front/internal/session"
	"vetcare-front/internal/web"
)

type page struct {
	User           session.UserRecord
	Source         session.Source
	IsAdmin        bool
	CanEditProfile bool

	OwnersTotal  int
	PetsTotal    int
	OwnerOptions []owners.Owner

	Alert      string
	Notice     string
	FormErrors []string
}

// Services agrupa lo que la página principal necesita: métricas más
// las tres acciones rápidas de alta (solo admin).
type Services struct {
	Dashboard *Service
	Auth      *auth.Service
	Owners    *owners.Service
	Pets      *pets.Service
}

func RegisterRoutes(r chi.Router, svcs Services, rnd *web.Renderer) {
	r.Get("/dashboard", handleDashboard(svcs.Dashboard, rnd))
	r.Post("/dashboard/administradores", handleCreateAdmin(svcs.Auth))
	r.Post("/dashboard/propietarios", handleCreateOwner(svcs.Owners))
	r.Post("/dashboard/mascotas", handleCreatePet(svcs.Pets))
}

func handleDashboard(svc *Service, rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		st := svc.Load(r.Context())

		rnd.Render(w, http.StatusOK, "dashboard.html", page{
			User:           sess.User,
			Source:         sess.Source,
			IsAdmin:        sess.IsAdmin(),
			CanEditProfile: sess.Source == session.SourceExpress,
			OwnersTotal:    st.OwnersTotal,
			PetsTotal:      st.PetsTotal,
			OwnerOptions:   st.OwnerOptions,
			Alert:          web.PopFlash(w, r, web.FlashAlert),
			Notice:         web.PopFlash(w, r, web.FlashNotice),
			FormErrors:     web.PopFlashErrors(w, r),
		})
	}
}

// requireAdminAction corta los POST de alta rápida para no-admins.
// Es el mismo criterio del guard de rutas, repetido acá porque estas
// acciones viven bajo /dashboard, que es accesible para cualquier rol.
func requireAdminAction(w http.ResponseWriter, r *http.Request) bool {
	sess, ok := session.FromContext(r.Context())
	if !ok || !sess.IsAdmin() {
		web.SetFlash(w, web.FlashAlert, "Acceso denegado: sólo administradores pueden acceder.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return false
	}
	return true
}

func handleCreateAdmin(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdminAction(w, r) {
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form inválido", http.StatusBadRequest)
			return
		}

		in := backend.RegisterInput{
			Name:     r.PostFormValue("nombre"),
			Email:    r.PostFormValue("email"),
			Phone:    r.PostFormValue("telefono"),
			Password: r.PostFormValue("password"),
		}
		if _, errs := svc.CreateAdmin(r.Context(), in); len(errs) > 0 {
			web.SetFlashErrors(w, errs)
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		web.SetFlash(w, web.FlashNotice, "Administrador creado: "+in.Email)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

func handleCreateOwner(svc *owners.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdminAction(w, r) {
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form inválido", http.StatusBadRequest)
			return
		}

		in := owners.Input{
			Name:    r.PostFormValue("nombre"),
			Email:   r.PostFormValue("email"),
			Phone:   r.PostFormValue("telefono"),
			Address: r.PostFormValue("direccion"),
		}
		if _, err := svc.Save(r.Context(), in); err != nil {
			web.SetFlashErrors(w, owners.ErrorMessages(err))
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		// El total se refresca en el GET que sigue al redirect, no se
		// incrementa a mano.
		web.SetFlash(w, web.FlashNotice, "Propietario creado.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

func handleCreatePet(svc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdminAction(w, r) {
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form inválido", http.StatusBadRequest)
			return
		}

		in := pets.Input{
			Name:    r.PostFormValue("nombre"),
			Species: r.PostFormValue("especie"),
			Breed:   r.PostFormValue("raza"),
			History: r.PostFormValue("historial_medico"),
		}
		if v := r.PostFormValue("edad"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				in.Age = &n
			}
		}
		in.OwnerID, _ = strconv.ParseInt(r.PostFormValue("owner_id"), 10, 64)

		if _, err := svc.Save(r.Context(), in); err != nil {
			web.SetFlashErrors(w, pets.ErrorMessages(err))
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		web.SetFlash(w, web.FlashNotice, "Mascota creada.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
