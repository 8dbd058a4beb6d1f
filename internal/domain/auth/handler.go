package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vetcare-front/internal/adapters/backend/envelope"
	"vetcare-front/internal/middleware"
	"vetcare-front/internal/ports/backend"
	"vetcare-front/internal/session"
	"vetcare-front/internal/web"
)

type loginPage struct {
	Mode        string
	Email       string
	Error       string
	Notice      string
	CanRegister bool
}

type registerPage struct {
	Hidden bool
	Errors []string

	Name  string
	Email string
	Phone string
}

type profilePage struct {
	User    session.UserRecord
	CanEdit bool
	Errors  []string
	Notice  string
}

// RegisterRoutes monta las rutas públicas de autenticación.
func RegisterRoutes(r chi.Router, svc *Service, rnd *web.Renderer) {
	r.Get("/", handleLoginPage(svc, rnd))
	r.Post("/login", handleLogin(svc, rnd))
	r.Get("/register", handleRegisterPage(svc, rnd))
	r.Post("/register", handleRegister(svc, rnd))
}

// RegisterSessionRoutes monta las rutas que exigen sesión activa.
// onLogout deja que el router descarte el estado de vistas asociado.
func RegisterSessionRoutes(r chi.Router, svc *Service, rnd *web.Renderer, onLogout func(sessionID string)) {
	r.Post("/logout", handleLogout(svc, onLogout))
	r.Get("/profile", handleProfilePage(rnd))
	r.Post("/profile", handleProfileUpdate(svc, rnd))
}

func handleLoginPage(svc *Service, rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		rnd.Render(w, http.StatusOK, "login.html", loginPage{
			Mode:        string(ModeProfesor),
			Notice:      web.PopFlash(w, r, web.FlashNotice),
			CanRegister: !svc.RegistrationHidden(),
		})
	}
}

func handleLogin(svc *Service, rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form inválido", http.StatusBadRequest)
			return
		}
		mode := Mode(r.PostFormValue("mode"))
		email := r.PostFormValue("email")

		sess, err := svc.Login(r.Context(), mode, email, r.PostFormValue("password"))
		if err != nil {
			rnd.Render(w, http.StatusOK, "login.html", loginPage{
				Mode:        string(mode),
				Email:       email,
				Error:       envelope.Messages(err)[0],
				CanRegister: !svc.RegistrationHidden(),
			})
			return
		}

		middleware.SetSessionCookie(w, sess.ID)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

func handleRegisterPage(svc *Service, rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rnd.Render(w, http.StatusOK, "register.html", registerPage{
			Hidden: svc.RegistrationHidden(),
		})
	}
}

func handleRegister(svc *Service, rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc.RegistrationHidden() {
			http.Redirect(w, r, "/register", http.StatusSeeOther)
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

		out := svc.Register(r.Context(), in)
		switch {
		case out.Session != nil:
			middleware.SetSessionCookie(w, out.Session.ID)
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		case out.Notice != "":
			web.SetFlash(w, web.FlashNotice, out.Notice)
			http.Redirect(w, r, "/", http.StatusSeeOther)
		default:
			rnd.Render(w, http.StatusOK, "register.html", registerPage{
				Hidden: svc.RegistrationHidden(),
				Errors: out.Errors,
				Name:   in.Name,
				Email:  in.Email,
				Phone:  in.Phone,
			})
		}
	}
}

func handleLogout(svc *Service, onLogout func(string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := session.FromContext(r.Context()); ok {
			svc.Logout(sess.ID)
			if onLogout != nil {
				onLogout(sess.ID)
			}
		}
		middleware.ClearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func handleProfilePage(rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		rnd.Render(w, http.StatusOK, "profile.html", profilePage{
			User:    sess.User,
			CanEdit: sess.Source == session.SourceExpress,
			Notice:  web.PopFlash(w, r, web.FlashNotice),
		})
	}
}

func handleProfileUpdate(svc *Service, rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())

		// Editar perfil solo existe para sesiones del backend Express;
		// los otros modos no exponen el endpoint.
		if sess.Source != session.SourceExpress {
			web.SetFlash(w, web.FlashAlert, "Editar perfil no disponible para este modo de acceso.")
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form inválido", http.StatusBadRequest)
			return
		}

		form := ProfileForm{
			Name:            r.PostFormValue("nombre"),
			Email:           r.PostFormValue("email"),
			Phone:           r.PostFormValue("telefono"),
			CurrentPassword: r.PostFormValue("current_password"),
			NewPassword:     r.PostFormValue("new_password"),
		}

		if _, errs := svc.UpdateProfile(r.Context(), sess.ID, form); len(errs) > 0 {
			rnd.Render(w, http.StatusOK, "profile.html", profilePage{
				User:    sess.User,
				CanEdit: true,
				Errors:  errs,
			})
			return
		}

		web.SetFlash(w, web.FlashNotice, "Perfil actualizado.")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
	}
}
