package pets

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"vetcare-front/internal/domain/listview"
	"vetcare-front/internal/domain/viewstate"
	"vetcare-front/internal/session"
	"vetcare-front/internal/web"
)

type page struct {
	User    session.UserRecord
	Query   string
	Species string

	Pets        []Pet
	Total       int
	SpeciesList []string
	Owners      []OwnerOption
	Editing     *Pet

	FormErrors []string
	LoadError  string
	Alert      string

	St State
}

type confirmPage struct {
	Title   string
	Message string
	Action  string
	Cancel  string
}

// RegisterRoutes monta la página de mascotas.
func RegisterRoutes(r chi.Router, svc *Service, views *viewstate.Store[State], rnd *web.Renderer) {
	r.Get("/mascotas", handleList(svc, views, rnd))
	r.Post("/mascotas", handleSave(svc, views, rnd))
	r.Get("/mascotas/{id}/eliminar", handleDeleteConfirm(views, rnd))
	r.Post("/mascotas/{id}/eliminar", handleDelete(svc, views))
}

func loadState(r *http.Request, svc *Service, views *viewstate.Store[State]) (State, error) {
	sess, _ := session.FromContext(r.Context())

	st, ok := views.Get(sess.ID)
	if ok && st.Loaded && r.URL.Query().Get("refresh") == "" {
		return st, nil
	}

	st, err := svc.LoadAll(r.Context())
	if err != nil {
		return State{}, err
	}
	views.Set(sess.ID, st)
	return st, nil
}

func handleList(svc *Service, views *viewstate.Store[State], rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())

		st, err := loadState(r, svc, views)
		if err != nil {
			rnd.Render(w, http.StatusOK, "pets.html", page{
				User:      sess.User,
				LoadError: err.Error(),
			})
			return
		}

		q := r.URL.Query()
		if vals, has := q["q"]; has {
			st.Query = strings.TrimSpace(vals[0])
			views.Update(sess.ID, func(s *State) { s.Query = st.Query })
		}
		if vals, has := q["especie"]; has {
			st.Species = vals[0]
			views.Update(sess.ID, func(s *State) { s.Species = st.Species })
		}

		data := page{
			User:        sess.User,
			Query:       st.Query,
			Species:     st.Species,
			Pets:        st.Filtered(),
			Total:       len(st.Pets),
			SpeciesList: st.SpeciesList(),
			Owners:      st.Owners,
			Alert:       web.PopFlash(w, r, web.FlashAlert),
			St:          st,
		}
		if v := q.Get("editar"); v != "" {
			if id, perr := strconv.ParseInt(v, 10, 64); perr == nil {
				for _, p := range st.Pets {
					if p.ID == id {
						cp := p
						data.Editing = &cp
						break
					}
				}
			}
		}

		rnd.Render(w, http.StatusOK, "pets.html", data)
	}
}

func inputFromForm(r *http.Request) Input {
	in := Input{
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
	in.ID, _ = strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	in.OwnerID, _ = strconv.ParseInt(r.PostFormValue("owner_id"), 10, 64)
	return in
}

func handleSave(svc *Service, views *viewstate.Store[State], rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form inválido", http.StatusBadRequest)
			return
		}
		in := inputFromForm(r)

		saved, err := svc.Save(r.Context(), in)
		if err != nil {
			st, _ := views.Get(sess.ID)
			editing := Pet{ID: in.ID, Name: in.Name, Species: in.Species, Breed: in.Breed, Age: in.Age, History: in.History, OwnerID: in.OwnerID}
			rnd.Render(w, http.StatusOK, "pets.html", page{
				User:        sess.User,
				Query:       st.Query,
				Species:     st.Species,
				Pets:        st.Filtered(),
				Total:       len(st.Pets),
				SpeciesList: st.SpeciesList(),
				Owners:      st.Owners,
				Editing:     &editing,
				FormErrors:  ErrorMessages(err),
				St:          st,
			})
			return
		}

		views.Update(sess.ID, func(s *State) {
			s.Pets = listview.Reconcile(s.Pets, saved)
		})
		http.Redirect(w, r, "/mascotas", http.StatusSeeOther)
	}
}

func handleDeleteConfirm(views *viewstate.Store[State], rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		name := ""
		if st, ok := views.Get(sess.ID); ok {
			for _, p := range st.Pets {
				if p.ID == id {
					name = p.Name
					break
				}
			}
		}
		rnd.Render(w, http.StatusOK, "confirm.html", confirmPage{
			Title:   "Eliminar mascota",
			Message: "¿Eliminar a " + name + "?",
			Action:  "/mascotas/" + strconv.FormatInt(id, 10) + "/eliminar",
			Cancel:  "/mascotas",
		})
	}
}

func handleDelete(svc *Service, views *viewstate.Store[State]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			web.SetFlash(w, web.FlashAlert, strings.Join(ErrorMessages(err), " "))
			http.Redirect(w, r, "/mascotas", http.StatusSeeOther)
			return
		}

		views.Update(sess.ID, func(s *State) {
			s.Pets = listview.RemoveByID(s.Pets, id)
		})
		http.Redirect(w, r, "/mascotas", http.StatusSeeOther)
	}
}
