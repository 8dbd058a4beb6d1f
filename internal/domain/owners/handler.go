package owners

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"vetcare-front/internal/domain/listview"
	"vetcare-front/internal/domain/pets"
	"vetcare-front/internal/domain/viewstate"
	"vetcare-front/internal/session"
	"vetcare-front/internal/web"
)

type page struct {
	User    session.UserRecord
	Filter  string
	Owners  []Owner
	Total   int
	Editing *Owner

	Selected     *Owner
	SelectedPets []pets.Pet

	EditingPet *pets.Pet

	FormErrors    []string
	PetFormErrors []string
	LoadError     string
	Alert         string

	St State
}

type confirmPage struct {
	Title   string
	Message string
	Action  string
	Cancel  string
}

// RegisterRoutes monta la página de propietarios. El borrado pasa por
// una página de confirmación propia (GET muestra, POST ejecuta).
func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, views *viewstate.Store[State], rnd *web.Renderer) {
	r.Get("/propietarios", handleList(svc, views, rnd))
	r.Post("/propietarios", handleSave(svc, views, rnd))
	r.Get("/propietarios/{id}/eliminar", handleDeleteConfirm(views, rnd))
	r.Post("/propietarios/{id}/eliminar", handleDelete(svc, views))

	r.Post("/propietarios/mascotas", handleSavePet(petsSvc, views, rnd))
	r.Get("/propietarios/mascotas/{id}/eliminar", handlePetDeleteConfirm(views, rnd))
	r.Post("/propietarios/mascotas/{id}/eliminar", handleDeletePet(petsSvc, views))
}

// loadState trae el estado de la sesión, haciendo el fetch de montaje
// la primera vez (o cuando se pide refresh explícito).
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
			rnd.Render(w, http.StatusOK, "owners.html", page{
				User:      sess.User,
				LoadError: err.Error(),
			})
			return
		}

		// Filtro y selección son estado de vista: se persisten por
		// sesión para que sobrevivan los redirects del PRG.
		q := r.URL.Query()
		if vals, has := q["q"]; has {
			st.Filter = strings.TrimSpace(vals[0])
			views.Update(sess.ID, func(s *State) { s.Filter = st.Filter })
		}
		if v := q.Get("seleccionar"); v != "" {
			if id, perr := strconv.ParseInt(v, 10, 64); perr == nil {
				st.SelectedID = id
				views.Update(sess.ID, func(s *State) { s.SelectedID = id })
			}
		}

		data := page{
			User:   sess.User,
			Filter: st.Filter,
			Owners: st.Filtered(),
			Total:  len(st.Owners),
			Alert:  web.PopFlash(w, r, web.FlashAlert),
			St:     st,
		}
		if sel, ok := st.Selected(); ok {
			data.Selected = &sel
			data.SelectedPets = st.PetsOf(sel.ID)
		}
		if v := q.Get("editar"); v != "" {
			if id, perr := strconv.ParseInt(v, 10, 64); perr == nil {
				for _, o := range st.Owners {
					if o.ID == id {
						cp := o
						data.Editing = &cp
						break
					}
				}
			}
		}
		if v := q.Get("mascota"); v != "" {
			if id, perr := strconv.ParseInt(v, 10, 64); perr == nil {
				for _, p := range st.Pets {
					if p.ID == id {
						cp := p
						data.EditingPet = &cp
						break
					}
				}
			}
		}

		rnd.Render(w, http.StatusOK, "owners.html", data)
	}
}

func ownerInputFromForm(r *http.Request) Input {
	in := Input{
		Name:    r.PostFormValue("nombre"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("telefono"),
		Address: r.PostFormValue("direccion"),
	}
	in.ID, _ = strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	return in
}

func handleSave(svc *Service, views *viewstate.Store[State], rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form inválido", http.StatusBadRequest)
			return
		}
		in := ownerInputFromForm(r)

		saved, err := svc.Save(r.Context(), in)
		if err != nil {
			// Render inline con el form poblado; la lista queda como estaba.
			st, _ := views.Get(sess.ID)
			editing := Owner{ID: in.ID, Name: in.Name, Email: in.Email, Phone: in.Phone, Address: in.Address}
			data := page{
				User:       sess.User,
				Filter:     st.Filter,
				Owners:     st.Filtered(),
				Total:      len(st.Owners),
				Editing:    &editing,
				FormErrors: ErrorMessages(err),
				St:         st,
			}
			if sel, ok := st.Selected(); ok {
				data.Selected = &sel
				data.SelectedPets = st.PetsOf(sel.ID)
			}
			rnd.Render(w, http.StatusOK, "owners.html", data)
			return
		}

		// Reconciliación local: reemplazo in-place si ya estaba,
		// prepend si es nuevo. Sin refetch.
		views.Update(sess.ID, func(s *State) {
			s.Owners = listview.Reconcile(s.Owners, saved)
			s.SelectedID = saved.ID
		})
		http.Redirect(w, r, "/propietarios", http.StatusSeeOther)
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
			for _, o := range st.Owners {
				if o.ID == id {
					name = o.Name
					break
				}
			}
		}
		rnd.Render(w, http.StatusOK, "confirm.html", confirmPage{
			Title:   "Eliminar propietario",
			Message: "¿Eliminar a " + name + "? También se eliminarán sus mascotas.",
			Action:  "/propietarios/" + strconv.FormatInt(id, 10) + "/eliminar",
			Cancel:  "/propietarios",
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
			http.Redirect(w, r, "/propietarios", http.StatusSeeOther)
			return
		}

		// Cascade local en una sola actualización: el propietario y
		// sus mascotas salen juntos, sin estado intermedio visible.
		views.Update(sess.ID, func(s *State) {
			s.Owners = listview.RemoveByID(s.Owners, id)
			s.Pets = listview.RemoveWhere(s.Pets, func(p pets.Pet) bool { return p.OwnerKey() == id })
			if s.SelectedID == id {
				s.SelectedID = 0
				if len(s.Owners) > 0 {
					s.SelectedID = s.Owners[0].ID
				}
			}
		})
		http.Redirect(w, r, "/propietarios", http.StatusSeeOther)
	}
}

func petInputFromForm(r *http.Request) pets.Input {
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
	in.ID, _ = strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	in.OwnerID, _ = strconv.ParseInt(r.PostFormValue("owner_id"), 10, 64)
	return in
}

func handleSavePet(petsSvc *pets.Service, views *viewstate.Store[State], rnd *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form inválido", http.StatusBadRequest)
			return
		}
		in := petInputFromForm(r)

		saved, err := petsSvc.Save(r.Context(), in)
		if err != nil {
			st, _ := views.Get(sess.ID)
			data := page{
				User:          sess.User,
				Filter:        st.Filter,
				Owners:        st.Filtered(),
				Total:         len(st.Owners),
				PetFormErrors: pets.ErrorMessages(err),
				St:            st,
			}
			if sel, ok := st.Selected(); ok {
				data.Selected = &sel
				data.SelectedPets = st.PetsOf(sel.ID)
			}
			rnd.Render(w, http.StatusOK, "owners.html", data)
			return
		}

		views.Update(sess.ID, func(s *State) {
			s.Pets = listview.Reconcile(s.Pets, saved)
		})
		http.Redirect(w, r, "/propietarios?seleccionar="+strconv.FormatInt(saved.OwnerKey(), 10), http.StatusSeeOther)
	}
}

func handlePetDeleteConfirm(views *viewstate.Store[State], rnd *web.Renderer) http.HandlerFunc {
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
			Action:  "/propietarios/mascotas/" + strconv.FormatInt(id, 10) + "/eliminar",
			Cancel:  "/propietarios",
		})
	}
}

func handleDeletePet(petsSvc *pets.Service, views *viewstate.Store[State]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, _ := session.FromContext(r.Context())
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if err := petsSvc.Delete(r.Context(), id); err != nil {
			web.SetFlash(w, web.FlashAlert, strings.Join(pets.ErrorMessages(err), " "))
			http.Redirect(w, r, "/propietarios", http.StatusSeeOther)
			return
		}

		views.Update(sess.ID, func(s *State) {
			s.Pets = listview.RemoveByID(s.Pets, id)
		})
		http.Redirect(w, r, "/propietarios", http.StatusSeeOther)
	}
}
