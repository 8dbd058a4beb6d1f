package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vetcare-front/internal/platform/httpclient"
	"vetcare-front/internal/ports/backend"
	"vetcare-front/internal/session"
)

// fakePrimary y fakeSecondary cuentan llamadas además de responder,
// para poder afirmar que el modo local nunca toca la red.
type fakePrimary struct {
	loginRes   backend.LoginResult
	loginErr   error
	profileRes session.UserRecord
	profileErr error

	calls int
}

func (f *fakePrimary) Login(_ context.Context, _, _ string) (backend.LoginResult, error) {
	f.calls++
	return f.loginRes, f.loginErr
}

func (f *fakePrimary) Profile(_ context.Context) (session.UserRecord, error) {
	f.calls++
	return f.profileRes, f.profileErr
}

type fakeSecondary struct {
	fakePrimary

	registerRes backend.LoginResult
	registerErr error
	adminRes    session.UserRecord
	adminErr    error
	updateRes   session.UserRecord
	updateErr   error
}

func (f *fakeSecondary) Register(_ context.Context, _ backend.RegisterInput) (backend.LoginResult, error) {
	f.calls++
	return f.registerRes, f.registerErr
}

func (f *fakeSecondary) RegisterAdmin(_ context.Context, _ backend.RegisterInput) (session.UserRecord, error) {
	f.calls++
	return f.adminRes, f.adminErr
}

func (f *fakeSecondary) UpdateProfile(_ context.Context, _ backend.ProfileUpdate) (session.UserRecord, error) {
	f.calls++
	return f.updateRes, f.updateErr
}

func newTestService(primary *fakePrimary, secondary *fakeSecondary) (*Service, session.Store) {
	store := session.NewMemoryStore()
	svc := NewService(Options{
		Primary:      primary,
		Secondary:    secondary,
		Sessions:     store,
		DemoEmail:    "gmail@ejemplo.com",
		DemoPassword: "1234",
	})
	return svc, store
}

func sessionCount(t *testing.T, store session.Store, id string) bool {
	t.Helper()
	_, ok := store.Get(id)
	return ok
}

func TestLogin_LocalSinRed(t *testing.T) {
	primary := &fakePrimary{loginErr: errors.New("no debería llamarse")}
	secondary := &fakeSecondary{}
	svc, store := newTestService(primary, secondary)

	sess, err := svc.Login(context.Background(), ModeLocal, "gmail@ejemplo.com", "1234")
	if err != nil {
		t.Fatalf("login local: %v", err)
	}

	if primary.calls != 0 || secondary.calls != 0 {
		t.Fatalf("el modo local no debe tocar la red: primary=%d secondary=%d", primary.calls, secondary.calls)
	}
	if sess.Source != session.SourceLocal || sess.Token != "local" {
		t.Fatalf("sesión local inesperada: %+v", sess)
	}
	if sess.User.Role != session.RoleGuest || sess.User.Name != "Usuario DEMO" {
		t.Fatalf("perfil demo inesperado: %+v", sess.User)
	}
	if !sessionCount(t, store, sess.ID) {
		t.Fatal("la sesión debe quedar en el store")
	}
}

func TestLogin_LocalRechazaOtroPar(t *testing.T) {
	svc, _ := newTestService(&fakePrimary{}, &fakeSecondary{})

	_, err := svc.Login(context.Background(), ModeLocal, "otro@x.com", "1234")
	if !errors.Is(err, ErrDemoCredential) {
		t.Fatalf("esperaba ErrDemoCredential, got %v", err)
	}
}

func TestLogin_ProfesorNuncaAdmin(t *testing.T) {
	primary := &fakePrimary{
		loginRes:   backend.LoginResult{Token: "tok-p"},
		profileRes: session.UserRecord{ID: 5, Name: "Prof", Email: "p@x.com", Role: session.RoleAdmin},
	}
	svc, _ := newTestService(primary, &fakeSecondary{})

	sess, err := svc.Login(context.Background(), ModeProfesor, "p@x.com", "secret")
	if err != nil {
		t.Fatalf("login profesor: %v", err)
	}
	if sess.User.Role != session.RoleUser {
		t.Fatalf("el backend profesor nunca otorga admin, got %q", sess.User.Role)
	}
	if sess.Source != session.SourceProfesor {
		t.Fatalf("source: %q", sess.Source)
	}
}

func TestLogin_ProfesorPerfilCaidoUsaFallback(t *testing.T) {
	primary := &fakePrimary{
		loginRes:   backend.LoginResult{Token: "tok-p"},
		profileErr: &httpclient.HTTPError{StatusCode: 500},
	}
	svc, _ := newTestService(primary, &fakeSecondary{})

	sess, err := svc.Login(context.Background(), ModeProfesor, "p@x.com", "secret")
	if err != nil {
		t.Fatalf("el perfil caído no debe tumbar el login: %v", err)
	}
	if sess.User.Name != "p@x.com" || sess.User.Email != "p@x.com" || sess.User.Role != session.RoleUser {
		t.Fatalf("fallback inesperado: %+v", sess.User)
	}
}

func TestLogin_ExpressHonraAdmin(t *testing.T) {
	secondary := &fakeSecondary{}
	secondary.loginRes = backend.LoginResult{
		Token: "tok-e",
		User:  &session.UserRecord{ID: 1, Name: "Root", Email: "root@x.com", Role: session.RoleAdmin},
	}
	svc, _ := newTestService(&fakePrimary{}, secondary)

	sess, err := svc.Login(context.Background(), ModeExpress, "root@x.com", "secret")
	if err != nil {
		t.Fatalf("login express: %v", err)
	}
	if !sess.IsAdmin() {
		t.Fatalf("express es el único origen que entrega admin: %+v", sess.User)
	}
}

func TestLogin_ExpressSinUserEmbebidoPideProfile(t *testing.T) {
	secondary := &fakeSecondary{}
	secondary.loginRes = backend.LoginResult{Token: "tok-e"}
	secondary.profileRes = session.UserRecord{ID: 2, Name: "Bea", Email: "bea@x.com"}
	svc, _ := newTestService(&fakePrimary{}, secondary)

	sess, err := svc.Login(context.Background(), ModeExpress, "bea@x.com", "secret")
	if err != nil {
		t.Fatalf("login express: %v", err)
	}
	if sess.User.Name != "Bea" || sess.User.Role != session.RoleUser {
		t.Fatalf("perfil esperado con role default user: %+v", sess.User)
	}
}

func TestLogin_SinTokenNoTocaElStore(t *testing.T) {
	primary := &fakePrimary{loginErr: backend.ErrTokenNotFound}
	svc, store := newTestService(primary, &fakeSecondary{})

	_, err := svc.Login(context.Background(), ModeProfesor, "p@x.com", "secret")
	if !errors.Is(err, backend.ErrTokenNotFound) {
		t.Fatalf("esperaba ErrTokenNotFound, got %v", err)
	}

	// el store sigue vacío: nada de sesiones a medias
	if sessionCount(t, store, "") {
		t.Fatal("no debería existir sesión alguna")
	}
	sess, err := svc.Login(context.Background(), ModeLocal, "gmail@ejemplo.com", "1234")
	if err != nil {
		t.Fatal(err)
	}
	if sess.User.Role != session.RoleGuest {
		t.Fatal("el fallo previo no debe dejar residuos")
	}
}

func TestLogin_ModoDesconocido(t *testing.T) {
	svc, _ := newTestService(&fakePrimary{}, &fakeSecondary{})
	if _, err := svc.Login(context.Background(), Mode("gin"), "a@x.com", "p"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("esperaba ErrUnknownMode, got %v", err)
	}
}

func TestRegister_403OcultaElRegistro(t *testing.T) {
	secondary := &fakeSecondary{registerErr: &httpclient.HTTPError{StatusCode: 403, Body: `{}`}}
	svc, _ := newTestService(&fakePrimary{}, secondary)

	if svc.RegistrationHidden() {
		t.Fatal("el registro empieza visible")
	}

	out := svc.Register(context.Background(), backend.RegisterInput{
		Name: "Ana", Email: "ana@x.com", Phone: "8888-9999", Password: "Abcdef1!",
	})
	if len(out.Errors) == 0 || !strings.Contains(out.Errors[0], "administradores") {
		t.Fatalf("esperaba mensaje de registro restringido: %v", out.Errors)
	}
	if !svc.RegistrationHidden() {
		t.Fatal("tras el 403 el registro queda oculto")
	}
}

func TestRegister_SinTokenDejaAviso(t *testing.T) {
	secondary := &fakeSecondary{registerRes: backend.LoginResult{}}
	svc, _ := newTestService(&fakePrimary{}, secondary)

	out := svc.Register(context.Background(), backend.RegisterInput{
		Name: "Ana", Email: "ana@x.com", Phone: "8888-9999", Password: "Abcdef1!",
	})
	if out.Session != nil {
		t.Fatal("sin token no hay sesión")
	}
	if out.Notice == "" {
		t.Fatal("esperaba aviso de cuenta pendiente")
	}
}

func TestRegister_ConTokenLogueaComoUser(t *testing.T) {
	secondary := &fakeSecondary{registerRes: backend.LoginResult{
		Token: "tok-r",
		User:  &session.UserRecord{ID: 4, Name: "Ana", Email: "ana@x.com", Role: session.RoleAdmin},
	}}
	svc, store := newTestService(&fakePrimary{}, secondary)

	out := svc.Register(context.Background(), backend.RegisterInput{
		Name: "Ana", Email: "ana@x.com", Phone: "8888-9999", Password: "Abcdef1!",
	})
	if out.Session == nil {
		t.Fatalf("esperaba sesión, got %+v", out)
	}
	// el alta pública jamás entrega admin, diga lo que diga el backend
	if out.Session.User.Role != session.RoleUser {
		t.Fatalf("role: %q", out.Session.User.Role)
	}
	if !sessionCount(t, store, out.Session.ID) {
		t.Fatal("la sesión debe quedar en el store")
	}
}

func TestRegister_ValidacionLocalCortaAntesDeLaRed(t *testing.T) {
	secondary := &fakeSecondary{registerErr: errors.New("no debería llamarse")}
	svc, _ := newTestService(&fakePrimary{}, secondary)

	out := svc.Register(context.Background(), backend.RegisterInput{Name: "A", Email: "mal", Phone: "1", Password: "corta"})
	if len(out.Errors) == 0 {
		t.Fatal("esperaba errores de validación")
	}
	if secondary.calls != 0 {
		t.Fatalf("la validación local no debe llegar a la red: %d llamadas", secondary.calls)
	}
}

func TestUpdateProfile_PasswordAusenteONada(t *testing.T) {
	secondary := &fakeSecondary{updateRes: session.UserRecord{ID: 1, Name: "Ana B", Email: "ana@x.com", Role: session.RoleUser}}
	svc, store := newTestService(&fakePrimary{}, secondary)

	sess, err := store.Create("tok", session.UserRecord{ID: 1, Name: "Ana", Email: "ana@x.com", Role: session.RoleUser}, session.SourceExpress)
	if err != nil {
		t.Fatal(err)
	}

	u, errs := svc.UpdateProfile(context.Background(), sess.ID, ProfileForm{Name: "Ana B", Email: "ana@x.com"})
	if len(errs) > 0 {
		t.Fatalf("update: %v", errs)
	}
	if u.Name != "Ana B" {
		t.Fatalf("perfil devuelto: %+v", u)
	}

	got, _ := store.Get(sess.ID)
	if got.User.Name != "Ana B" {
		t.Fatalf("la sesión debe refrescarse: %+v", got.User)
	}
}
