package auth

import (
	"context"
	"errors"
	"sync/atomic"

	"vetcare-front/internal/adapters/backend/envelope"
	"vetcare-front/internal/platform/logger"
	"vetcare-front/internal/ports/backend"
	"vetcare-front/internal/session"
)

// Mode selecciona la estrategia de login. Las tres son excluyentes.
type Mode string

const (
	ModeLocal    Mode = "local"
	ModeProfesor Mode = "profesor"
	ModeExpress  Mode = "express"
)

var (
	ErrUnknownMode    = errors.New("Modo desconocido")
	ErrDemoCredential = errors.New("Credenciales demo, inválidas para el modo Local.")
)

// placeholderToken es el "token" del modo local. No es credencial
// real: en ese modo no hay llamadas de red que lo usen.
const placeholderToken = "local"

type Service struct {
	primary   backend.PrimaryAuth
	secondary backend.SecondaryAuth
	sessions  session.Store

	demoEmail    string
	demoPassword string

	log logger.Logger

	// Si el backend rechaza el registro (403 / mensaje con "admin"),
	// el registro queda oculto por el resto de la vida del proceso.
	// Flag explícito, no se re-infiere del texto cada vez.
	regHidden atomic.Bool
}

type Options struct {
	Primary   backend.PrimaryAuth
	Secondary backend.SecondaryAuth
	Sessions  session.Store

	DemoEmail    string
	DemoPassword string

	Log logger.Logger
}

func NewService(opts Options) *Service {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		primary:      opts.Primary,
		secondary:    opts.Secondary,
		sessions:     opts.Sessions,
		demoEmail:    opts.DemoEmail,
		demoPassword: opts.DemoPassword,
		log:          log,
	}
}

// Login produce una sesión poblada o un error para mostrar; nunca
// deja una sesión a medias (si no hay token extraíble, el store queda
// sin tocar).
func (s *Service) Login(ctx context.Context, mode Mode, email, password string) (session.Session, error) {
	switch mode {
	case ModeLocal:
		return s.loginLocal(email, password)
	case ModeProfesor:
		return s.loginProfesor(ctx, email, password)
	case ModeExpress:
		return s.loginExpress(ctx, email, password)
	default:
		return session.Session{}, ErrUnknownMode
	}
}

// loginLocal acepta exactamente el par demo configurado. Sin red.
func (s *Service) loginLocal(email, password string) (session.Session, error) {
	if email != s.demoEmail || password != s.demoPassword {
		return session.Session{}, ErrDemoCredential
	}

	user := session.UserRecord{
		ID:    0,
		Name:  "Usuario DEMO",
		Email: email,
		Role:  session.RoleGuest,
	}
	return s.sessions.Create(placeholderToken, user, session.SourceLocal)
}

func (s *Service) loginProfesor(ctx context.Context, email, password string) (session.Session, error) {
	res, err := s.primary.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, err
	}

	// El perfil se pide con el token recién emitido; si falla, se
	// arma un perfil mínimo a partir del email.
	ctx = session.WithToken(ctx, res.Token)
	user, perr := s.primary.Profile(ctx)
	if perr != nil {
		s.log.Warn("perfil profesor no disponible, usando fallback", map[string]any{"error": perr.Error()})
		user = session.UserRecord{Name: email, Email: email, Role: session.RoleUser}
	}

	// Las cuentas de este backend nunca se tratan como admin acá.
	if user.Role == "" || user.Role == session.RoleAdmin {
		user.Role = session.RoleUser
	}

	return s.sessions.Create(res.Token, user, session.SourceProfesor)
}

func (s *Service) loginExpress(ctx context.Context, email, password string) (session.Session, error) {
	res, err := s.secondary.Login(ctx, email, password)
	if err != nil {
		return session.Session{}, err
	}

	ctx = session.WithToken(ctx, res.Token)

	var user session.UserRecord
	if res.User != nil {
		user = *res.User
	}
	// Si el login no trajo user completo, pedir profile.
	if res.User == nil || user.Email == "" {
		u, perr := s.secondary.Profile(ctx)
		if perr != nil {
			return session.Session{}, perr
		}
		user = u
	}

	// El backend manda el role; default user solo si no vino.
	// Este es el único origen del que se honra un admin.
	if user.Role == "" {
		user.Role = session.RoleUser
	}

	return s.sessions.Create(res.Token, user, session.SourceExpress)
}

// RegisterOutcome es el resultado del registro público.
type RegisterOutcome struct {
	// Session no nil: el backend devolvió token y quedamos logueados.
	Session *session.Session
	// Notice: registro aceptado pero sin token (cuenta pendiente).
	Notice string
	// Errors: validación local o errores del backend, para display.
	Errors []string
}

// Register corre la validación local y después intenta el alta contra
// el backend secundario. Un 403 (o mensaje con "admin") deshabilita el
// registro para el resto de la sesión del proceso.
func (s *Service) Register(ctx context.Context, in backend.RegisterInput) RegisterOutcome {
	if errs := ValidateRegistration(in); len(errs) > 0 {
		return RegisterOutcome{Errors: errs}
	}

	res, err := s.secondary.Register(ctx, in)
	if err != nil {
		if envelope.IsAdminGated(err) {
			s.regHidden.Store(true)
			return RegisterOutcome{Errors: []string{"Registro restringido: solo administradores pueden crear cuentas."}}
		}
		return RegisterOutcome{Errors: envelope.Messages(err)}
	}

	if res.Token == "" {
		return RegisterOutcome{Notice: "Registro creado. Pide al administrador que active la cuenta o inicia sesión si recibiste credenciales."}
	}

	user := session.UserRecord{Name: in.Name, Email: in.Email}
	if res.User != nil {
		user = *res.User
	}
	// Doble seguridad client-side: el alta pública nunca entrega admin.
	user.Role = session.RoleUser

	sess, cerr := s.sessions.Create(res.Token, user, session.SourceExpress)
	if cerr != nil {
		return RegisterOutcome{Errors: []string{cerr.Error()}}
	}
	return RegisterOutcome{Session: &sess}
}

// RegistrationHidden reporta si el alta pública quedó deshabilitada.
func (s *Service) RegistrationHidden() bool {
	return s.regHidden.Load()
}

// CreateAdmin da de alta una cuenta admin vía el backend secundario.
// Solo la invoca la UI ya gateada por role admin; el backend vuelve a
// validar por su cuenta.
func (s *Service) CreateAdmin(ctx context.Context, in backend.RegisterInput) (session.UserRecord, []string) {
	if errs := ValidateAdmin(in); len(errs) > 0 {
		return session.UserRecord{}, errs
	}

	u, err := s.secondary.RegisterAdmin(ctx, in)
	if err != nil {
		return session.UserRecord{}, envelope.Messages(err)
	}
	return u, nil
}

// UpdateProfile valida, manda el update al backend secundario y
// refresca el perfil guardado en la sesión.
func (s *Service) UpdateProfile(ctx context.Context, sessionID string, in ProfileForm) (session.UserRecord, []string) {
	if errs := ValidateProfile(in); len(errs) > 0 {
		return session.UserRecord{}, errs
	}

	upd := backend.ProfileUpdate{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	// Campos acoplados: si no se cambia contraseña, van AUSENTES
	// (no string vacío) y el backend no la toca.
	if in.NewPassword != "" {
		cur, nw := in.CurrentPassword, in.NewPassword
		upd.CurrentPassword = &cur
		upd.NewPassword = &nw
	}

	u, err := s.secondary.UpdateProfile(ctx, upd)
	if err != nil {
		return session.UserRecord{}, envelope.Messages(err)
	}

	if err := s.sessions.UpdateUser(sessionID, u); err != nil {
		s.log.Warn("no se pudo refrescar el perfil en la sesión", map[string]any{"error": err.Error()})
	}
	return u, nil
}

// Logout limpia token, user y source de una sola vez.
func (s *Service) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}
