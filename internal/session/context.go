package session

import "context"

type ctxKey int

const (
	sessionKey ctxKey = iota
	tokenKey
)

// NewContext inyecta la sesión activa en el contexto del request.
func NewContext(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext recupera la sesión del contexto, si hay.
func FromContext(ctx context.Context) (Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

// WithToken fija un token explícito que tiene prioridad sobre el de
// la sesión. Se usa durante el login: el fetch de perfil necesita el
// token recién emitido antes de que la sesión exista.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext resuelve el bearer token para un request saliente:
// override explícito primero, después el de la sesión activa.
func TokenFromContext(ctx context.Context) string {
	if v := ctx.Value(tokenKey); v != nil {
		if tok, ok := v.(string); ok && tok != "" {
			return tok
		}
	}
	if sess, ok := FromContext(ctx); ok {
		return sess.Token
	}
	return ""
}
