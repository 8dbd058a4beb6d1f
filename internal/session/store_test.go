package session

import (
	"context"
	"testing"
)

func TestStore_Lifecycle(t *testing.T) {
	s := NewMemoryStore()

	sess, err := s.Create("tok-1", UserRecord{ID: 1, Name: "Ana", Email: "ana@x.com", Role: RoleUser}, SourceExpress)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" || sess.Token != "tok-1" || sess.Source != SourceExpress {
		t.Fatalf("sesión incompleta: %+v", sess)
	}

	got, ok := s.Get(sess.ID)
	if !ok || got.User.Name != "Ana" {
		t.Fatalf("Get: %+v ok=%v", got, ok)
	}

	if err := s.UpdateUser(sess.ID, UserRecord{ID: 1, Name: "Ana María", Email: "ana@x.com", Role: RoleUser}); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	got, _ = s.Get(sess.ID)
	if got.User.Name != "Ana María" {
		t.Fatalf("perfil no refrescado: %+v", got.User)
	}
	if got.Token != "tok-1" || got.Source != SourceExpress {
		t.Fatal("UpdateUser no debe tocar token ni source")
	}

	s.Delete(sess.ID)
	if _, ok := s.Get(sess.ID); ok {
		t.Fatal("la sesión debe desaparecer entera tras Delete")
	}
}

func TestStore_TokenYSourceAtomicos(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.Create("", UserRecord{}, SourceLocal); err == nil {
		t.Fatal("sin token no hay sesión")
	}
	if _, err := s.Create("tok", UserRecord{}, ""); err == nil {
		t.Fatal("sin source no hay sesión")
	}
}

func TestStore_UpdateUserInexistente(t *testing.T) {
	s := NewMemoryStore()
	if err := s.UpdateUser("nope", UserRecord{}); err == nil {
		t.Fatal("esperaba error para sesión inexistente")
	}
}

func TestTokenFromContext_Prioridad(t *testing.T) {
	ctx := NewContext(context.Background(), Session{ID: "s1", Token: "de-sesion"})

	if got := TokenFromContext(ctx); got != "de-sesion" {
		t.Fatalf("token de sesión: %q", got)
	}
	if got := TokenFromContext(WithToken(ctx, "explicito")); got != "explicito" {
		t.Fatalf("el override explícito tiene prioridad: %q", got)
	}
	if got := TokenFromContext(context.Background()); got != "" {
		t.Fatalf("sin sesión ni override: %q", got)
	}
}
