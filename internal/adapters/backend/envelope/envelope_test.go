package envelope

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"vetcare-front/internal/platform/httpclient"
)

func TestToken_Orders(t *testing.T) {
	laravel := []string{FieldToken, FieldAccessToken, FieldDataToken}
	express := []string{FieldToken, FieldDataToken, FieldAccessToken}

	cases := []struct {
		name  string
		body  string
		order []string
		want  string
	}{
		{"token plano gana siempre", `{"token":"t1","access_token":"t2","data":{"token":"t3"}}`, laravel, "t1"},
		{"laravel prefiere access_token sobre data.token", `{"access_token":"t2","data":{"token":"t3"}}`, laravel, "t2"},
		{"express prefiere data.token sobre access_token", `{"access_token":"t2","data":{"token":"t3"}}`, express, "t3"},
		{"access_token anidado bajo data no cuenta", `{"data":{"access_token":"t4"}}`, laravel, ""},
		{"data.token solo cuenta en su propio campo", `{"data":{"access_token":"t4","token":"t5"}}`, laravel, "t5"},
		{"sin token en ningún campo", `{"message":"ok","data":{"user":{"id":1}}}`, laravel, ""},
		{"token con espacios se recorta", `{"token":"  t5  "}`, laravel, "t5"},
		{"body no-JSON", `no soy json`, laravel, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Token(json.RawMessage(tc.body), tc.order)
			if got != tc.want {
				t.Fatalf("Token() = %q, quería %q", got, tc.want)
			}
		})
	}
}

func TestLoginUser_Prioridad(t *testing.T) {
	// data.user gana sobre data y sobre user.
	raw := json.RawMessage(`{
		"data": {"user": {"id": 7, "nombre": "Ana", "email": "ana@x.com", "role": "admin"}},
		"user": {"id": 9, "nombre": "Otro", "email": "otro@x.com"}
	}`)
	u, ok := LoginUser(raw)
	if !ok {
		t.Fatal("esperaba user embebido")
	}
	if u.ID != 7 || u.Name != "Ana" || u.Email != "ana@x.com" {
		t.Fatalf("user inesperado: %+v", u)
	}

	// user top-level como último recurso.
	raw = json.RawMessage(`{"user": {"id": 3, "nombre": "Luz", "email": "luz@x.com"}}`)
	u, ok = LoginUser(raw)
	if !ok || u.ID != 3 {
		t.Fatalf("esperaba user top-level, got ok=%v u=%+v", ok, u)
	}

	// sin user en ningún lado.
	if _, ok := LoginUser(json.RawMessage(`{"token":"t"}`)); ok {
		// data ausente y user ausente: no hay perfil embebido
		t.Fatal("no esperaba user")
	}
}

func TestProfileUser(t *testing.T) {
	u, ok := ProfileUser(json.RawMessage(`{"data": {"id": 1, "nombre": "Ana", "email": "a@x"}}`))
	if !ok || u.Name != "Ana" {
		t.Fatalf("esperaba user bajo data, got ok=%v u=%+v", ok, u)
	}

	u, ok = ProfileUser(json.RawMessage(`{"id": 2, "nombre": "Bet", "email": "b@x"}`))
	if !ok || u.ID != 2 {
		t.Fatalf("esperaba body pelado como user, got ok=%v u=%+v", ok, u)
	}
}

func TestList_SobreYPelado(t *testing.T) {
	type row struct {
		ID int64 `json:"id"`
	}

	got, err := List[row](json.RawMessage(`{"data":[{"id":1},{"id":2}]}`))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if want := []row{{1}, {2}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("List bajo data = %+v", got)
	}

	got, err = List[row](json.RawMessage(`[{"id":3}]`))
	if err != nil || len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("List pelada = %+v err=%v", got, err)
	}
}

func TestTotal(t *testing.T) {
	if n, ok := Total(json.RawMessage(`{"data":[],"meta":{"total":42}}`)); !ok || n != 42 {
		t.Fatalf("Total = %d, %v", n, ok)
	}
	if _, ok := Total(json.RawMessage(`{"data":[]}`)); ok {
		t.Fatal("no esperaba total sin meta")
	}
}

func TestMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want []string
	}{
		{
			"error no-HTTP pasa derecho",
			errors.New("Modo desconocido"),
			[]string{"Modo desconocido"},
		},
		{
			"array estilo express-validator",
			&httpclient.HTTPError{StatusCode: 422, Body: `{"errors":[{"param":"email","msg":"Email inválido"},{"param":"password","msg":"Muy corta"}]}`},
			[]string{"email: Email inválido", "password: Muy corta"},
		},
		{
			"array con field/message",
			&httpclient.HTTPError{StatusCode: 422, Body: `{"errors":[{"field":"nombre","message":"requerido"}]}`},
			[]string{"nombre: requerido"},
		},
		{
			"message suelto",
			&httpclient.HTTPError{StatusCode: 401, Body: `{"message":"Credenciales inválidas"}`},
			[]string{"Credenciales inválidas"},
		},
		{
			"body no-JSON se muestra tal cual",
			&httpclient.HTTPError{StatusCode: 500, Body: `boom`},
			[]string{"boom"},
		},
		{
			"sin nada usable",
			&httpclient.HTTPError{StatusCode: 500, Body: `{}`},
			[]string{"Error desconocido"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Messages(tc.err)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Messages = %v, quería %v", got, tc.want)
			}
		})
	}
}

func TestIsAdminGated(t *testing.T) {
	if !IsAdminGated(&httpclient.HTTPError{StatusCode: 403, Body: `{}`}) {
		t.Fatal("403 debe gatear")
	}
	if !IsAdminGated(&httpclient.HTTPError{StatusCode: 400, Body: `{"message":"Solo ADMIN puede registrar"}`}) {
		t.Fatal("mensaje con admin debe gatear (case-insensitive)")
	}
	if IsAdminGated(&httpclient.HTTPError{StatusCode: 400, Body: `{"message":"Email duplicado"}`}) {
		t.Fatal("error común no debe gatear")
	}
	if IsAdminGated(errors.New("admin")) {
		t.Fatal("solo errores HTTP gatean")
	}
}
