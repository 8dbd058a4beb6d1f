package owners

import (
	"errors"
	"strings"
	"testing"
)

func validInput() Input {
	return Input{
		Name:    "Carlos Rojas",
		Email:   "carlos@correo.com",
		Phone:   "+506 8888-9999",
		Address: "San José, Barrio Escalante",
	}
}

func TestValidate_TelefonosInternacionales(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"+506 8888-9999", true},
		{"(506) 8888.9999", true},
		{"88889999", true},
		{"abc-1234", false}, // letras
		{"12345", false},    // menos de 7 dígitos
		{"", false},
	}

	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			in := validInput()
			in.Phone = tc.phone
			err := in.Validate()
			if tc.ok && err != nil {
				t.Fatalf("teléfono %q rechazado: %v", tc.phone, err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("teléfono %q aceptado", tc.phone)
			}
		})
	}
}

func TestValidate_AcumulaMensajes(t *testing.T) {
	in := Input{Name: "X", Email: "mal", Phone: "abc", Address: ""}
	err := in.Validate()

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("esperaba ValidationError, got %v", err)
	}
	// nombre, email, dos de teléfono (charset y dígitos) y dirección
	if len(ve.Msgs) != 5 {
		t.Fatalf("esperaba 5 mensajes, got %d: %v", len(ve.Msgs), ve.Msgs)
	}
}

func TestErrorMessages(t *testing.T) {
	err := Input{}.Validate()
	msgs := ErrorMessages(err)
	if len(msgs) == 0 || !strings.Contains(msgs[0], "Nombre") {
		t.Fatalf("mensajes de validación no aplanados: %v", msgs)
	}

	msgs = ErrorMessages(errors.New("caída de red"))
	if len(msgs) != 1 || msgs[0] != "caída de red" {
		t.Fatalf("error genérico: %v", msgs)
	}
}
