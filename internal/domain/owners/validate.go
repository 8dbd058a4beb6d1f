package owners

import (
	"errors"
	"regexp"
	"strings"

	"vetcare-front/internal/adapters/backend/envelope"
)

var (
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Teléfono: dígitos más + - ( ) . y espacios; nada de letras.
	phoneBadChar = regexp.MustCompile(`[^0-9+\-\s().]`)
	phoneDigit   = regexp.MustCompile(`\d`)
)

// ValidationError junta los mensajes de validación de un form.
// Se muestran inline, junto al form; nunca llegan a la red.
type ValidationError struct {
	Msgs []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Msgs, "; ")
}

// ErrorMessages aplana un error de guardado para display: la
// validación local ya viene como lista, el resto se normaliza como
// cualquier error del backend.
func ErrorMessages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Msgs
	}
	return envelope.Messages(err)
}

// Validate aplica las reglas del form de propietario.
func (in Input) Validate() error {
	var msgs []string

	if strings.TrimSpace(in.Name) == "" || len(strings.TrimSpace(in.Name)) < 2 {
		msgs = append(msgs, "Nombre mínimo 2 caracteres.")
	}
	if in.Email == "" || !emailShape.MatchString(in.Email) {
		msgs = append(msgs, "Email inválido.")
	}

	tel := strings.TrimSpace(in.Phone)
	if tel == "" {
		msgs = append(msgs, "Teléfono requerido.")
	} else {
		if phoneBadChar.MatchString(tel) {
			msgs = append(msgs, "Teléfono inválido: solo dígitos y símbolos + - ( ) . y espacios.")
		}
		if len(phoneDigit.FindAllString(tel, -1)) < 7 {
			msgs = append(msgs, "Teléfono inválido: debe tener al menos 7 dígitos.")
		}
	}

	if len(strings.TrimSpace(in.Address)) < 5 {
		msgs = append(msgs, "Dirección requerida.")
	}

	if len(msgs) > 0 {
		return &ValidationError{Msgs: msgs}
	}
	return nil
}
