package auth

import (
	"regexp"
	"strings"

	"vetcare-front/internal/ports/backend"
)

var (
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	passUpper = regexp.MustCompile(`[A-Z]`)
	passLower = regexp.MustCompile(`[a-z]`)
	passDigit = regexp.MustCompile(`\d`)
	// Set fijo de puntuación aceptada como "carácter especial".
	passSymbol = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// ValidatePassword aplica la política completa: largo 8+, una
// mayúscula, una minúscula, un número y un símbolo del set fijo.
func ValidatePassword(pass string) []string {
	var errs []string
	if len(pass) < 8 {
		errs = append(errs, "La contraseña debe tener al menos 8 caracteres.")
	}
	if !passUpper.MatchString(pass) {
		errs = append(errs, "La contraseña debe tener al menos una letra MAYÚSCULA.")
	}
	if !passLower.MatchString(pass) {
		errs = append(errs, "La contraseña debe tener al menos una letra minúscula.")
	}
	if !passDigit.MatchString(pass) {
		errs = append(errs, "La contraseña debe tener al menos un número.")
	}
	if !passSymbol.MatchString(pass) {
		errs = append(errs, "La contraseña debe tener al menos un carácter especial.")
	}
	return errs
}

// ValidateRegistration corre la validación del form de registro.
// Todo síncrono; si falla, nada llega a la red.
func ValidateRegistration(in backend.RegisterInput) []string {
	var errs []string
	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "El nombre debe tener al menos 2 caracteres.")
	}
	if in.Email == "" || !emailShape.MatchString(in.Email) {
		errs = append(errs, "Email inválido.")
	}
	if len(strings.TrimSpace(in.Phone)) < 7 {
		errs = append(errs, "Teléfono inválido (min 7 caracteres).")
	}
	errs = append(errs, ValidatePassword(in.Password)...)
	return errs
}

// ValidateAdmin es la variante del form de crear administrador:
// solo nombre, email y largo mínimo de contraseña.
func ValidateAdmin(in backend.RegisterInput) []string {
	var errs []string
	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "Nombre mínimo 2 caracteres.")
	}
	if in.Email == "" || !emailShape.MatchString(in.Email) {
		errs = append(errs, "Email inválido.")
	}
	if len(in.Password) < 8 {
		errs = append(errs, "Contraseña mínimo 8 caracteres.")
	}
	return errs
}

// ProfileForm es el form de editar perfil. Los campos de contraseña
// son opcionales pero acoplados: nueva contraseña exige la actual.
type ProfileForm struct {
	Name            string
	Email           string
	Phone           string
	CurrentPassword string
	NewPassword     string
}

func ValidateProfile(in ProfileForm) []string {
	var errs []string
	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "Nombre mínimo 2 caracteres.")
	}
	if in.Email == "" || !emailShape.MatchString(in.Email) {
		errs = append(errs, "Email inválido.")
	}
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			errs = append(errs, "Contraseña actual requerida para cambiar la contraseña.")
		}
		if len(in.NewPassword) < 8 {
			errs = append(errs, "Nueva contraseña: mínimo 8 caracteres.")
		}
	}
	return errs
}
