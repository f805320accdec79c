// Package validation mapea errores de go-playground/validator a mensajes por
// campo. La validación ocurre solo al enviar el formulario; los campos
// numéricos ilegibles durante la edición nunca pasan por aquí.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/acculer/ledger-pro/internal/application/dto"
	"github.com/acculer/ledger-pro/internal/domain"
)

// FieldsError agrupa los fallos de validación de un envío.
// Unwrap devuelve domain.ErrInvalidInput para que los llamadores puedan
// clasificarlo con errors.Is.
type FieldsError struct {
	Fields []dto.FieldError
}

func (e *FieldsError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (e *FieldsError) Unwrap() error { return domain.ErrInvalidInput }

// Struct valida s con sus tags `validate` y devuelve un *FieldsError con un
// mensaje por campo fallido, o nil si todo pasa.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validar estructura: %w", err)
	}
	fe := &FieldsError{Fields: make([]dto.FieldError, 0, len(verrs))}
	for _, fieldErr := range verrs {
		fe.Fields = append(fe.Fields, dto.FieldError{
			Field:   fieldErr.Field(),
			Message: messageFor(fieldErr),
		})
	}
	return fe
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obligatorio"
	case "email":
		return "email inválido"
	case "url":
		return "URL inválida"
	case "oneof":
		return "valor fuera del conjunto permitido: " + fe.Param()
	case "min":
		return "se requiere al menos " + fe.Param()
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}
