package dto

// DisplayDateLayout formato de fecha para mostrar (ej: "Mar 22, 2025").
const DisplayDateLayout = "Jan 2, 2006"

// FieldError mensaje de validación a nivel de campo; se muestra junto al
// campo del formulario que lo originó.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
