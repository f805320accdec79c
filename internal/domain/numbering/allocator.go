// Package numbering implementa la asignación del consecutivo de documentos
// (servicio de dominio puro, sin efectos secundarios).
//
// Formato del número: <PREFIJO>-<añoInicioFiscal>-<secuencia>, donde la
// secuencia es un entero estrictamente creciente, único por par
// (prefijo, año de inicio fiscal), con relleno de ceros a 4 dígitos.
package numbering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/acculer/ledger-pro/internal/domain"
)

// SequenceDigits ancho mínimo de la secuencia con relleno de ceros.
const SequenceDigits = 4

// FiscalYearStart valida el año fiscal "YYYY-YYYY" (fin = inicio + 1) y
// devuelve el año de inicio como string de 4 dígitos.
func FiscalYearStart(fiscalYear string) (string, error) {
	parts := strings.Split(fiscalYear, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 4 {
		return "", fmt.Errorf("año fiscal %q: %w", fiscalYear, domain.ErrInvalidInput)
	}
	start, err1 := strconv.Atoi(parts[0])
	end, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || end != start+1 {
		return "", fmt.Errorf("año fiscal %q: %w", fiscalYear, domain.ErrInvalidInput)
	}
	return parts[0], nil
}

// Sequence parsea la secuencia (último segmento numérico) de un número de
// documento. Devuelve false si el número no tiene el formato esperado.
func Sequence(number string) (int, bool) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(number[idx+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Next calcula el siguiente número de documento para el par
// (prefijo, año fiscal) dado el conjunto de números ya existentes.
//
// La secuencia elegida es max(secuencias del alcance) + 1, comparando las
// secuencias como enteros y no los strings completos: el comportamiento
// original elegía el "último" por orden lexicográfico, lo que se rompe al
// llegar la secuencia a 5 dígitos. Si el alcance está vacío, la primera
// secuencia es 1 ("0001").
//
// Next es una función pura del estado actual: cambiar el año fiscal antes de
// confirmar la creación solo re-deriva una vista previa, nunca reserva nada.
func Next(prefix, fiscalYear string, existing []string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("prefijo vacío: %w", domain.ErrInvalidInput)
	}
	yearPart, err := FiscalYearStart(fiscalYear)
	if err != nil {
		return "", err
	}

	scope := prefix + "-" + yearPart + "-"
	max := 0
	for _, number := range existing {
		if !strings.HasPrefix(number, scope) {
			continue
		}
		if seq, ok := Sequence(number); ok && seq > max {
			max = seq
		}
	}
	return fmt.Sprintf("%s-%s-%0*d", prefix, yearPart, SequenceDigits, max+1), nil
}
