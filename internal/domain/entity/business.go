package entity

import "time"

// Estados de un registro del directorio de negocios.
const (
	BusinessStatusActive   = "active"
	BusinessStatusInactive = "inactive"
)

// Business registro del directorio de negocios/cuentas.
type Business struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Mobile      string
	Phone       string
	Address1    string
	Address2    string
	Address3    string
	Landmark    string
	City        string
	State       string
	Country     string
	Pincode     string
	Website     string
	GSTNumber   string
	Status      string // active | inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AddressLines devuelve el bloque de dirección para mostrar en la creación
// de documentos (solo lectura, líneas no vacías + ciudad/estado/pin + GSTIN).
func (b *Business) AddressLines() []string {
	var lines []string
	for _, l := range []string{b.Address1, b.Address2, b.Address3} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if b.City != "" || b.Pincode != "" {
		lines = append(lines, b.City+" "+b.Pincode)
	}
	if b.State != "" || b.Country != "" {
		lines = append(lines, b.State+", "+b.Country)
	}
	if b.GSTNumber != "" {
		lines = append(lines, "GSTIN: "+b.GSTNumber)
	}
	return lines
}
