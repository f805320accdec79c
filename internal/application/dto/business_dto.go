package dto

// SaveBusinessRequest alta o edición de un negocio del directorio.
type SaveBusinessRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contact_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Mobile      string `json:"mobile" validate:"required"`
	Phone       string `json:"phone,omitempty"`
	Address1    string `json:"address1" validate:"required"`
	Address2    string `json:"address2,omitempty"`
	Address3    string `json:"address3,omitempty"`
	Landmark    string `json:"landmark,omitempty"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	Country     string `json:"country" validate:"required"`
	Pincode     string `json:"pincode" validate:"required"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	GSTNumber   string `json:"gst_number" validate:"required"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// BusinessResponse negocio en listados y detalle.
type BusinessResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ContactName string   `json:"contact_name"`
	Email       string   `json:"email"`
	Mobile      string   `json:"mobile"`
	Phone       string   `json:"phone,omitempty"`
	Address     []string `json:"address"` // bloque de dirección listo para mostrar
	Website     string   `json:"website,omitempty"`
	GSTNumber   string   `json:"gst_number"`
	Status      string   `json:"status"`
}
