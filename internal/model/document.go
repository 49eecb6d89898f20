package model

// DocumentForm holds the personal data rendered into a document.
// Values are opaque text; the only rule is that every field is present and non-empty.
type DocumentForm struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Edad     string `json:"edad" validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
	Correo   string `json:"correo" validate:"required"`
}

// FormField is one labeled line of a rendered document.
type FormField struct {
	Label string
	Value string
}

// Fields returns the form values with their display labels in render order:
// name, surname, age, phone, email.
func (f DocumentForm) Fields() []FormField {
	return []FormField{
		{Label: "Nombre", Value: f.Nombre},
		{Label: "Apellido", Value: f.Apellido},
		{Label: "Edad", Value: f.Edad},
		{Label: "Telefono", Value: f.Telefono},
		{Label: "Correo", Value: f.Correo},
	}
}

// Document is a rendered PDF addressed by its public code.
// Content is never modified once stored.
type Document struct {
	Code    string
	Content []byte
}
