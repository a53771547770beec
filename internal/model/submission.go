package model

import "regexp"

// emailPattern accepts something@something.something with no whitespace or
// extra '@'. Vertical tab and the byte-order mark count as whitespace.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ContactSubmission is a single contact form submission.
// JSON names follow the form markup.
type ContactSubmission struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email"`
	Telefono string `json:"telefono,omitempty"`
	Mensaje  string `json:"mensaje"`
}

// DisplayName returns "nombre apellido", or just nombre when no last name was given.
func (s ContactSubmission) DisplayName() string {
	if s.Apellido != "" {
		return s.Nombre + " " + s.Apellido
	}
	return s.Nombre
}

// HasPhone reports whether a phone number was provided.
func (s ContactSubmission) HasPhone() bool {
	return s.Telefono != ""
}

// HasRequiredFields reports whether nombre, email and mensaje are all present.
func (s ContactSubmission) HasRequiredFields() bool {
	return s.Nombre != "" && s.Email != "" && s.Mensaje != ""
}

// ValidEmail reports whether addr looks like local@domain.tld.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}
