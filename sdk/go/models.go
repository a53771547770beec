package contactrelay

// Submission is a contact form submission as accepted by the relay.
type Submission struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email"`
	Telefono string `json:"telefono,omitempty"`
	Mensaje  string `json:"mensaje"`
}

// SendResult is the body returned by the relay endpoint.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}
