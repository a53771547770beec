package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/contactrelay/contactrelay/internal/model"
)

// Rendered holds both bodies of a notification email.
type Rendered struct {
	HTML string
	Text string
}

// ContactSubject returns the subject line for a submission.
func ContactSubject(s model.ContactSubmission) string {
	return "Nueva consulta de " + s.DisplayName()
}

// RenderContact builds the notification email for a contact form submission.
// It has no side effects.
func RenderContact(s model.ContactSubmission) (Rendered, error) {
	var buf bytes.Buffer
	err := contactHTML.Execute(&buf, struct {
		FullName string
		Email    string
		Telefono string
		Mensaje  string
	}{
		FullName: s.DisplayName(),
		Email:    s.Email,
		Telefono: s.Telefono,
		Mensaje:  s.Mensaje,
	})
	if err != nil {
		return Rendered{}, fmt.Errorf("failed to render contact email: %w", err)
	}

	return Rendered{
		HTML: buf.String(),
		Text: contactText(s),
	}, nil
}

func contactText(s model.ContactSubmission) string {
	var b strings.Builder
	b.WriteString("Nueva consulta desde el sitio web\n\n")
	fmt.Fprintf(&b, "Nombre: %s\n", s.DisplayName())
	fmt.Fprintf(&b, "Email: %s", s.Email)
	if s.HasPhone() {
		fmt.Fprintf(&b, "\nTeléfono: %s", s.Telefono)
	}
	fmt.Fprintf(&b, "\n\nMensaje:\n%s\n\n", s.Mensaje)
	b.WriteString("---\nPuedes responder directamente a este email.")
	return b.String()
}

var contactHTML = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Nueva consulta</title>
</head>
<body style="margin:0 auto;padding:20px;max-width:600px;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,'Helvetica Neue',Arial,sans-serif;line-height:1.6;color:#1A1A1A;">
  <div style="background:linear-gradient(135deg,#B85C38 0%,#D4816D 100%);color:#ffffff;padding:30px;border-radius:12px 12px 0 0;text-align:center;">
    <h1 style="margin:0;font-size:24px;font-weight:600;">Nueva Consulta</h1>
    <p style="margin:5px 0 0 0;opacity:0.9;">Formulario de Contacto</p>
  </div>
  <div style="background:#FAF8F5;padding:30px;border-radius:0 0 12px 12px;">
    <div style="margin-bottom:20px;padding:15px;background:#ffffff;border-radius:8px;border-left:3px solid #B85C38;">
      <div style="font-weight:600;color:#6B6460;font-size:12px;text-transform:uppercase;letter-spacing:0.5px;margin-bottom:5px;">Nombre Completo</div>
      <div style="color:#1A1A1A;font-size:16px;">{{.FullName}}</div>
    </div>
    <div style="margin-bottom:20px;padding:15px;background:#ffffff;border-radius:8px;border-left:3px solid #B85C38;">
      <div style="font-weight:600;color:#6B6460;font-size:12px;text-transform:uppercase;letter-spacing:0.5px;margin-bottom:5px;">Email</div>
      <div style="color:#1A1A1A;font-size:16px;"><a href="mailto:{{.Email}}" style="color:#B85C38;text-decoration:none;">{{.Email}}</a></div>
    </div>
{{- if .Telefono}}
    <div style="margin-bottom:20px;padding:15px;background:#ffffff;border-radius:8px;border-left:3px solid #B85C38;">
      <div style="font-weight:600;color:#6B6460;font-size:12px;text-transform:uppercase;letter-spacing:0.5px;margin-bottom:5px;">Teléfono</div>
      <div style="color:#1A1A1A;font-size:16px;"><a href="tel:{{.Telefono}}" style="color:#B85C38;text-decoration:none;">{{.Telefono}}</a></div>
    </div>
{{- end}}
    <div style="background:#ffffff;padding:20px;border-radius:8px;border-left:3px solid #B85C38;margin-top:20px;">
      <div style="font-weight:600;color:#6B6460;font-size:12px;text-transform:uppercase;letter-spacing:0.5px;margin-bottom:5px;">Mensaje</div>
      <div style="color:#1A1A1A;font-size:16px;white-space:pre-wrap;margin-top:10px;">{{.Mensaje}}</div>
    </div>
    <div style="margin-top:30px;padding-top:20px;border-top:1px solid #E5E5E5;font-size:14px;color:#6B6460;text-align:center;">
      <p>Este mensaje fue enviado desde el formulario de contacto de tu sitio web.</p>
      <p style="margin:5px 0 0 0;">Puedes responder directamente a este email.</p>
    </div>
  </div>
</body>
</html>`))
