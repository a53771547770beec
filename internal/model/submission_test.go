package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ana", ContactSubmission{Nombre: "Ana"}.DisplayName())
	assert.Equal(t, "Ana Pérez", ContactSubmission{Nombre: "Ana", Apellido: "Pérez"}.DisplayName())
}

func TestHasPhone(t *testing.T) {
	assert.False(t, ContactSubmission{}.HasPhone())
	assert.True(t, ContactSubmission{Telefono: "+34 600 000 000"}.HasPhone())
}

func TestHasRequiredFields(t *testing.T) {
	full := ContactSubmission{Nombre: "Ana", Email: "ana@example.com", Mensaje: "Hola"}
	assert.True(t, full.HasRequiredFields())

	for name, mutate := range map[string]func(*ContactSubmission){
		"nombre":  func(s *ContactSubmission) { s.Nombre = "" },
		"email":   func(s *ContactSubmission) { s.Email = "" },
		"mensaje": func(s *ContactSubmission) { s.Mensaje = "" },
	} {
		t.Run(name, func(t *testing.T) {
			s := full
			mutate(&s)
			assert.False(t, s.HasRequiredFields())
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"ana@example.com", true},
		{"a@b.c", true},
		{"first.last+tag@sub.example.org", true},
		{"not-an-email", false},
		{"ana@example", false},
		{"@example.com", false},
		{"ana@.com", false},
		{"ana@@example.com", false},
		{"ana @example.com", false},
		{"ana@exa mple.com", false},
		{"ana@example.com\n", false},
		{"ana@example. com", false},
		{"ana@exa\vmple.com", false},
		{"ana\ufeff@example.com", false},
		{"ana@example.com\u2028", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.addr))
		})
	}
}
