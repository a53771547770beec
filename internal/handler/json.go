package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/contactrelay/contactrelay/internal/model"
)

// maxBodyBytes caps request bodies; a contact message is never this large.
const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// readJSON decodes exactly one JSON value from the body. Anything after it,
// other than whitespace, is an error.
func readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}

// readSubmission decodes a contact submission. Field names match exactly, so
// "NOMBRE" is an unknown key rather than an alias for "nombre".
func readSubmission(w http.ResponseWriter, r *http.Request) (model.ContactSubmission, error) {
	var raw map[string]json.RawMessage
	if err := readJSON(w, r, &raw); err != nil {
		return model.ContactSubmission{}, err
	}
	if raw == nil {
		return model.ContactSubmission{}, errors.New("request body must be a JSON object")
	}

	var s model.ContactSubmission
	for name, dst := range map[string]*string{
		"nombre":   &s.Nombre,
		"apellido": &s.Apellido,
		"email":    &s.Email,
		"telefono": &s.Telefono,
		"mensaje":  &s.Mensaje,
	} {
		value, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return model.ContactSubmission{}, fmt.Errorf("field %q: %w", name, err)
		}
	}
	return s, nil
}
