package contactrelay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSuccess(t *testing.T) {
	var got Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, DefaultPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"Email enviado correctamente","id":"re_1"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/"})
	res, err := c.Send(context.Background(), Submission{Nombre: "Ana", Email: "ana@example.com", Mensaje: "Hola"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "re_1", res.ID)
	assert.Equal(t, "Ana", got.Nombre)
	assert.Empty(t, got.Apellido)
}

func TestSendOmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(Submission{Nombre: "Ana", Email: "ana@example.com", Mensaje: "Hola"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Ana","email":"ana@example.com","mensaje":"Hola"}`, string(data))
}

func TestSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Email inválido"}`))
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}).Send(context.Background(), Submission{})
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Email inválido", apiErr.Message)
}

func TestSendNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}).Send(context.Background(), Submission{})
	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "bad gateway")
}

func TestSendInvalidSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(Config{BaseURL: srv.URL}).Send(context.Background(), Submission{})
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestSendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(Config{BaseURL: url}).Send(context.Background(), Submission{})
	require.Error(t, err)
	_, ok := IsAPIError(err)
	assert.False(t, ok)
}
