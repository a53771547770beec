package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/contactrelay/contactrelay/internal/middleware"
	"github.com/contactrelay/contactrelay/internal/service"
)

// SendEmailResponse is the envelope of every /api/send-email response.
type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// SendEmail handles /api/send-email for every method.
// OPTIONS is acknowledged, POST relays the submission, anything else is 405.
func (h *Handler) SendEmail(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		writeJSON(w, http.StatusOK, SendEmailResponse{Success: true})
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "POST, OPTIONS")
		h.writeRelayError(w, r, service.ErrMethodNotAllowed)
		return
	}

	req, err := readSubmission(w, r)
	if err != nil {
		h.writeRelayError(w, r, &service.DeliveryError{Err: fmt.Errorf("invalid request body: %w", err)})
		return
	}

	id, err := h.contactSvc.Relay(r.Context(), req)
	if err != nil {
		h.writeRelayError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SendEmailResponse{
		Success: true,
		Message: service.MsgSent,
		ID:      id,
	})
}

func (h *Handler) writeRelayError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *service.ValidationError
		protocolErr   *service.ProtocolError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, SendEmailResponse{Error: validationErr.Message})
	case errors.As(err, &protocolErr):
		writeJSON(w, http.StatusMethodNotAllowed, SendEmailResponse{Error: protocolErr.Message})
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("error sending email")

		resp := SendEmailResponse{Error: service.MsgDeliveryFailed}
		if h.cfg.IsDevelopment() {
			resp.Details = deliveryDetail(err)
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

func deliveryDetail(err error) string {
	var deliveryErr *service.DeliveryError
	if errors.As(err, &deliveryErr) {
		return deliveryErr.Detail()
	}
	return err.Error()
}
