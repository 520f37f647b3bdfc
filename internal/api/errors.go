package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RequestError normaliza cualquier respuesta no exitosa del backend en un
// error con mensaje legible. El mensaje prefiere el campo estructurado del
// body, después un genérico por status y por último el texto crudo.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Unauthorized reporta si la falla es de autorización (credencial ausente,
// inválida o vencida).
func (e *RequestError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsAuthorization reporta si err envuelve una falla 401 del backend.
func IsAuthorization(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Unauthorized()
}

func asRequestError(err error, target **RequestError) bool {
	return errors.As(err, target)
}

func newRequestError(status int, body []byte) *RequestError {
	msg := messageFromBody(body)
	if msg == "" {
		msg = genericMessage(status)
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return &RequestError{Status: status, Message: msg}
}

// messageFromBody extrae el campo de mensaje estructurado que usa el backend.
// El backend escribe "Error" con mayúscula; se aceptan variantes por las
// respuestas más viejas.
func messageFromBody(body []byte) string {
	var payload struct {
		Error   string `json:"Error"`
		ErrorLC string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.ErrorLC
}

func genericMessage(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "the request was malformed"
	case status == http.StatusUnauthorized:
		return "unauthorized, please sign in again"
	case status >= 500:
		return "the server failed, try again later"
	default:
		return ""
	}
}
