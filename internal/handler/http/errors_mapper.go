package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/logger"
	"github.com/MKhiriev/skillvance-api/internal/service"
	"github.com/MKhiriev/skillvance-api/internal/utils"
)

// genericAuthFailure is reported for every login failure so that callers
// cannot tell an unknown identifier from a wrong secret or role.
const genericAuthFailure = "invalid email or password"

// sessionFailure is reported for every rejected session. Token parser
// details stay in the log.
const sessionFailure = "unauthorized"

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order; the first sentinel found in the chain
// decides the status.
var errorStatuses = []errorStatus{
	{service.ErrSessionInvalid, http.StatusUnauthorized},
	{ErrNoSessionToken, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoSession, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInsufficientRole, http.StatusUnauthorized},

	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrWrongSecret, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},

	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrAlreadyExists, http.StatusConflict},
	{service.ErrIdentifierTaken, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

func isSessionFailure(err error) bool {
	return errors.Is(err, service.ErrSessionInvalid) ||
		errors.Is(err, ErrNoSessionToken) ||
		errors.Is(err, ErrInvalidAuthorizationHeader) ||
		errors.Is(err, ErrNoSession)
}

// messageFromError returns the envelope message reported for err.
func messageFromError(err error, status int) string {
	switch {
	case isSessionFailure(err):
		return sessionFailure
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInsufficientRole):
		return genericAuthFailure
	case status == http.StatusInternalServerError:
		return http.StatusText(http.StatusInternalServerError)
	default:
		return err.Error()
	}
}

// writeError logs err and writes the failure envelope with the mapped status.
// Store failures are reported with a generic message only.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteFailure(w, status, messageFromError(err, status))
}
