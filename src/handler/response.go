package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roshdman/backend/src/domain"
	"github.com/rs/zerolog"
)

// MessageResponse is the body of every error response: a human-readable
// message and nothing else. No error codes, no stack traces.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError logs the failure with request context and sends the
// status and message mapped from the domain error taxonomy. Errors that are
// not domain errors (store I/O, hashing) fall through as a generic 500.
func respondWithError(c *gin.Context, err error) {
	domainErr := parseDomainError(err)

	message := domainErr.ClientMsg()
	if message == "" {
		if domainErr.HTTPStatus() == http.StatusInternalServerError {
			message = "internal server error"
		} else {
			message = err.Error()
		}
	}

	ctx := c.Request.Context()
	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("error_name", domainErr.Name()).
		Int("status", domainErr.HTTPStatus()).
		Msg(message)

	_ = c.Error(err)
	c.AbortWithStatusJSON(domainErr.HTTPStatus(), MessageResponse{Message: message})
}

// parseDomainError extracts domain error information
func parseDomainError(err error) domain.DomainError {
	var domainError domain.DomainError
	// We don't check whether errors.As matched: the zero value of
	// domain.DomainError already maps to an internal error.
	_ = errors.As(err, &domainError)
	return domainError
}
