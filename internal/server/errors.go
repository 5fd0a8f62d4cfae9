package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/skilltrail/internal/predict"
	"github.com/abhisek/skilltrail/internal/progress"
	"github.com/abhisek/skilltrail/internal/quiz"
	"github.com/abhisek/skilltrail/internal/skillgraph"
)

// Error codes surfaced to clients.
const (
	CodeUnauthorized       = "unauthorized"
	CodeInvalidInput       = "invalid_input"
	CodePrerequisiteNotMet = "prerequisite_not_met"
	CodeNotFound           = "not_found"
	CodeServiceUnavailable = "service_unavailable"
)

// APIError is the wire form of a failure.
type APIError struct {
	Message      string `json:"message"`
	Code         string `json:"code"`
	Prerequisite string `json:"prerequisite,omitempty"`
}

// ErrorEnvelope wraps every error response.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// respondError maps a domain error onto the HTTP error taxonomy.
// Anything unrecognized is treated as an unavailable collaborator and
// never silently swallowed.
func respondError(c *gin.Context, err error) {
	var (
		pnm     *progress.ErrPrerequisiteNotMet
		invStat *progress.ErrInvalidStatus
		invAns  *quiz.ErrInvalidAnswers
		invReq  *predict.ErrInvalidRequest
		nf      *skillgraph.ErrSkillNotFound
	)

	switch {
	case errors.As(err, &pnm):
		c.JSON(http.StatusConflict, ErrorEnvelope{Error: APIError{
			Message:      err.Error(),
			Code:         CodePrerequisiteNotMet,
			Prerequisite: pnm.PrerequisiteName,
		}})
	case errors.As(err, &invStat), errors.As(err, &invAns), errors.As(err, &invReq):
		c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{
			Message: err.Error(),
			Code:    CodeInvalidInput,
		}})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, ErrorEnvelope{Error: APIError{
			Message: err.Error(),
			Code:    CodeNotFound,
		}})
	default:
		c.JSON(http.StatusServiceUnavailable, ErrorEnvelope{Error: APIError{
			Message: err.Error(),
			Code:    CodeServiceUnavailable,
		}})
	}
}

// respondInvalid reports a malformed request body or parameter.
func respondInvalid(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{
		Message: msg,
		Code:    CodeInvalidInput,
	}})
}

// respondUnauthorized reports a missing caller identity.
func respondUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorEnvelope{Error: APIError{
		Message: "missing user identity",
		Code:    CodeUnauthorized,
	}})
}
