package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorMessages holds the client-facing text an endpoint uses for each error kind.
// When IncludeDetail is set, generic failures are reported as
// "<Failed>: <underlying error>".
type ErrorMessages struct {
	MissingInput  string
	InvalidFormat string
	Failed        string
	IncludeDetail bool
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps err onto a status code and one of the endpoint's messages.
func HandleServiceError(c *gin.Context, err error, messages ErrorMessages) {
	switch {
	case errors.Is(err, ErrMissingInput):
		RespondError(c, http.StatusBadRequest, messages.MissingInput)
	case errors.Is(err, ErrInvalidModelFormat) && messages.InvalidFormat != "":
		RespondError(c, http.StatusInternalServerError, messages.InvalidFormat)
	default:
		msg := messages.Failed
		if messages.IncludeDetail {
			msg = msg + ": " + err.Error()
		}
		RespondError(c, http.StatusInternalServerError, msg)
	}
}
