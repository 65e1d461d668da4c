package delivery

import (
	"errors"
	"net/http"
	"time"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldMessage struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// StandardError is the body of every non-2xx response.
type StandardError struct {
	Timestamp time.Time      `json:"timestamp"`
	Status    int            `json:"status"`
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Path      string         `json:"path"`
	Errors    []FieldMessage `json:"errors,omitempty"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, newStandardError(c, statusCode, message))
}

// ValidationErrorResponse reports a body that failed to bind, listing the offending
// fields when the validator produced them.
func ValidationErrorResponse(c *gin.Context, err error) {
	body := newStandardError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		body.Message = "Validation failed"
		for _, fe := range verrs {
			body.Errors = append(body.Errors, FieldMessage{
				FieldName: fe.Field(),
				Message:   fieldMessage(fe),
			})
		}
	}
	c.JSON(http.StatusBadRequest, body)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

func newStandardError(c *gin.Context, statusCode int, message string) StandardError {
	return StandardError{
		Timestamp: time.Now().UTC(),
		Status:    statusCode,
		Error:     errorTitle(statusCode),
		Message:   message,
		Path:      c.Request.URL.Path,
	}
}

func errorTitle(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusConflict:
		return "Database exception"
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	default:
		return http.StatusText(statusCode)
	}
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrIntegrityViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// serviceErrorResponse writes the response for an error returned by a usecase. Store
// details never reach the client.
func serviceErrorResponse(c *gin.Context, err error, notFoundMessage string) {
	statusCode := mapErrorToStatus(err)
	switch statusCode {
	case http.StatusNotFound:
		ErrorResponse(c, statusCode, notFoundMessage)
	case http.StatusConflict:
		ErrorResponse(c, statusCode, "Referential integrity violation")
	default:
		ErrorResponse(c, statusCode, "Internal server error")
	}
}
