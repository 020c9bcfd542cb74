package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Helper function to get caller information
func getCallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "[unknown]"
	}
	return fmt.Sprintf("[%s:%d]", filepath.Base(file), line)
}

type HandlerError struct {
	ErrorName        string `json:"errorName"`
	Description      string `json:"description"`
	PossibleSolution string `json:"possibleSolution"`
	CallerInfo       string `json:"callerInfo"`
}

var ErrGET = fmt.Errorf("GET method required for this endpoint")
var ErrPOST = fmt.Errorf("POST method required for this endpoint")
var ErrGETOrPOST = fmt.Errorf("GET or POST method required for this endpoint")

func writeHandlerError(w http.ResponseWriter, status int, handlerErr HandlerError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(handlerErr)
}

func (app *Application) methodNotAllowed(w http.ResponseWriter, r *http.Request, err error, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeHandlerError(w, http.StatusMethodNotAllowed, HandlerError{
		ErrorName:        "Method Not Allowed",
		Description:      err.Error() + " you used: " + r.Method,
		PossibleSolution: "Use " + strings.Join(allowed, " or ") + " method",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badJSONRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Error Parsing JSON",
		Description:      err.Error(),
		PossibleSolution: "Double check your JSON formatting",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Bad Request",
		Description:      err.Error(),
		PossibleSolution: "Check your request parameters",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) validationFailed(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusBadRequest, HandlerError{
		ErrorName:        "Validation Failed",
		Description:      describeValidationError(err),
		PossibleSolution: "vibrancy must be within 0-100 and hueShift within -180-180",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidColor(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusUnprocessableEntity, HandlerError{
		ErrorName:        "Invalid Color Format",
		Description:      err.Error(),
		PossibleSolution: "Send a color as #RRGGBB, RRGGBB or #RGB",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) invalidShareToken(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusUnauthorized, HandlerError{
		ErrorName:        "Invalid Share Token",
		Description:      err.Error(),
		PossibleSolution: "Request a new share link",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) serviceUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusServiceUnavailable, HandlerError{
		ErrorName:        "Service Unavailable",
		Description:      err.Error(),
		PossibleSolution: "Retry shortly",
		CallerInfo:       getCallerInfo(),
	})
}

func (app *Application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	writeHandlerError(w, http.StatusInternalServerError, HandlerError{
		ErrorName:        "Internal Server Error",
		Description:      err.Error(),
		PossibleSolution: "Internal Server Error requiring support",
		CallerInfo:       getCallerInfo(),
	})
}

// describeValidationError flattens validator output into one line per field
func describeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
