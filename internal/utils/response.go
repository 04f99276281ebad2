package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"UMS_TALENTA_BACK-END/internal/dto"
)

// maxJSONBody bounds request bodies decoded by DecodeJSONRequest
const maxJSONBody = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes an error response in the standard envelope
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// WriteValidationErrors writes field errors as a 400 object keyed by field
func WriteValidationErrors(w http.ResponseWriter, fields map[string]string) {
	WriteJSONResponse(w, http.StatusBadRequest, fields)
}

// DecodeJSONRequest decodes the request body into dst. On failure it writes a
// 400 response and returns the error; callers just return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		msg := "Invalid request body"
		switch {
		case errors.Is(err, io.EOF):
			msg = "Request body must not be empty"
		case errors.As(err, &syntaxErr):
			msg = fmt.Sprintf("Malformed JSON at position %d", syntaxErr.Offset)
		case errors.As(err, &typeErr):
			msg = fmt.Sprintf("Field %q has the wrong type", typeErr.Field)
		case errors.As(err, &maxErr):
			msg = "Request body too large"
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request", msg)
		return err
	}
	return nil
}
