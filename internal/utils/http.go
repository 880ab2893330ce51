// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP response writing, HTTP client initialization
// and identifier generation.
package utils

import (
	"net/http"

	"github.com/MKhiriev/mywebclass-content/models"
)

// WriteResponse writes a prepared [models.Response] envelope to w.
//
// Every header of the envelope is copied to the response before the status
// code is written; the body is written verbatim.
//
// Parameters:
//
//	w    - the HTTP response writer to write the response to
//	resp - the envelope produced by the content pipeline
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if writing the body fails
//
// Example usage:
//
//	WriteResponse(w, models.Response{StatusCode: http.StatusOK, Body: `{"ok":true}`})
func WriteResponse(w http.ResponseWriter, resp models.Response) (int, error) {
	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}

	statusCode := resp.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	w.WriteHeader(statusCode)

	return w.Write([]byte(resp.Body))
}
