package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiError covers the two error shapes Sanity answers with:
//
//	{"error":{"description":"...","type":"queryParseError"}}
//	{"error":"Unauthorized","message":"Session not found","statusCode":401}
type apiError struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type apiErrorDetails struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorDescription(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorDescription extracts the most useful human readable message from a
// Sanity error body, falling back to the trimmed raw body.
func errorDescription(raw []byte) string {
	body := strings.TrimSpace(string(raw))

	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err != nil {
		return body
	}

	var details apiErrorDetails
	if err := json.Unmarshal(apiErr.Error, &details); err == nil && details.Description != "" {
		if details.Type != "" {
			return details.Type + ": " + details.Description
		}
		return details.Description
	}

	if apiErr.Message != "" {
		return apiErr.Message
	}

	var short string
	if err := json.Unmarshal(apiErr.Error, &short); err == nil && short != "" {
		return short
	}

	return body
}
