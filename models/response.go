package models

// Response is the HTTP-shaped envelope returned to the invoking platform:
// a status code, response headers and a serialized body.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

// ErrorBody is the JSON body of a not-found response.
type ErrorBody struct {
	Error string `json:"error"`
}

// FallbackBody is the static JSON body served when the CMS cannot be reached
// or is misconfigured.
type FallbackBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
