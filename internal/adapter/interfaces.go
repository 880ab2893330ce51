// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// Sanity content API.
//
// The primary abstraction is [ContentAdapter], which decouples the service
// layer from the HTTP protocol. The package ships a resty based
// implementation ([NewSanityAdapter]) that speaks the documented GROQ query
// endpoint.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrRateLimited] for 429).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/content_adapter_mock.go -package=mock

// ContentAdapter runs read queries against a content store.
type ContentAdapter interface {
	// Query executes a GROQ query with optional parameters and returns the
	// raw JSON "result" member of the response. A missing result or the JSON
	// literal null means nothing matched. Returns an error if the request
	// fails, the store answers with a non-2xx status, or the response body
	// cannot be decoded.
	Query(ctx context.Context, query string, params map[string]any) (json.RawMessage, error)
}
