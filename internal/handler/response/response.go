// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package response turns the outcome of an about-page lookup into the
// response envelope shared by the serverless and local HTTP surfaces.
package response

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/service"
	"github.com/MKhiriev/mywebclass-content/models"
)

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"

	ContentTypeJSON = "application/json"
	CacheOneHour    = "public, max-age=3600"

	// FetchErrorMessage is logged once for every lookup that ends in the
	// fallback response.
	FetchErrorMessage = "error fetching about content"

	FallbackTitle   = "About MyWebClass"
	FallbackContent = "<p>Content from Sanity CMS will appear here once configured.</p>"

	NotFoundMessage = "Content not found"
)

var (
	fallbackBody = mustMarshal(models.FallbackBody{Title: FallbackTitle, Content: FallbackContent})
	notFoundBody = mustMarshal(models.ErrorBody{Error: NotFoundMessage})
)

// Build maps the result of ContentService.GetAboutPage to an envelope.
//
//   - doc != nil, err == nil: 200 with the document and a one hour cache header;
//   - err is [service.ErrContentNotFound], or both are nil: 404;
//   - any other error: the error is logged and the static fallback is served
//     with 200 and no cache header.
func Build(ctx context.Context, doc *models.ContentDocument, err error) models.Response {
	switch {
	case err == nil && doc != nil:
		body, marshalErr := encode(doc)
		if marshalErr != nil {
			return Fallback(ctx, marshalErr)
		}
		return models.Response{
			StatusCode: http.StatusOK,
			Headers: map[string]string{
				HeaderContentType:  ContentTypeJSON,
				HeaderCacheControl: CacheOneHour,
			},
			Body: body,
		}
	case err == nil, errors.Is(err, service.ErrContentNotFound):
		return NotFound()
	default:
		return Fallback(ctx, err)
	}
}

// NotFound returns the 404 envelope.
func NotFound() models.Response {
	return models.Response{
		StatusCode: http.StatusNotFound,
		Headers:    map[string]string{HeaderContentType: ContentTypeJSON},
		Body:       notFoundBody,
	}
}

// Fallback logs err with the request-scoped logger from ctx and returns the
// static placeholder envelope.
func Fallback(ctx context.Context, err error) models.Response {
	logger.FromContext(ctx).Error().Err(err).Msg(FetchErrorMessage)

	return models.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{HeaderContentType: ContentTypeJSON},
		Body:       fallbackBody,
	}
}

// encode marshals v without escaping HTML so markup in CMS content reaches
// the client byte for byte.
func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

func mustMarshal(v any) string {
	s, err := encode(v)
	if err != nil {
		panic(err)
	}
	return s
}
