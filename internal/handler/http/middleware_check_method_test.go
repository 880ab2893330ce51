// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a chi.Mux without Handler.Init so no services are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get(aboutRoute, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("about"))
	})
	router.Get("/api/multi", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/multi", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "registered GET passes through", method: http.MethodGet, path: aboutRoute, expectedStatus: http.StatusOK},
		{name: "POST on GET-only route", method: http.MethodPost, path: aboutRoute, expectedStatus: http.StatusNotFound},
		{name: "DELETE on GET-only route", method: http.MethodDelete, path: aboutRoute, expectedStatus: http.StatusNotFound},
		{name: "second method of multi-method route", method: http.MethodPost, path: "/api/multi", expectedStatus: http.StatusCreated},
		{name: "unregistered method of multi-method route", method: http.MethodPut, path: "/api/multi", expectedStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, aboutRoute, nil))

	assert.Equal(t, "about", rr.Body.String())
}
