package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	aboutRoute         = "/api/about"
	netlifyAboutRoute  = "/.netlify/functions/about"
	serverVersionRoute = "/api/version/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get(aboutRoute, h.getAboutPage)
	router.Get(netlifyAboutRoute, h.getAboutPage)
	router.Get(serverVersionRoute, h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
