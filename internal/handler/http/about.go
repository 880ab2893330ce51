package http

import (
	"net/http"

	"github.com/MKhiriev/mywebclass-content/internal/handler/response"
	"github.com/MKhiriev/mywebclass-content/internal/logger"
	"github.com/MKhiriev/mywebclass-content/internal/utils"
)

// getAboutPage serves the same envelope as the serverless function.
func (h *Handler) getAboutPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := h.services.ContentService.GetAboutPage(ctx)
	resp := response.Build(ctx, doc, err)

	if _, err = utils.WriteResponse(w, resp); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing about page response")
	}
}
