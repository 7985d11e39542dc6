package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
)

// ListLinks обрабатывает GET /api/url/all
func (h *Handler) ListLinks(w http.ResponseWriter, req *http.Request) {
	links, err := h.usecase.ListLinks(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	responses := make([]model.ShortLinkResponse, len(links))
	for i, link := range links {
		responses[i] = h.toResponse(link)
	}

	h.writeJSON(w, http.StatusOK, responses)
}
