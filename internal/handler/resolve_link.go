package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/go-chi/chi/v5"
)

// ResolveLink обрабатывает GET /api/url/{code} и отдаёт оригинальный URL в JSON
func (h *Handler) ResolveLink(w http.ResponseWriter, req *http.Request) {
	code := model.Code(chi.URLParam(req, "code"))

	originalURL, err := h.usecase.ResolveLink(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.ResolveResponse{OriginalURL: originalURL})
}

// Redirect обрабатывает GET /{code} и перенаправляет на оригинальный URL
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := model.Code(chi.URLParam(req, "code"))

	originalURL, err := h.usecase.ResolveLink(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusTemporaryRedirect)
}
