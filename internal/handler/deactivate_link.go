package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/go-chi/chi/v5"
)

// DeactivateLink обрабатывает PUT /api/url/{code}/deactivate
func (h *Handler) DeactivateLink(w http.ResponseWriter, req *http.Request) {
	code := model.Code(chi.URLParam(req, "code"))

	if err := h.usecase.DeactivateLink(req.Context(), code); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.MessageResponse{Message: "URL deactivated successfully"})
}
