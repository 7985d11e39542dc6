package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpdateLink обрабатывает PUT /api/url/{code}/update
func (h *Handler) UpdateLink(w http.ResponseWriter, req *http.Request) {
	code := model.Code(chi.URLParam(req, "code"))

	var request model.UpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	link, err := h.usecase.UpdateLink(req.Context(), code, model.LinkUpdate{
		OriginalURL: request.OriginalURL,
		Description: request.Description,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.toResponse(link))
}
