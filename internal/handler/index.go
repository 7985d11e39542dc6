package handler

import (
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
)

// Index подтверждает, что API запущено
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, model.MessageResponse{Message: "URL Shortener API is running!"})
}
