package handler

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// CreateLink обрабатывает POST /api/url/shorten
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid JSON body"})
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.logger.Debug("request validation failed", zap.Error(err))
		h.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	link, err := h.usecase.CreateLink(req.Context(), model.CreateLinkInput{
		OriginalURL: request.OriginalURL,
		Description: request.Description,
		ExpiresAt:   request.ExpiresAt,
		ClientIP:    clientIP(req),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("short link created",
		zap.String("code", link.ShortCode.String()),
		zap.String("original_url", link.OriginalURL),
	)

	h.writeJSON(w, http.StatusCreated, h.toResponse(link))
}

// clientIP адрес клиента. RemoteAddr уже переписан middleware.RealIP.
func clientIP(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
