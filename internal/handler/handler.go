package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/usecase"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkUsecase

// LinkUsecase операции жизненного цикла ссылок, доступные через HTTP
type LinkUsecase interface {
	CreateLink(ctx context.Context, input model.CreateLinkInput) (model.ShortLink, error)
	ResolveLink(ctx context.Context, code model.Code) (string, error)
	UpdateLink(ctx context.Context, code model.Code, update model.LinkUpdate) (model.ShortLink, error)
	DeactivateLink(ctx context.Context, code model.Code) error
	DeleteLink(ctx context.Context, code model.Code) error
	ListLinks(ctx context.Context) ([]model.ShortLink, error)
}

// Handler HTTP обработчики API коротких ссылок
type Handler struct {
	usecase  LinkUsecase
	logger   *zap.Logger
	db       db.Database
	validate *validator.Validate
	baseURL  string
}

// New создает Handler. database может быть nil, тогда /ping отвечает 500.
func New(usecase LinkUsecase, logger *zap.Logger, database db.Database, baseURL string) *Handler {
	return &Handler{
		usecase:  usecase,
		logger:   logger,
		db:       database,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		baseURL:  baseURL,
	}
}

// handleError переводит ошибки usecase в HTTP статус
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidArgument):
		h.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: usecase.ErrURLNotFound.Error()})
	case errors.Is(err, usecase.ErrCodeConflict):
		h.writeJSON(w, http.StatusConflict, model.ErrorResponse{Error: usecase.ErrCodeConflict.Error()})
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// toResponse добавляет к ссылке полный короткий URL
func (h *Handler) toResponse(link model.ShortLink) model.ShortLinkResponse {
	shortURL, err := url.JoinPath(h.baseURL, link.ShortCode.String())
	if err != nil {
		h.logger.Warn("failed to build short URL",
			zap.String("base_url", h.baseURL),
			zap.String("code", link.ShortCode.String()),
			zap.Error(err),
		)
		shortURL = h.baseURL + "/" + link.ShortCode.String()
	}

	return model.ShortLinkResponse{
		ShortCode:   link.ShortCode.String(),
		ShortURL:    shortURL,
		OriginalURL: link.OriginalURL,
		Description: link.Description,
		CreatedAt:   link.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
		ClickCount:  link.ClickCount,
		Active:      link.Active,
	}
}
