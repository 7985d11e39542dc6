package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// ListLinks возвращает все ссылки, включая неактивные
func (u *LinkUsecase) ListLinks(ctx context.Context) (links []model.ShortLink, err error) {
	ctx, span := u.startSpan(ctx, "ListLinks", "")
	defer func() { u.finish(span, "list", err) }()

	links, err = u.repo.FindAll(ctx)
	if err != nil {
		u.logger.Error("failed to list links", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return links, nil
}
