package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// findLink возвращает ErrURLNotFound для отсутствующего кода
// и ErrServiceUnavailable при сбое хранилища
func (u *LinkUsecase) findLink(ctx context.Context, code model.Code) (model.ShortLink, error) {
	link, found, err := u.repo.FindByCode(ctx, code)
	if err != nil {
		u.logger.Error("failed to find link",
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return model.ShortLink{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	if !found {
		return model.ShortLink{}, fmt.Errorf("%w: %s", ErrURLNotFound, code)
	}

	return link, nil
}

// saveLink сохраняет изменённую ссылку
func (u *LinkUsecase) saveLink(ctx context.Context, link model.ShortLink) (model.ShortLink, error) {
	saved, err := u.repo.Save(ctx, link)
	if err != nil {
		u.logger.Error("failed to save link",
			zap.String("code", link.ShortCode.String()),
			zap.Error(err),
		)
		return model.ShortLink{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return saved, nil
}
