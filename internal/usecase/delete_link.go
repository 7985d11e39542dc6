package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
	"go.uber.org/zap"
)

// DeleteLink удаляет ссылку из хранилища
func (u *LinkUsecase) DeleteLink(ctx context.Context, code model.Code) (err error) {
	ctx, span := u.startSpan(ctx, "DeleteLink", code)
	defer func() { u.finish(span, "delete", err) }()

	link, err := u.findLink(ctx, code)
	if err != nil {
		return err
	}

	if err := u.repo.DeleteByID(ctx, link.ID); err != nil {
		// запись удалили между поиском и удалением
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrURLNotFound, code)
		}
		u.logger.Error("failed to delete link",
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	u.notify(ctx, events.EventDeleted, map[string]any{
		events.FieldShortCode: link.ShortCode.String(),
		"originalUrl":         link.OriginalURL,
	})

	return nil
}
