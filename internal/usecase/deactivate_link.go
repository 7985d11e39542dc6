package usecase

import (
	"context"

	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/model"
	"go.uber.org/zap"
)

// DeactivateLink выключает ссылку. Повторная деактивация ничего не записывает.
func (u *LinkUsecase) DeactivateLink(ctx context.Context, code model.Code) (err error) {
	ctx, span := u.startSpan(ctx, "DeactivateLink", code)
	defer func() { u.finish(span, "deactivate", err) }()

	link, err := u.findLink(ctx, code)
	if err != nil {
		return err
	}

	if !link.Active {
		u.logger.Debug("link is already inactive", zap.String("code", code.String()))
		return nil
	}

	link.Active = false

	saved, err := u.saveLink(ctx, link)
	if err != nil {
		return err
	}

	u.notify(ctx, events.EventDeactivated, linkPayload(saved))

	return nil
}
