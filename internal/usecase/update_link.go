package usecase

import (
	"context"

	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/model"
)

// UpdateLink заменяет переданные поля ссылки, остальные не меняются.
// Новый URL проверяется до записи.
func (u *LinkUsecase) UpdateLink(ctx context.Context, code model.Code, update model.LinkUpdate) (link model.ShortLink, err error) {
	ctx, span := u.startSpan(ctx, "UpdateLink", code)
	defer func() { u.finish(span, "update", err) }()

	link, err = u.findLink(ctx, code)
	if err != nil {
		return model.ShortLink{}, err
	}

	if update.OriginalURL != nil {
		if err := ValidateURL(*update.OriginalURL); err != nil {
			return model.ShortLink{}, err
		}
		link.OriginalURL = *update.OriginalURL
	}

	if update.Description != nil {
		description := *update.Description
		link.Description = &description
	}

	saved, err := u.saveLink(ctx, link)
	if err != nil {
		return model.ShortLink{}, err
	}

	u.notify(ctx, events.EventUpdated, linkPayload(saved))

	return saved, nil
}
