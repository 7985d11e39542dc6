package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"go.uber.org/zap"
)

// CreateLink создает короткую ссылку.
// При конфликте кода генерирует новый, всего не более Retry.MaxAttempts попыток.
func (u *LinkUsecase) CreateLink(ctx context.Context, input model.CreateLinkInput) (link model.ShortLink, err error) {
	ctx, span := u.startSpan(ctx, "CreateLink", "")
	defer func() { u.finish(span, "create", err) }()

	if err := ValidateURL(input.OriginalURL); err != nil {
		return model.ShortLink{}, err
	}

	now := u.now().UTC()

	var expiresAt *time.Time
	if input.ExpiresAt != nil {
		if !input.ExpiresAt.After(now) {
			return model.ShortLink{}, fmt.Errorf("%w: %s", ErrInvalidExpiry, input.ExpiresAt.Format(time.RFC3339))
		}
		at := input.ExpiresAt.UTC()
		expiresAt = &at
	}

	attempts := max(u.cfg.Retry.MaxAttempts, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		code := u.generator.GenerateCode()

		saved, saveErr := u.repo.Save(ctx, model.ShortLink{
			ShortCode:   code,
			OriginalURL: input.OriginalURL,
			Description: input.Description,
			CreatedAt:   now,
			ExpiresAt:   expiresAt,
			ClickCount:  0,
			Active:      true,
			CreatedByIP: input.ClientIP,
		})
		if saveErr == nil {
			span.SetAttributes(attrShortCode.String(saved.ShortCode.String()))
			u.notify(ctx, events.EventCreated, linkPayload(saved))
			return saved, nil
		}

		if !errors.Is(saveErr, repository.ErrCodeTaken) {
			u.logger.Error("failed to save link",
				zap.String("code", code.String()),
				zap.Error(saveErr),
			)
			return model.ShortLink{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, saveErr)
		}

		u.logger.Warn("short code collision, regenerating",
			zap.String("code", code.String()),
			zap.Int("attempt", attempt),
		)
	}

	return model.ShortLink{}, fmt.Errorf("%w: %d attempts exhausted", ErrCodeConflict, attempts)
}
