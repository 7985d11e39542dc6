package usecase

import (
	"context"
	"time"

	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/metrics"
	"github.com/avc-dev/shortlinks/internal/model"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const attrShortCode = attribute.Key("shortlinks.short_code")

// notify публикует событие в фоне. Ошибки публикации только логируются.
func (u *LinkUsecase) notify(ctx context.Context, name string, payload map[string]any) {
	if u.publisher == nil {
		return
	}

	timeout := u.cfg.Events.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	ctx = context.WithoutCancel(ctx)

	u.pending.Add(1)
	go func() {
		defer u.pending.Done()

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if err := u.publisher.Publish(ctx, name, payload); err != nil {
			metrics.EventsPublished.WithLabelValues(name, "error").Inc()
			u.logger.Warn("failed to publish event",
				zap.String("event", name),
				zap.Any("short_code", payload[events.FieldShortCode]),
				zap.Error(err),
			)
			return
		}

		metrics.EventsPublished.WithLabelValues(name, "success").Inc()
	}()
}

// scheduleClick ставит учёт перехода в очередь, не дожидаясь его.
// Без очереди переходы учитываются по одному под clickMu.
func (u *LinkUsecase) scheduleClick(ctx context.Context, code model.Code) {
	if u.clicks != nil {
		u.clicks.Schedule(code)
		return
	}

	ctx = context.WithoutCancel(ctx)

	u.pending.Add(1)
	go func() {
		defer u.pending.Done()

		u.clickMu.Lock()
		defer u.clickMu.Unlock()

		if err := u.IncrementClicks(ctx, code); err != nil {
			u.logger.Warn("failed to record click",
				zap.String("code", code.String()),
				zap.Error(err),
			)
		}
	}()
}

func linkPayload(link model.ShortLink) map[string]any {
	payload := map[string]any{
		events.FieldShortCode: link.ShortCode.String(),
		"originalUrl":         link.OriginalURL,
		"active":              link.Active,
	}
	if link.Description != nil {
		payload["description"] = *link.Description
	}
	if link.ExpiresAt != nil {
		payload["expiresAt"] = link.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return payload
}
