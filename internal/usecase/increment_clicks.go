package usecase

import (
	"context"

	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/model"
)

// IncrementClicks увеличивает счётчик переходов на единицу.
// Чтение и запись не атомарны: параллельные вызовы могут потерять инкремент.
func (u *LinkUsecase) IncrementClicks(ctx context.Context, code model.Code) (err error) {
	ctx, span := u.startSpan(ctx, "IncrementClicks", code)
	defer func() { u.finish(span, "click", err) }()

	link, err := u.findLink(ctx, code)
	if err != nil {
		return err
	}

	link.ClickCount++

	saved, err := u.saveLink(ctx, link)
	if err != nil {
		return err
	}

	u.notify(ctx, events.EventClicked, map[string]any{
		events.FieldShortCode: saved.ShortCode.String(),
		"clickCount":          saved.ClickCount,
	})

	return nil
}
