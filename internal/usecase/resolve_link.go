package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
)

// ResolveLink возвращает оригинальный URL активной неистёкшей ссылки
// и ставит учёт перехода в очередь
func (u *LinkUsecase) ResolveLink(ctx context.Context, code model.Code) (originalURL string, err error) {
	ctx, span := u.startSpan(ctx, "ResolveLink", code)
	defer func() { u.finish(span, "resolve", err) }()

	link, err := u.findLink(ctx, code)
	if err != nil {
		return "", err
	}

	if !link.IsResolvable(u.now()) {
		return "", fmt.Errorf("%w: %s", ErrURLNotFound, code)
	}

	u.scheduleClick(ctx, link.ShortCode)

	return link.OriginalURL, nil
}
