package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/store"
)

// ErrCodeTaken короткий код уже занят другой ссылкой
var ErrCodeTaken = fmt.Errorf("code is taken: %w", store.ErrAlreadyExists)

// Store порт хранения ссылок. Реализации: store.Store, store.FileStore,
// store.DatabaseStore, store.CachedStore.
type Store interface {
	Save(ctx context.Context, link model.ShortLink) (model.ShortLink, error)
	FindByCode(ctx context.Context, code model.Code) (model.ShortLink, error)
	DeleteByID(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]model.ShortLink, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// Save сохраняет ссылку. Конфликт короткого кода возвращается как ErrCodeTaken.
func (r Repository) Save(ctx context.Context, link model.ShortLink) (model.ShortLink, error) {
	saved, err := r.underlying.Save(ctx, link)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return model.ShortLink{}, fmt.Errorf("%w: %s", ErrCodeTaken, link.ShortCode)
		}
		return model.ShortLink{}, fmt.Errorf("failed to save link: %w", err)
	}

	return saved, nil
}

// FindByCode ищет ссылку по коду.
// Отсутствие записи не ошибка: возвращается found == false.
func (r Repository) FindByCode(ctx context.Context, code model.Code) (model.ShortLink, bool, error) {
	link, err := r.underlying.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.ShortLink{}, false, nil
		}
		return model.ShortLink{}, false, fmt.Errorf("failed to find link by code: %w", err)
	}

	return link, true, nil
}

func (r Repository) DeleteByID(ctx context.Context, id string) error {
	if err := r.underlying.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	return nil
}

func (r Repository) FindAll(ctx context.Context) ([]model.ShortLink, error) {
	links, err := r.underlying.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return links, nil
}
