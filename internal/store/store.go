package store

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("link not found")
	ErrAlreadyExists = errors.New("short code already exists")
)

// Store in-memory хранилище ссылок.
// Уникальность короткого кода поддерживается индексом codes.
type Store struct {
	links map[string]model.ShortLink
	codes map[model.Code]string
	mutex sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		links: make(map[string]model.ShortLink),
		codes: make(map[model.Code]string),
	}
}

// Save вставляет или обновляет ссылку по ID. Пустой ID означает новую запись.
func (s *Store) Save(_ context.Context, link model.ShortLink) (model.ShortLink, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.save(link)
}

func (s *Store) save(link model.ShortLink) (model.ShortLink, error) {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}

	if ownerID, taken := s.codes[link.ShortCode]; taken && ownerID != link.ID {
		return model.ShortLink{}, fmt.Errorf("code %s: %w", link.ShortCode, ErrAlreadyExists)
	}

	if prev, exists := s.links[link.ID]; exists && prev.ShortCode != link.ShortCode {
		delete(s.codes, prev.ShortCode)
	}

	s.links[link.ID] = cloneLink(link)
	s.codes[link.ShortCode] = link.ID

	return cloneLink(link), nil
}

func (s *Store) FindByCode(_ context.Context, code model.Code) (model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, ok := s.codes[code]
	if !ok {
		return model.ShortLink{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return cloneLink(s.links[id]), nil
}

func (s *Store) FindByID(_ context.Context, id string) (model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[id]
	if !ok {
		return model.ShortLink{}, fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	return cloneLink(link), nil
}

func (s *Store) DeleteByID(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok {
		return fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	delete(s.links, id)
	delete(s.codes, link.ShortCode)

	return nil
}

// FindAll возвращает все ссылки в порядке создания
func (s *Store) FindAll(_ context.Context) ([]model.ShortLink, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	links := make([]model.ShortLink, 0, len(s.links))
	for _, link := range s.links {
		links = append(links, cloneLink(link))
	}

	slices.SortFunc(links, func(a, b model.ShortLink) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return links, nil
}

// InitializeWith заполняет хранилище без проверки дубликатов.
// Используется для загрузки данных из файла.
func (s *Store) InitializeWith(links []model.ShortLink) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, link := range links {
		s.links[link.ID] = cloneLink(link)
		s.codes[link.ShortCode] = link.ID
	}
}

// snapshot возвращает копию записи с данным ID, если она есть
func (s *Store) snapshot(id string) (model.ShortLink, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	link, ok := s.links[id]
	return cloneLink(link), ok
}

// restore возвращает запись с данным ID к состоянию из snapshot
func (s *Store) restore(id string, prev model.ShortLink, existed bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if current, ok := s.links[id]; ok {
		delete(s.codes, current.ShortCode)
		delete(s.links, id)
	}

	if existed {
		s.links[id] = cloneLink(prev)
		s.codes[prev.ShortCode] = id
	}
}

// cloneLink копирует указатели, чтобы вызывающий код не мог изменить хранимую запись
func cloneLink(link model.ShortLink) model.ShortLink {
	if link.Description != nil {
		description := *link.Description
		link.Description = &description
	}
	if link.ExpiresAt != nil {
		expiresAt := *link.ExpiresAt
		link.ExpiresAt = &expiresAt
	}
	return link
}
