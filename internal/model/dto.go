package model

import "time"

// ShortenRequest тело запроса на создание короткой ссылки
type ShortenRequest struct {
	OriginalURL string     `json:"originalUrl" validate:"required,max=2048"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=512"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// UpdateRequest тело запроса на изменение ссылки
type UpdateRequest struct {
	OriginalURL *string `json:"originalUrl,omitempty" validate:"omitempty,max=2048"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=512"`
}

// ShortLinkResponse представление ссылки в ответах API
type ShortLinkResponse struct {
	ShortCode   string     `json:"shortCode"`
	ShortURL    string     `json:"shortUrl"`
	OriginalURL string     `json:"originalUrl"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	ClickCount  int64      `json:"clickCount"`
	Active      bool       `json:"active"`
}

// ResolveResponse ответ на запрос разрешения кода
type ResolveResponse struct {
	OriginalURL string `json:"originalUrl"`
}

// MessageResponse простой ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse ответ с описанием ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

// LinkEntry запись ссылки в файловом хранилище
type LinkEntry struct {
	ID          string     `json:"uuid"`
	ShortCode   string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ClickCount  int64      `json:"click_count"`
	Active      bool       `json:"active"`
	CreatedByIP string     `json:"created_by_ip,omitempty"`
}

// ToEntry конвертирует ссылку в запись файлового хранилища
func (l ShortLink) ToEntry() LinkEntry {
	return LinkEntry{
		ID:          l.ID,
		ShortCode:   string(l.ShortCode),
		OriginalURL: l.OriginalURL,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		ExpiresAt:   l.ExpiresAt,
		ClickCount:  l.ClickCount,
		Active:      l.Active,
		CreatedByIP: l.CreatedByIP,
	}
}

// ToShortLink конвертирует запись файлового хранилища обратно в ссылку
func (e LinkEntry) ToShortLink() ShortLink {
	return ShortLink{
		ID:          e.ID,
		ShortCode:   Code(e.ShortCode),
		OriginalURL: e.OriginalURL,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		ExpiresAt:   e.ExpiresAt,
		ClickCount:  e.ClickCount,
		Active:      e.Active,
		CreatedByIP: e.CreatedByIP,
	}
}
