package model

import "time"

// Code короткий код ссылки
type Code string

func (c Code) String() string {
	return string(c)
}

// ShortLink представляет сохранённую короткую ссылку
type ShortLink struct {
	ID          string     `json:"id"`
	ShortCode   Code       `json:"shortCode"`
	OriginalURL string     `json:"originalUrl"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	ClickCount  int64      `json:"clickCount"`
	Active      bool       `json:"active"`
	CreatedByIP string     `json:"createdByIp,omitempty"`
}

// IsExpired сообщает, истёк ли срок действия ссылки на момент now.
// Ссылка без ExpiresAt не истекает никогда.
func (l ShortLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}

// IsResolvable сообщает, можно ли отдать оригинальный URL по этой ссылке
func (l ShortLink) IsResolvable(now time.Time) bool {
	return l.Active && !l.IsExpired(now)
}

// CreateLinkInput содержит параметры создания короткой ссылки
type CreateLinkInput struct {
	OriginalURL string
	Description *string
	ExpiresAt   *time.Time
	ClientIP    string
}

// LinkUpdate описывает изменение ссылки; nil поля остаются без изменений
type LinkUpdate struct {
	OriginalURL *string
	Description *string
}
