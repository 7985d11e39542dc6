// Package events публикует события жизненного цикла коротких ссылок.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// Имена событий жизненного цикла
const (
	EventCreated     = "Created"
	EventUpdated     = "Updated"
	EventDeactivated = "Deactivated"
	EventDeleted     = "Deleted"
	EventClicked     = "Clicked"
)

// Служебные поля сообщения
const (
	FieldEvent      = "event"
	FieldOccurredAt = "occurredAt"
	FieldShortCode  = "shortCode"
)

// Publisher отправляет события во внешнюю систему
type Publisher interface {
	Publish(ctx context.Context, name string, payload map[string]any) error
	Close() error
}

// Encode собирает JSON сообщение: поля payload плюс event и occurredAt
func Encode(name string, payload map[string]any, occurredAt time.Time) ([]byte, error) {
	message := make(map[string]any, len(payload)+2)
	maps.Copy(message, payload)
	message[FieldEvent] = name
	message[FieldOccurredAt] = occurredAt.UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event %s: %w", name, err)
	}

	return data, nil
}

// Decode разбирает сообщение, созданное Encode
func Decode(data []byte) (map[string]any, error) {
	var message map[string]any
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}

	return message, nil
}

// partitionKey ключ сообщения: все события одного кода попадают в одну партицию
func partitionKey(payload map[string]any) []byte {
	if code, ok := payload[FieldShortCode].(string); ok {
		return []byte(code)
	}
	return nil
}

// NopPublisher отбрасывает события
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, map[string]any) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
