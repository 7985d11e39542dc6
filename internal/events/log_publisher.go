package events

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher пишет события в лог
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, name string, payload map[string]any) error {
	p.logger.Info("Sending event",
		zap.String("event", name),
		zap.Any("payload", payload),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
