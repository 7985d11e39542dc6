package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/store"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// sequenceGenerator выдаёт коды по порядку, последний повторяется
type sequenceGenerator struct {
	mu    sync.Mutex
	codes []model.Code
	calls int
}

func newSequenceGenerator(codes ...model.Code) *sequenceGenerator {
	return &sequenceGenerator{codes: codes}
}

func (g *sequenceGenerator) GenerateCode() model.Code {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := min(g.calls, len(g.codes)-1)
	g.calls++
	return g.codes[idx]
}

func (g *sequenceGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type publishedEvent struct {
	name    string
	payload map[string]any
}

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, name string, payload map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, publishedEvent{name: name, payload: payload})
	return nil
}

func (p *recordingPublisher) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, len(p.events))
	for i, e := range p.events {
		names[i] = e.name
	}
	return names
}

func (p *recordingPublisher) Last(name string) (publishedEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := len(p.events) - 1; i >= 0; i-- {
		if p.events[i].name == name {
			return p.events[i], true
		}
	}
	return publishedEvent{}, false
}

type testEnv struct {
	usecase   *LinkUsecase
	store     *store.Store
	generator *sequenceGenerator
	publisher *recordingPublisher
}

// newTestEnv собирает usecase поверх in-memory хранилища с фиксированным временем
func newTestEnv(t *testing.T, codes ...model.Code) *testEnv {
	t.Helper()

	if len(codes) == 0 {
		codes = []model.Code{"a1b2c3d4"}
	}

	memStore := store.NewStore()
	generator := newSequenceGenerator(codes...)
	publisher := &recordingPublisher{}

	uc := NewLinkUsecase(repository.New(memStore), generator, publisher, config.NewDefaultConfig(), zap.NewNop())
	uc.now = func() time.Time { return testNow }
	t.Cleanup(uc.Wait)

	return &testEnv{
		usecase:   uc,
		store:     memStore,
		generator: generator,
		publisher: publisher,
	}
}

func ptr[T any](v T) *T {
	return &v
}
