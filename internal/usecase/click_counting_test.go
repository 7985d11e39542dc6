package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/service"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// slowStore добавляет задержку к чтению и записи, как у сетевого хранилища
type slowStore struct {
	*store.Store
	delay time.Duration
}

func (s *slowStore) FindByCode(ctx context.Context, code model.Code) (model.ShortLink, error) {
	time.Sleep(s.delay)
	return s.Store.FindByCode(ctx, code)
}

func (s *slowStore) Save(ctx context.Context, link model.ShortLink) (model.ShortLink, error) {
	time.Sleep(s.delay)
	return s.Store.Save(ctx, link)
}

func newSlowUsecase(t *testing.T) (*LinkUsecase, *slowStore) {
	t.Helper()

	slow := &slowStore{Store: store.NewStore(), delay: time.Millisecond}
	uc := NewLinkUsecase(repository.New(slow), newSequenceGenerator("a1b2c3d4"), &recordingPublisher{}, config.NewDefaultConfig(), zap.NewNop())

	return uc, slow
}

// TestResolveLink_BackToBackClicksThroughProcessor проверяет, что последовательные
// переходы не теряются при учёте через пул воркеров
func TestResolveLink_BackToBackClicksThroughProcessor(t *testing.T) {
	// Arrange
	const resolves = 100

	uc, slow := newSlowUsecase(t)
	cfg := config.NewDefaultConfig()
	processor := service.NewClickProcessor(cfg.Clicks.Workers, cfg.Clicks.QueueSize, zap.NewNop())
	processor.Start(context.Background(), uc.IncrementClicks)
	uc.SetClickScheduler(processor)

	link, err := uc.CreateLink(context.Background(), model.CreateLinkInput{OriginalURL: "https://example.com"})
	require.NoError(t, err)

	// Act
	for range resolves {
		_, err := uc.ResolveLink(context.Background(), link.ShortCode)
		require.NoError(t, err)
	}
	processor.Stop()
	uc.Wait()

	// Assert
	stored, err := slow.FindByCode(context.Background(), link.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(resolves), stored.ClickCount)
}

// TestResolveLink_BackToBackClicksWithoutProcessor проверяет то же для учёта в горутинах
func TestResolveLink_BackToBackClicksWithoutProcessor(t *testing.T) {
	// Arrange
	const resolves = 50

	uc, slow := newSlowUsecase(t)

	link, err := uc.CreateLink(context.Background(), model.CreateLinkInput{OriginalURL: "https://example.com"})
	require.NoError(t, err)

	// Act
	for range resolves {
		_, err := uc.ResolveLink(context.Background(), link.ShortCode)
		require.NoError(t, err)
	}
	uc.Wait()

	// Assert
	stored, err := slow.FindByCode(context.Background(), link.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(resolves), stored.ClickCount)
}
