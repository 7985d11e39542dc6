package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/events"
	"github.com/avc-dev/shortlinks/internal/mocks"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"github.com/avc-dev/shortlinks/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func createLink(t *testing.T, env *testEnv, input model.CreateLinkInput) model.ShortLink {
	t.Helper()

	link, err := env.usecase.CreateLink(context.Background(), input)
	require.NoError(t, err)
	return link
}

func storedLink(t *testing.T, env *testEnv, code model.Code) model.ShortLink {
	t.Helper()

	link, err := env.store.FindByCode(context.Background(), code)
	require.NoError(t, err)
	return link
}

func TestResolveLink_RoundTrip(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	link := createLink(t, env, model.CreateLinkInput{OriginalURL: "https://example.com/page"})

	// Act
	originalURL, err := env.usecase.ResolveLink(context.Background(), link.ShortCode)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/page", originalURL)

	env.usecase.Wait()
	assert.Equal(t, int64(1), storedLink(t, env, link.ShortCode).ClickCount)

	clicked, ok := env.publisher.Last(events.EventClicked)
	require.True(t, ok)
	assert.EqualValues(t, 1, clicked.payload["clickCount"])
}

func TestResolveLink_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		code  model.Code
		setup func(t *testing.T, env *testEnv)
	}{
		{
			name:  "Unknown code",
			code:  "nonexist",
			setup: func(*testing.T, *testEnv) {},
		},
		{
			name: "Inactive link",
			code: "a1b2c3d4",
			setup: func(t *testing.T, env *testEnv) {
				createLink(t, env, model.CreateLinkInput{OriginalURL: "https://example.com"})
				require.NoError(t, env.usecase.DeactivateLink(context.Background(), "a1b2c3d4"))
			},
		},
		{
			name: "Expired link",
			code: "a1b2c3d4",
			setup: func(t *testing.T, env *testEnv) {
				createLink(t, env, model.CreateLinkInput{
					OriginalURL: "https://example.com",
					ExpiresAt:   ptr(testNow.Add(time.Hour)),
				})
				env.usecase.now = func() time.Time { return testNow.Add(2 * time.Hour) }
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			env := newTestEnv(t)
			tt.setup(t, env)
			env.usecase.Wait()

			before, err := env.store.FindAll(context.Background())
			require.NoError(t, err)

			// Act
			_, err = env.usecase.ResolveLink(context.Background(), tt.code)

			// Assert
			require.ErrorIs(t, err, ErrURLNotFound)

			env.usecase.Wait()
			after, err := env.store.FindAll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, before, after, "resolve must not alter records")
		})
	}
}

func TestResolveLink_SequentialClicks(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	link := createLink(t, env, model.CreateLinkInput{OriginalURL: "https://example.com"})

	for i := 1; i <= 5; i++ {
		// Act
		_, err := env.usecase.ResolveLink(context.Background(), link.ShortCode)
		require.NoError(t, err)
		env.usecase.Wait()

		// Assert
		assert.Equal(t, int64(i), storedLink(t, env, link.ShortCode).ClickCount)
	}
}

// fakeScheduler запоминает коды вместо учёта переходов
type fakeScheduler struct {
	mu    sync.Mutex
	codes []model.Code
}

func (s *fakeScheduler) Schedule(code model.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes = append(s.codes, code)
}

func TestResolveLink_UsesClickScheduler(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	scheduler := &fakeScheduler{}
	env.usecase.SetClickScheduler(scheduler)
	link := createLink(t, env, model.CreateLinkInput{OriginalURL: "https://example.com"})

	// Act
	_, err := env.usecase.ResolveLink(context.Background(), link.ShortCode)

	// Assert
	require.NoError(t, err)
	env.usecase.Wait()
	assert.Equal(t, []model.Code{link.ShortCode}, scheduler.codes)
	assert.Zero(t, storedLink(t, env, link.ShortCode).ClickCount, "click is counted by the scheduler")
}

func TestIncrementClicks_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.usecase.IncrementClicks(context.Background(), "nonexist")

	assert.ErrorIs(t, err, ErrURLNotFound)
}

func TestIncrementClicks_CountsInactiveLinks(t *testing.T) {
	env := newTestEnv(t)
	link := createLink(t, env, model.CreateLinkInput{OriginalURL: "https://example.com"})
	require.NoError(t, env.usecase.DeactivateLink(context.Background(), link.ShortCode))

	err := env.usecase.IncrementClicks(context.Background(), link.ShortCode)

	require.NoError(t, err)
	assert.Equal(t, int64(1), storedLink(t, env, link.ShortCode).ClickCount)
}

func TestUpdateLink(t *testing.T) {
	tests := []struct {
		name            string
		code            model.Code
		update          model.LinkUpdate
		wantErr         error
		wantURL         string
		wantDescription *string
	}{
		{
			name:            "Description only keeps URL",
			code:            "a1b2c3d4",
			update:          model.LinkUpdate{Description: ptr("x")},
			wantURL:         "https://example.com",
			wantDescription: ptr("x"),
		},
		{
			name:            "URL only keeps description",
			code:            "a1b2c3d4",
			update:          model.LinkUpdate{OriginalURL: ptr("https://example.org/new")},
			wantURL:         "https://example.org/new",
			wantDescription: ptr("original"),
		},
		{
			name:            "Both fields",
			code:            "a1b2c3d4",
			update:          model.LinkUpdate{OriginalURL: ptr("https://example.org"), Description: ptr("")},
			wantURL:         "https://example.org",
			wantDescription: ptr(""),
		},
		{
			name:            "Invalid URL leaves record unmodified",
			code:            "a1b2c3d4",
			update:          model.LinkUpdate{OriginalURL: ptr("not a url"), Description: ptr("ignored")},
			wantErr:         ErrInvalidArgument,
			wantURL:         "https://example.com",
			wantDescription: ptr("original"),
		},
		{
			name:    "Unknown code",
			code:    "nonexist",
			update:  model.LinkUpdate{Description: ptr("x")},
			wantErr: ErrURLNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			env := newTestEnv(t)
			createLink(t, env, model.CreateLinkInput{
				OriginalURL: "https://example.com",
				Description: ptr("original"),
			})

			// Act
			updated, err := env.usecase.UpdateLink(context.Background(), tt.code, tt.update)

			// Assert
			env.usecase.Wait()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.NotContains(t, env.publisher.Names(), events.EventUpdated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantURL, updated.OriginalURL)
				assert.Contains(t, env.publisher.Names(), events.EventUpdated)
			}

			if tt.wantURL == "" {
				return
			}
			stored := storedLink(t, env, "a1b2c3d4")
			assert.Equal(t, tt.wantURL, stored.OriginalURL)
			assert.Equal(t, tt.wantDescription, stored.Description)
			assert.True(t, stored.Active)
			assert.Zero(t, stored.ClickCount)
		})
	}
}

func TestDeactivateLink(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	link := createLink(t, env, model.CreateLinkInput{OriginalURL: "https://example.com"})

	// Act
	err := env.usecase.DeactivateLink(ctx, link.ShortCode)

	// Assert
	require.NoError(t, err)
	assert.False(t, storedLink(t, env, link.ShortCode).Active)

	_, err = env.usecase.ResolveLink(ctx, link.ShortCode)
	assert.ErrorIs(t, err, ErrURLNotFound)

	// Повторная деактивация успешна и не публикует второе событие
	require.NoError(t, env.usecase.DeactivateLink(ctx, link.ShortCode))
	env.usecase.Wait()
	assert.ElementsMatch(t, []string{events.EventCreated, events.EventDeactivated}, env.publisher.Names())

	all, err := env.usecase.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "inactive links are still listed")
	assert.False(t, all[0].Active)
}

func TestDeactivateLink_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.usecase.DeactivateLink(context.Background(), "nonexist")

	assert.ErrorIs(t, err, ErrURLNotFound)
}

func TestDeleteLink(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	ctx := context.Background()
	link := createLink(t, env, model.CreateLinkInput{OriginalURL: "https://example.com"})

	// Act
	err := env.usecase.DeleteLink(ctx, link.ShortCode)

	// Assert
	require.NoError(t, err)

	_, err = env.usecase.ResolveLink(ctx, link.ShortCode)
	assert.ErrorIs(t, err, ErrURLNotFound)

	err = env.usecase.DeleteLink(ctx, link.ShortCode)
	assert.ErrorIs(t, err, ErrURLNotFound)

	all, err := env.usecase.ListLinks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	env.usecase.Wait()
	deleted, ok := env.publisher.Last(events.EventDeleted)
	require.True(t, ok)
	assert.Equal(t, "a1b2c3d4", deleted.payload[events.FieldShortCode])
}

func TestDeleteLink_RemovedConcurrently(t *testing.T) {
	// Arrange
	mockRepo := mocks.NewMockLinkRepository(t)
	link := model.ShortLink{ID: "id-1", ShortCode: "a1b2c3d4", OriginalURL: "https://example.com", Active: true}

	mockRepo.EXPECT().FindByCode(mock.Anything, model.Code("a1b2c3d4")).Return(link, true, nil).Once()
	mockRepo.EXPECT().DeleteByID(mock.Anything, "id-1").Return(store.ErrNotFound).Once()

	uc := NewLinkUsecase(mockRepo, newSequenceGenerator("unused00"), nil, config.NewDefaultConfig(), zap.NewNop())

	// Act
	err := uc.DeleteLink(context.Background(), "a1b2c3d4")

	// Assert
	assert.ErrorIs(t, err, ErrURLNotFound)
}

func TestListLinks(t *testing.T) {
	// Arrange
	env := newTestEnv(t, "a1b2c3d4", "b2c3d4e5", "c3d4e5f6")
	ctx := context.Background()

	for _, url := range []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"} {
		createLink(t, env, model.CreateLinkInput{OriginalURL: url})
	}
	require.NoError(t, env.usecase.DeactivateLink(ctx, "b2c3d4e5"))

	// Act
	links, err := env.usecase.ListLinks(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, links, 3)

	codes := make([]model.Code, len(links))
	for i, l := range links {
		codes[i] = l.ShortCode
	}
	assert.ElementsMatch(t, []model.Code{"a1b2c3d4", "b2c3d4e5", "c3d4e5f6"}, codes)
}

func TestInfrastructureFailures(t *testing.T) {
	storeErr := errors.New("database is down")

	tests := []struct {
		name  string
		setup func(repo *mocks.MockLinkRepository)
		call  func(uc *LinkUsecase) error
	}{
		{
			name: "Resolve lookup fails",
			setup: func(repo *mocks.MockLinkRepository) {
				repo.EXPECT().FindByCode(mock.Anything, model.Code("a1b2c3d4")).Return(model.ShortLink{}, false, storeErr).Once()
			},
			call: func(uc *LinkUsecase) error {
				_, err := uc.ResolveLink(context.Background(), "a1b2c3d4")
				return err
			},
		},
		{
			name: "Deactivate save fails",
			setup: func(repo *mocks.MockLinkRepository) {
				repo.EXPECT().FindByCode(mock.Anything, model.Code("a1b2c3d4")).
					Return(model.ShortLink{ID: "id-1", ShortCode: "a1b2c3d4", Active: true}, true, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(l model.ShortLink) bool { return !l.Active })).
					Return(model.ShortLink{}, storeErr).Once()
			},
			call: func(uc *LinkUsecase) error {
				return uc.DeactivateLink(context.Background(), "a1b2c3d4")
			},
		},
		{
			name: "Delete fails",
			setup: func(repo *mocks.MockLinkRepository) {
				repo.EXPECT().FindByCode(mock.Anything, model.Code("a1b2c3d4")).
					Return(model.ShortLink{ID: "id-1", ShortCode: "a1b2c3d4", Active: true}, true, nil).Once()
				repo.EXPECT().DeleteByID(mock.Anything, "id-1").Return(storeErr).Once()
			},
			call: func(uc *LinkUsecase) error {
				return uc.DeleteLink(context.Background(), "a1b2c3d4")
			},
		},
		{
			name: "Update save fails",
			setup: func(repo *mocks.MockLinkRepository) {
				repo.EXPECT().FindByCode(mock.Anything, model.Code("a1b2c3d4")).
					Return(model.ShortLink{ID: "id-1", ShortCode: "a1b2c3d4", OriginalURL: "https://example.com", Active: true}, true, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("model.ShortLink")).Return(model.ShortLink{}, storeErr).Once()
			},
			call: func(uc *LinkUsecase) error {
				_, err := uc.UpdateLink(context.Background(), "a1b2c3d4", model.LinkUpdate{Description: ptr("x")})
				return err
			},
		},
		{
			name: "List fails",
			setup: func(repo *mocks.MockLinkRepository) {
				repo.EXPECT().FindAll(mock.Anything).Return(nil, storeErr).Once()
			},
			call: func(uc *LinkUsecase) error {
				_, err := uc.ListLinks(context.Background())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockRepo := mocks.NewMockLinkRepository(t)
			mockPublisher := mocks.NewMockEventPublisher(t)
			tt.setup(mockRepo)
			uc := NewLinkUsecase(mockRepo, newSequenceGenerator("unused00"), mockPublisher, config.NewDefaultConfig(), zap.NewNop())

			// Act
			err := tt.call(uc)

			// Assert
			uc.Wait()
			require.ErrorIs(t, err, ErrServiceUnavailable)
			assert.ErrorIs(t, err, storeErr)
			mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPublisherFailureIsNotSurfaced(t *testing.T) {
	// Arrange
	core, logs := observer.New(zap.WarnLevel)
	mockPublisher := mocks.NewMockEventPublisher(t)
	mockPublisher.EXPECT().
		Publish(mock.Anything, events.EventCreated, mock.Anything).
		Return(errors.New("broker unavailable")).
		Once()

	uc := NewLinkUsecase(repository.New(store.NewStore()), newSequenceGenerator("a1b2c3d4"), mockPublisher, config.NewDefaultConfig(), zap.New(core))

	// Act
	link, err := uc.CreateLink(context.Background(), model.CreateLinkInput{OriginalURL: "https://example.com"})
	uc.Wait()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.Code("a1b2c3d4"), link.ShortCode)

	entries := logs.FilterMessage("failed to publish event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, events.EventCreated, entries[0].ContextMap()["event"])
}

func TestPublishUsesDetachedContext(t *testing.T) {
	// Arrange
	mockPublisher := mocks.NewMockEventPublisher(t)
	published := make(chan error, 1)
	mockPublisher.EXPECT().
		Publish(mock.Anything, events.EventCreated, mock.Anything).
		Run(func(ctx context.Context, _ string, _ map[string]interface{}) {
			_, hasDeadline := ctx.Deadline()
			if !hasDeadline {
				published <- errors.New("publish context has no timeout")
				return
			}
			published <- ctx.Err()
		}).
		Return(nil).
		Once()

	uc := NewLinkUsecase(repository.New(store.NewStore()), newSequenceGenerator("a1b2c3d4"), mockPublisher, config.NewDefaultConfig(), zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	// Act
	_, err := uc.CreateLink(ctx, model.CreateLinkInput{OriginalURL: "https://example.com"})
	cancel()
	uc.Wait()

	// Assert
	require.NoError(t, err)
	assert.NoError(t, <-published, "request cancellation must not abort publishing")
}

func TestOperationsAreTraced(t *testing.T) {
	// Arrange
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	env := newTestEnv(t)
	env.usecase.tracer = provider.Tracer("test")
	env.usecase.SetClickScheduler(&fakeScheduler{})
	ctx := context.Background()

	// Act
	createLink(t, env, model.CreateLinkInput{OriginalURL: "https://example.com"})
	_, err := env.usecase.ResolveLink(ctx, "a1b2c3d4")
	require.NoError(t, err)
	_, err = env.usecase.ResolveLink(ctx, "nonexist")
	require.Error(t, err)

	// Assert
	ended := recorder.Ended()
	require.Len(t, ended, 3)
	assert.Equal(t, "LinkUsecase.CreateLink", ended[0].Name())
	assert.Equal(t, "LinkUsecase.ResolveLink", ended[1].Name())
	assert.Equal(t, "LinkUsecase.ResolveLink", ended[2].Name())

	var codeAttr string
	for _, attr := range ended[0].Attributes() {
		if attr.Key == attrShortCode {
			codeAttr = attr.Value.AsString()
		}
	}
	assert.Equal(t, "a1b2c3d4", codeAttr)
}

// TestEndToEndScenario create → resolve → deactivate → resolve
func TestEndToEndScenario(t *testing.T) {
	env := newTestEnv(t, "a1b2c3d4")
	ctx := context.Background()

	created, err := env.usecase.CreateLink(ctx, model.CreateLinkInput{
		OriginalURL: "https://example.com",
		Description: ptr("demo"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.Code("a1b2c3d4"), created.ShortCode)
	assert.Equal(t, "https://example.com", created.OriginalURL)
	require.NotNil(t, created.Description)
	assert.Equal(t, "demo", *created.Description)
	assert.True(t, created.Active)
	assert.Zero(t, created.ClickCount)

	originalURL, err := env.usecase.ResolveLink(ctx, "a1b2c3d4")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", originalURL)
	env.usecase.Wait()
	assert.Equal(t, int64(1), storedLink(t, env, "a1b2c3d4").ClickCount)

	require.NoError(t, env.usecase.DeactivateLink(ctx, "a1b2c3d4"))

	_, err = env.usecase.ResolveLink(ctx, "a1b2c3d4")
	assert.ErrorIs(t, err, ErrURLNotFound)

	env.usecase.Wait()
	assert.ElementsMatch(t,
		[]string{events.EventCreated, events.EventClicked, events.EventDeactivated},
		env.publisher.Names(),
	)
}
