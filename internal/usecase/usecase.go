package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/metrics"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/telemetry"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkRepository
//go:generate mockery --name EventPublisher

// LinkRepository порт хранения ссылок
type LinkRepository interface {
	Save(ctx context.Context, link model.ShortLink) (model.ShortLink, error)
	FindByCode(ctx context.Context, code model.Code) (model.ShortLink, bool, error)
	DeleteByID(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]model.ShortLink, error)
}

// CodeGenerator источник коротких кодов
type CodeGenerator interface {
	GenerateCode() model.Code
}

// EventPublisher порт публикации событий жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, name string, payload map[string]any) error
}

// ClickScheduler ставит учёт перехода в очередь без ожидания
type ClickScheduler interface {
	Schedule(code model.Code)
}

const defaultPublishTimeout = 5 * time.Second

// LinkUsecase управляет жизненным циклом коротких ссылок.
// Состояния между вызовами не хранит: все записи принадлежат хранилищу.
type LinkUsecase struct {
	repo      LinkRepository
	generator CodeGenerator
	publisher EventPublisher
	clicks    ClickScheduler
	cfg       *config.Config
	logger    *zap.Logger
	tracer    trace.Tracer
	now       func() time.Time

	pending sync.WaitGroup
	clickMu sync.Mutex
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(repo LinkRepository, generator CodeGenerator, publisher EventPublisher, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:      repo,
		generator: generator,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		tracer:    telemetry.Tracer(),
		now:       time.Now,
	}
}

// SetClickScheduler подключает очередь учёта переходов.
// Без неё каждый переход учитывается в отдельной горутине.
func (u *LinkUsecase) SetClickScheduler(clicks ClickScheduler) {
	u.clicks = clicks
}

// Wait блокирует до завершения фоновых публикаций событий и учёта переходов
func (u *LinkUsecase) Wait() {
	u.pending.Wait()
}

func (u *LinkUsecase) startSpan(ctx context.Context, name string, code model.Code) (context.Context, trace.Span) {
	ctx, span := u.tracer.Start(ctx, "LinkUsecase."+name)
	if code != "" {
		span.SetAttributes(attrShortCode.String(code.String()))
	}
	return ctx, span
}

// finish закрывает спан и учитывает исход операции в метриках
func (u *LinkUsecase) finish(span trace.Span, operation string, err error) {
	result := resultLabel(err)
	metrics.LinkOperations.WithLabelValues(operation, result).Inc()

	if err != nil && result == "error" {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid"
	case errors.Is(err, ErrURLNotFound):
		return "not_found"
	case errors.Is(err, ErrCodeConflict):
		return "conflict"
	default:
		return "error"
	}
}
