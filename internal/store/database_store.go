package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/config/db"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation код SQLSTATE нарушения уникального ограничения
const uniqueViolation = "23505"

const linkColumns = `id, short_code, original_url, description, created_at, expires_at, click_count, active, created_by_ip`

// DatabaseStore реализует хранилище ссылок в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	return &DatabaseStore{
		pool: database.Pool(),
	}
}

// Save вставляет ссылку или обновляет существующую с тем же ID
func (ds *DatabaseStore) Save(ctx context.Context, link model.ShortLink) (model.ShortLink, error) {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}

	query := `
		INSERT INTO short_links (` + linkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			short_code   = EXCLUDED.short_code,
			original_url = EXCLUDED.original_url,
			description  = EXCLUDED.description,
			click_count  = EXCLUDED.click_count,
			active       = EXCLUDED.active
		RETURNING ` + linkColumns

	row := ds.pool.QueryRow(ctx, query,
		link.ID,
		string(link.ShortCode),
		link.OriginalURL,
		link.Description,
		link.CreatedAt,
		link.ExpiresAt,
		link.ClickCount,
		link.Active,
		link.CreatedByIP,
	)

	saved, err := scanLink(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ShortLink{}, fmt.Errorf("code %s: %w", link.ShortCode, ErrAlreadyExists)
		}
		return model.ShortLink{}, fmt.Errorf("failed to save link: %w", err)
	}

	return saved, nil
}

func (ds *DatabaseStore) FindByCode(ctx context.Context, code model.Code) (model.ShortLink, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM short_links
		WHERE short_code = $1
	`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShortLink{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.ShortLink{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) FindByID(ctx context.Context, id string) (model.ShortLink, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM short_links
		WHERE id = $1
	`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShortLink{}, fmt.Errorf("id %s: %w", id, ErrNotFound)
		}
		return model.ShortLink{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return link, nil
}

func (ds *DatabaseStore) DeleteByID(ctx context.Context, id string) error {
	tag, err := ds.pool.Exec(ctx, `DELETE FROM short_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("id %s: %w", id, ErrNotFound)
	}

	return nil
}

func (ds *DatabaseStore) FindAll(ctx context.Context) ([]model.ShortLink, error) {
	query := `
		SELECT ` + linkColumns + `
		FROM short_links
		ORDER BY created_at, id
	`

	rows, err := ds.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}

	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ShortLink, error) {
		return scanLink(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan links: %w", err)
	}

	return links, nil
}

func scanLink(row pgx.Row) (model.ShortLink, error) {
	var (
		link model.ShortLink
		code string
	)

	err := row.Scan(
		&link.ID,
		&code,
		&link.OriginalURL,
		&link.Description,
		&link.CreatedAt,
		&link.ExpiresAt,
		&link.ClickCount,
		&link.Active,
		&link.CreatedByIP,
	)
	if err != nil {
		return model.ShortLink{}, err
	}

	link.ShortCode = model.Code(code)
	link.CreatedAt = link.CreatedAt.UTC()
	if link.ExpiresAt != nil {
		expiresAt := link.ExpiresAt.UTC()
		link.ExpiresAt = &expiresAt
	}

	return link, nil
}
