package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
	"github.com/rs/zerolog"
)

// Catalog runs equality queries against a workspace catalog table.
// It is safe for concurrent use; every call prepares its own statement.
type Catalog struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, dialect Dialect) (*Catalog, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if dialect == nil {
		dialect = QuestionDialect{}
	}
	return &Catalog{db: db, dialect: dialect}, nil
}

// Open connects to the catalog described by settings and checks it is reachable.
func Open(ctx context.Context, registry Registry, settings Settings) (*Catalog, error) {
	logger := zerolog.Ctx(ctx)

	driver, err := registry.Get(settings.Driver)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfig, err)
	}
	dsn, err := driver.DSN(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %s dsn: %w", domain.ErrConfig, driver.Name, err)
	}

	logger.Info().Str("driver", driver.Name).Str("host", settings.Hostname).Msg("connecting to catalog")
	db, err := sql.Open(driver.SQLDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrCatalog, driver.Name, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", domain.ErrCatalog, settings.Hostname, err)
	}

	return New(db, driver.Dialect)
}

func (c *Catalog) Close() error {
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("failed to close catalog connection: %w", err)
	}
	return nil
}

func (c *Catalog) Query(ctx context.Context, table string, filters []store.ColumnValue) ([]store.Record, error) {
	q, args, err := buildSelect(table, filters, c.dialect)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalog, err)
	}
	return c.selectRecords(ctx, q, args)
}

func (c *Catalog) QueryAll(ctx context.Context, table string) ([]store.Record, error) {
	return c.Query(ctx, table, nil)
}

func (c *Catalog) Insert(ctx context.Context, table string, values []store.ColumnValue) error {
	q, args, err := buildInsert(table, values, c.dialect)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalog, err)
	}
	_, err = c.exec(ctx, q, args)
	return err
}

// Update sets columns on the rows matching filters and returns how many rows changed.
func (c *Catalog) Update(ctx context.Context, table string, set, filters []store.ColumnValue) (int64, error) {
	q, args, err := buildUpdate(table, set, filters, c.dialect)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrCatalog, err)
	}
	res, err := c.exec(ctx, q, args)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: rows affected: %w", domain.ErrCatalog, err)
	}
	return n, nil
}

func (c *Catalog) exec(ctx context.Context, q string, args []any) (sql.Result, error) {
	logger := zerolog.Ctx(ctx)

	stmt, err := c.db.PrepareContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: prepare statement: %w", domain.ErrCatalog, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close catalog statement")
		}
	}()

	logger.Debug().Str("query", q).Int("args", len(args)).Msg("executing catalog statement")
	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute statement: %w", domain.ErrCatalog, err)
	}
	return res, nil
}

func (c *Catalog) selectRecords(ctx context.Context, q string, args []any) ([]store.Record, error) {
	logger := zerolog.Ctx(ctx)

	stmt, err := c.db.PrepareContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: prepare statement: %w", domain.ErrCatalog, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close catalog statement")
		}
	}()

	logger.Debug().Str("query", q).Int("args", len(args)).Msg("querying catalog")
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %w", domain.ErrCatalog, err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close catalog rows")
		}
	}(rows)

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: read columns: %w", domain.ErrCatalog, err)
	}

	var records []store.Record
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: scan row: %w", domain.ErrCatalog, err)
		}

		rec := make(store.Record, len(cols))
		for i, col := range cols {
			rec[strings.ToUpper(col)] = normalizeValue(values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %w", domain.ErrCatalog, err)
	}

	return records, nil
}

// normalizeValue copies driver-owned byte slices, which are only valid until the next Scan.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
