package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = store.WorkspaceSchema.Columns

func newMockCatalog(t *testing.T, dialect Dialect) (*Catalog, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c, err := New(db, dialect)
	require.NoError(t, err)
	return c, mock
}

func TestCatalog_Query_BindsFilters(t *testing.T) {
	// Given
	c, mock := newMockCatalog(t, DollarDialect{})
	rows := sqlmock.NewRows([]string{"id", "name", "label"}).
		AddRow("W1", "Alpha", "L")
	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT * FROM WORKSPACE WHERE ID = $1 AND LABEL = $2`)).
		ExpectQuery().
		WithArgs("W1", "L").
		WillReturnRows(rows)

	// When
	recs, err := c.Query(context.Background(), "WORKSPACE", []store.ColumnValue{
		{Column: cols.ID, Value: "W1"},
		{Column: cols.Label, Value: "L"},
	})

	// Then
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, store.Record{"ID": "W1", "NAME": "Alpha", "LABEL": "L"}, recs[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalog_QueryAll(t *testing.T) {
	c, mock := newMockCatalog(t, QuestionDialect{})
	rows := sqlmock.NewRows([]string{"ID", "NAME", "LABEL"}).
		AddRow("W1", "Alpha", "L").
		AddRow(nil, "Beta", "L")
	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT * FROM WORKSPACE`)).
		ExpectQuery().
		WillReturnRows(rows)

	recs, err := c.QueryAll(context.Background(), "WORKSPACE")

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Nil(t, recs[1]["ID"])
	assert.Equal(t, "Beta", recs[1]["NAME"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalog_Query_EmptyResult(t *testing.T) {
	c, mock := newMockCatalog(t, QuestionDialect{})
	mock.ExpectPrepare(regexp.QuoteMeta(`SELECT * FROM WORKSPACE WHERE NAME = ?`)).
		ExpectQuery().
		WithArgs("Nope").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME", "LABEL"}))

	recs, err := c.Query(context.Background(), "WORKSPACE", []store.ColumnValue{{Column: cols.Name, Value: "Nope"}})

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestCatalog_Query_Errors(t *testing.T) {
	t.Run("query failure", func(t *testing.T) {
		c, mock := newMockCatalog(t, QuestionDialect{})
		mock.ExpectPrepare(regexp.QuoteMeta(`SELECT * FROM WORKSPACE`)).
			ExpectQuery().
			WillReturnError(errors.New("connection reset"))

		_, err := c.QueryAll(context.Background(), "WORKSPACE")

		assert.ErrorIs(t, err, domain.ErrCatalog)
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("prepare failure", func(t *testing.T) {
		c, mock := newMockCatalog(t, QuestionDialect{})
		mock.ExpectPrepare(regexp.QuoteMeta(`SELECT * FROM WORKSPACE`)).
			WillReturnError(errors.New("no such table"))

		_, err := c.QueryAll(context.Background(), "WORKSPACE")

		assert.ErrorIs(t, err, domain.ErrCatalog)
	})

	t.Run("invalid table name", func(t *testing.T) {
		c, _ := newMockCatalog(t, QuestionDialect{})

		_, err := c.QueryAll(context.Background(), "WORKSPACE; DROP TABLE X")

		assert.ErrorIs(t, err, domain.ErrCatalog)
		assert.ErrorContains(t, err, "invalid identifier")
	})
}

func TestCatalog_Insert(t *testing.T) {
	c, mock := newMockCatalog(t, DollarDialect{})
	mock.ExpectPrepare(regexp.QuoteMeta(`INSERT INTO WORKSPACE (ID, NAME, LABEL) VALUES ($1, $2, $3)`)).
		ExpectExec().
		WithArgs("T1", "Alpha", "L").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := c.Insert(context.Background(), "WORKSPACE", []store.ColumnValue{
		{Column: cols.ID, Value: "T1"},
		{Column: cols.Name, Value: "Alpha"},
		{Column: cols.Label, Value: "L"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalog_Update(t *testing.T) {
	t.Run("sets id by name", func(t *testing.T) {
		c, mock := newMockCatalog(t, DollarDialect{})
		mock.ExpectPrepare(regexp.QuoteMeta(`UPDATE WORKSPACE SET ID = $1 WHERE NAME = $2`)).
			ExpectExec().
			WithArgs("T1", "Alpha").
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := c.Update(context.Background(), "WORKSPACE",
			[]store.ColumnValue{{Column: cols.ID, Value: "T1"}},
			[]store.ColumnValue{{Column: cols.Name, Value: "Alpha"}},
		)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("refuses update without filters", func(t *testing.T) {
		c, mock := newMockCatalog(t, DollarDialect{})

		_, err := c.Update(context.Background(), "WORKSPACE",
			[]store.ColumnValue{{Column: cols.ID, Value: "T1"}},
			nil,
		)

		assert.ErrorIs(t, err, domain.ErrCatalog)
		assert.ErrorContains(t, err, "no filters")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
