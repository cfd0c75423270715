package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/de-tools/assistant-migrator/pkg/models/store"
)

// Dialect renders bind placeholders; n starts at 1.
type Dialect interface {
	Placeholder(n int) string
}

type DollarDialect struct{}

func (DollarDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

type QuestionDialect struct{}

func (QuestionDialect) Placeholder(int) string { return "?" }

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

func checkIdentifier(name string) error {
	if !identifierRe.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}

// whereClause renders "col1 = ? AND col2 = ?" starting at placeholder n.
func whereClause(filters []store.ColumnValue, d Dialect, n int) (string, []any, error) {
	parts := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for i, f := range filters {
		if err := checkIdentifier(f.Column.Name); err != nil {
			return "", nil, err
		}
		parts = append(parts, fmt.Sprintf("%s = %s", f.Column.Name, d.Placeholder(n+i)))
		args = append(args, f.Value)
	}
	return strings.Join(parts, " AND "), args, nil
}

func buildSelect(table string, filters []store.ColumnValue, d Dialect) (string, []any, error) {
	if err := checkIdentifier(table); err != nil {
		return "", nil, err
	}
	q := "SELECT * FROM " + table
	if len(filters) == 0 {
		return q, nil, nil
	}
	where, args, err := whereClause(filters, d, 1)
	if err != nil {
		return "", nil, err
	}
	return q + " WHERE " + where, args, nil
}

func buildInsert(table string, values []store.ColumnValue, d Dialect) (string, []any, error) {
	if err := checkIdentifier(table); err != nil {
		return "", nil, err
	}
	if len(values) == 0 {
		return "", nil, fmt.Errorf("insert into %s without values", table)
	}
	cols := make([]string, 0, len(values))
	marks := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for i, v := range values {
		if err := checkIdentifier(v.Column.Name); err != nil {
			return "", nil, err
		}
		cols = append(cols, v.Column.Name)
		marks = append(marks, d.Placeholder(i+1))
		args = append(args, v.Value)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(marks, ", "))
	return q, args, nil
}

// buildUpdate refuses to render an UPDATE without a WHERE clause.
func buildUpdate(table string, set, filters []store.ColumnValue, d Dialect) (string, []any, error) {
	if err := checkIdentifier(table); err != nil {
		return "", nil, err
	}
	if len(filters) == 0 {
		return "", nil, fmt.Errorf("update of %s with no filters", table)
	}
	if len(set) == 0 {
		return "", nil, fmt.Errorf("update of %s with no values", table)
	}
	assignments := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+len(filters))
	for i, v := range set {
		if err := checkIdentifier(v.Column.Name); err != nil {
			return "", nil, err
		}
		assignments = append(assignments, fmt.Sprintf("%s = %s", v.Column.Name, d.Placeholder(i+1)))
		args = append(args, v.Value)
	}
	where, whereArgs, err := whereClause(filters, d, len(set)+1)
	if err != nil {
		return "", nil, err
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(assignments, ", "), where)
	return q, append(args, whereArgs...), nil
}
