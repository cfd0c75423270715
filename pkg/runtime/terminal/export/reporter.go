package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/olekukonko/tablewriter"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: unknown output format %q (expected table or json)", domain.ErrConfig, s)
}

// Reporter prints command results to the terminal.
type Reporter struct {
	writer io.Writer
	format Format
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer, format: FormatTable}
}

func (r *Reporter) SetFormat(f Format) {
	r.format = f
}

func (r *Reporter) Migration(report *domain.MigrationReport) error {
	if r.format == FormatJSON {
		return r.json(report)
	}

	_, err := fmt.Fprintf(r.writer, "Run %s: %d of %d workspaces applied in %s\n\n",
		report.RunID, len(report.Applied), report.Candidates, report.Duration().Round(time.Millisecond))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(report.Applied))
	for _, u := range report.Applied {
		rows = append(rows, []string{u.Name, u.SourceID, u.TargetID, u.Status})
	}
	r.table([]string{"NAME", "SOURCE ID", "TARGET ID", "STATUS"}, rows)
	return nil
}

func (r *Reporter) Summaries(summaries []domain.WorkspaceSummary) error {
	if r.format == FormatJSON {
		return r.json(summaries)
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.ID, s.Name})
	}
	r.table([]string{"ID", "NAME"}, rows)
	return nil
}

func (r *Reporter) Catalog(records []domain.WorkspaceRecord) error {
	if r.format == FormatJSON {
		type row struct {
			ID    *string `json:"id"`
			Name  string  `json:"name"`
			Label string  `json:"label"`
		}
		out := make([]row, 0, len(records))
		for _, rec := range records {
			out = append(out, row{ID: rec.ID, Name: rec.Name, Label: rec.Label})
		}
		return r.json(out)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		id := rec.IDOrEmpty()
		if !rec.HasID() {
			id = "-"
		}
		rows = append(rows, []string{id, rec.Name, rec.Label})
	}
	r.table([]string{"ID", "NAME", "LABEL"}, rows)
	return nil
}

func (r *Reporter) Result(action string, res domain.WorkspaceResult) error {
	if r.format == FormatJSON {
		return r.json(res)
	}
	_, err := fmt.Fprintf(r.writer, "%s workspace %s (%s, %s) status=%s\n", action, res.ID, res.Name, res.Language, res.Status)
	return err
}

// Message prints a single confirmation line.
func (r *Reporter) Message(format string, args ...any) error {
	_, err := fmt.Fprintf(r.writer, format+"\n", args...)
	return err
}

func (r *Reporter) table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(r.writer)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

func (r *Reporter) json(v any) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
