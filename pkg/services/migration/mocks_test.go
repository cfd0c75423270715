package migration

import (
	"context"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
	"github.com/stretchr/testify/mock"
)

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) Query(ctx context.Context, table string, filters []store.ColumnValue) ([]store.Record, error) {
	args := m.Called(ctx, table, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Record), args.Error(1)
}

func (m *mockCatalog) QueryAll(ctx context.Context, table string) ([]store.Record, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Record), args.Error(1)
}

func (m *mockCatalog) Insert(ctx context.Context, table string, values []store.ColumnValue) error {
	args := m.Called(ctx, table, values)
	return args.Error(0)
}

type mockService struct{ mock.Mock }

func (m *mockService) ListSummaries(ctx context.Context) ([]domain.WorkspaceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkspaceSummary), args.Error(1)
}

func (m *mockService) GetExport(ctx context.Context, id string) (domain.WorkspaceExport, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.WorkspaceExport), args.Error(1)
}

func (m *mockService) UpdateByID(ctx context.Context, payload domain.UpdatePayload) (domain.WorkspaceResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.WorkspaceResult), args.Error(1)
}

func (m *mockService) Create(ctx context.Context, payload domain.UpdatePayload) (domain.WorkspaceResult, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(domain.WorkspaceResult), args.Error(1)
}

func (m *mockService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSink struct{ mock.Mock }

func (m *mockSink) Write(ctx context.Context, name string, payload []byte) error {
	args := m.Called(ctx, name, payload)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func record(id any, name, label string) store.Record {
	return store.Record{"ID": id, "NAME": name, "LABEL": label}
}

func candidate(id, name string) domain.WorkspaceRecord {
	return domain.WorkspaceRecord{ID: strPtr(id), Name: name, Label: "L"}
}

func nameFilter(name string) []store.ColumnValue {
	return []store.ColumnValue{{Column: store.WorkspaceSchema.Columns.Name, Value: name}}
}
