package adapters

import (
	"testing"

	"github.com/de-tools/assistant-migrator/pkg/models/api"
	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/de-tools/assistant-migrator/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStoreRecordToWorkspace(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		ws, err := MapStoreRecordToWorkspace(store.Record{"ID": "W1", "NAME": "Alpha", "LABEL": "L"})

		require.NoError(t, err)
		require.NotNil(t, ws.ID)
		assert.Equal(t, "W1", *ws.ID)
		assert.Equal(t, "Alpha", ws.Name)
		assert.Equal(t, "L", ws.Label)
	})

	t.Run("byte values", func(t *testing.T) {
		ws, err := MapStoreRecordToWorkspace(store.Record{"ID": []byte("W1"), "NAME": []byte("Alpha"), "LABEL": []byte("L")})

		require.NoError(t, err)
		assert.Equal(t, "W1", ws.IDOrEmpty())
	})

	t.Run("null id is absent", func(t *testing.T) {
		ws, err := MapStoreRecordToWorkspace(store.Record{"ID": nil, "NAME": "Alpha", "LABEL": "L"})

		require.NoError(t, err)
		assert.False(t, ws.HasID())
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		_, err := MapStoreRecordToWorkspace(store.Record{"ID": "", "NAME": "Alpha", "LABEL": "L"})
		assert.Error(t, err)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		_, err := MapStoreRecordToWorkspace(store.Record{"ID": "W1", "LABEL": "L"})
		assert.ErrorContains(t, err, "NAME")
	})

	t.Run("wrong type is rejected", func(t *testing.T) {
		_, err := MapStoreRecordToWorkspace(store.Record{"ID": "W1", "NAME": 42, "LABEL": "L"})
		assert.ErrorContains(t, err, "expected string")
	})
}

func TestMapStoreRecordsToWorkspaces_AllOrNothing(t *testing.T) {
	recs := []store.Record{
		{"ID": "W1", "NAME": "Alpha", "LABEL": "L"},
		{"ID": "W2", "LABEL": "L"},
	}

	out, err := MapStoreRecordsToWorkspaces(recs)

	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestMapDomainWorkspaceToStoreValues(t *testing.T) {
	id := "T1"
	values := MapDomainWorkspaceToStoreValues(domain.WorkspaceRecord{ID: &id, Name: "Alpha", Label: "L"})
	require.Len(t, values, 3)
	assert.Equal(t, "ID", values[0].Column.Name)

	values = MapDomainWorkspaceToStoreValues(domain.WorkspaceRecord{Name: "Alpha", Label: "L"})
	require.Len(t, values, 2)
	assert.Equal(t, "NAME", values[0].Column.Name)
}

func TestMapAPIWorkspace(t *testing.T) {
	ws := api.Workspace{Name: "Alpha", WorkspaceID: "W1", Language: "en", Status: "Training"}

	assert.Equal(t, domain.WorkspaceSummary{ID: "W1", Name: "Alpha"}, MapAPIWorkspaceToSummary(ws))
	assert.Equal(t, domain.WorkspaceResult{ID: "W1", Name: "Alpha", Language: "en", Status: "Training"}, MapAPIWorkspaceToResult(ws))
}
