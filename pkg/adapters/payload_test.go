package adapters

import (
	"encoding/json"
	"testing"

	"github.com/de-tools/assistant-migrator/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExport() domain.WorkspaceExport {
	fuzzy := true
	return domain.WorkspaceExport{
		Name:        "X",
		Description: "support bot",
		Language:    "en",
		WorkspaceID: "W-source",
		Status:      "Available",
		Created:     "2019-01-01T00:00:00.000Z",
		Updated:     "2019-02-01T00:00:00.000Z",
		Intents: []domain.IntentExport{
			{
				Intent:      "greeting",
				Description: "say hi",
				Examples: []domain.ExampleExport{
					{Text: "hello", Created: "2019-01-01T00:00:00.000Z"},
					{Text: "hi @name", Mentions: []domain.Mention{{Entity: "name", Location: []int{3, 8}}}},
				},
				Created: "2019-01-01T00:00:00.000Z",
			},
		},
		Entities: []domain.EntityExport{
			{
				Entity:     "city",
				FuzzyMatch: &fuzzy,
				Values: []domain.ValueExport{
					{Value: "Rome", Type: "synonyms", Synonyms: []string{"Roma"}, Updated: "x"},
				},
				Updated: "2019-01-01T00:00:00.000Z",
			},
		},
		DialogNodes: []domain.DialogNodeExport{
			{DialogNode: "root", Conditions: "#greeting", Output: map[string]any{"text": "Hi"}},
			{DialogNode: "child", Parent: "root", PreviousSibling: "", Title: "child", Created: "c"},
		},
		Counterexamples: []domain.CounterexampleExport{{Text: "buy a car", Created: "c"}},
		Metadata:        map[string]any{"api_version": map[string]any{"major_version": "v1"}},
		LearningOptOut:  true,
		SystemSettings:  map[string]any{"tooling": map[string]any{"store_generic_responses": true}},
	}
}

func TestBuildUpdatePayload_InjectsTargetID(t *testing.T) {
	p := BuildUpdatePayload(sampleExport(), "T1")

	assert.Equal(t, "T1", p.WorkspaceID)
	assert.Equal(t, "X", p.Name)
	assert.Equal(t, "support bot", p.Description)
	assert.Equal(t, "en", p.Language)
	assert.True(t, p.LearningOptOut)
	assert.Equal(t, sampleExport().Metadata, p.Metadata)
	assert.Equal(t, sampleExport().SystemSettings, p.SystemSettings)
}

func TestBuildUpdatePayload_ReshapesCollections(t *testing.T) {
	p := BuildUpdatePayload(sampleExport(), "T1")

	require.Len(t, p.Intents, 1)
	assert.Equal(t, domain.CreateIntent{
		Intent:      "greeting",
		Description: "say hi",
		Examples: []domain.CreateExample{
			{Text: "hello"},
			{Text: "hi @name", Mentions: []domain.Mention{{Entity: "name", Location: []int{3, 8}}}},
		},
	}, p.Intents[0])

	require.Len(t, p.Entities, 1)
	assert.Equal(t, "city", p.Entities[0].Entity)
	require.NotNil(t, p.Entities[0].FuzzyMatch)
	assert.True(t, *p.Entities[0].FuzzyMatch)
	assert.Equal(t, []domain.CreateValue{{Value: "Rome", Type: "synonyms", Synonyms: []string{"Roma"}}}, p.Entities[0].Values)

	require.Len(t, p.DialogNodes, 2)
	assert.Equal(t, "root", p.DialogNodes[0].DialogNode)
	assert.Equal(t, "#greeting", p.DialogNodes[0].Conditions)
	assert.Equal(t, "root", p.DialogNodes[1].Parent)

	assert.Equal(t, []domain.CreateCounterexample{{Text: "buy a car"}}, p.Counterexamples)
}

func TestBuildUpdatePayload_WireFormatHasNoReadOnlyFields(t *testing.T) {
	body, err := json.Marshal(BuildUpdatePayload(sampleExport(), "T1"))
	require.NoError(t, err)

	s := string(body)
	for _, field := range []string{`"created"`, `"updated"`, `"status"`, `"workspace_id"`} {
		assert.NotContains(t, s, field)
	}
	assert.Contains(t, s, `"intents":[{"intent":"greeting"`)
}

func TestBuildUpdatePayload_EmptyCollectionsSerializeAsArrays(t *testing.T) {
	body, err := json.Marshal(BuildUpdatePayload(domain.WorkspaceExport{Name: "empty", Language: "en"}, "T1"))
	require.NoError(t, err)

	assert.Contains(t, string(body), `"intents":[]`)
	assert.Contains(t, string(body), `"dialog_nodes":[]`)
}

func TestBuildUpdatePayload_DoesNotAliasExportSlices(t *testing.T) {
	export := sampleExport()
	p := BuildUpdatePayload(export, "T1")

	p.Intents[0].Examples[0].Text = "changed"
	p.Entities[0].Values[0].Synonyms[0] = "changed"

	assert.Equal(t, "hello", export.Intents[0].Examples[0].Text)
	assert.Equal(t, "Roma", export.Entities[0].Values[0].Synonyms[0])
}

func TestBuildCreatePayload_HasNoWorkspaceID(t *testing.T) {
	p := BuildCreatePayload(sampleExport())
	assert.Empty(t, p.WorkspaceID)
	assert.Equal(t, "X", p.Name)
}
