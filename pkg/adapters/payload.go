package adapters

import "github.com/de-tools/assistant-migrator/pkg/models/domain"

// BuildUpdatePayload reshapes a workspace export into the update request for
// targetID. It is pure: the export is never modified and nothing is shared
// with it except opaque map values.
//
// Field mapping (export -> update):
//
//	name, description, language      copied
//	metadata, system_settings         copied
//	learning_opt_out                  copied
//	counterexamples[].text            copied; created/updated dropped
//	intents[].intent, .description    copied; created/updated dropped
//	intents[].examples[].text         copied with mentions; created/updated dropped
//	entities[].entity, .description,
//	  .metadata, .fuzzy_match         copied; created/updated dropped
//	entities[].values[].value, .type,
//	  .metadata, .synonyms, .patterns copied; created/updated dropped
//	dialog_nodes[] (every field)      copied; created/updated dropped
//	workspace_id, status,
//	  created, updated                dropped
//	(targetID)                        -> WorkspaceID
func BuildUpdatePayload(export domain.WorkspaceExport, targetID string) domain.UpdatePayload {
	p := BuildCreatePayload(export)
	p.WorkspaceID = targetID
	return p
}

// BuildCreatePayload is BuildUpdatePayload without a target identifier.
func BuildCreatePayload(export domain.WorkspaceExport) domain.UpdatePayload {
	return domain.UpdatePayload{
		Name:            export.Name,
		Description:     export.Description,
		Language:        export.Language,
		Intents:         mapIntents(export.Intents),
		Entities:        mapEntities(export.Entities),
		DialogNodes:     mapDialogNodes(export.DialogNodes),
		Counterexamples: mapCounterexamples(export.Counterexamples),
		Metadata:        export.Metadata,
		LearningOptOut:  export.LearningOptOut,
		SystemSettings:  export.SystemSettings,
	}
}

func mapIntents(in []domain.IntentExport) []domain.CreateIntent {
	out := make([]domain.CreateIntent, 0, len(in))
	for _, intent := range in {
		examples := make([]domain.CreateExample, 0, len(intent.Examples))
		for _, ex := range intent.Examples {
			examples = append(examples, domain.CreateExample{
				Text:     ex.Text,
				Mentions: append([]domain.Mention(nil), ex.Mentions...),
			})
		}
		out = append(out, domain.CreateIntent{
			Intent:      intent.Intent,
			Description: intent.Description,
			Examples:    examples,
		})
	}
	return out
}

func mapEntities(in []domain.EntityExport) []domain.CreateEntity {
	out := make([]domain.CreateEntity, 0, len(in))
	for _, entity := range in {
		values := make([]domain.CreateValue, 0, len(entity.Values))
		for _, v := range entity.Values {
			values = append(values, domain.CreateValue{
				Value:    v.Value,
				Metadata: v.Metadata,
				Type:     v.Type,
				Synonyms: append([]string(nil), v.Synonyms...),
				Patterns: append([]string(nil), v.Patterns...),
			})
		}
		out = append(out, domain.CreateEntity{
			Entity:      entity.Entity,
			Description: entity.Description,
			Metadata:    entity.Metadata,
			FuzzyMatch:  entity.FuzzyMatch,
			Values:      values,
		})
	}
	return out
}

func mapDialogNodes(in []domain.DialogNodeExport) []domain.CreateDialogNode {
	out := make([]domain.CreateDialogNode, 0, len(in))
	for _, n := range in {
		out = append(out, domain.CreateDialogNode{
			DialogNode:      n.DialogNode,
			Description:     n.Description,
			Conditions:      n.Conditions,
			Parent:          n.Parent,
			PreviousSibling: n.PreviousSibling,
			Output:          n.Output,
			Context:         n.Context,
			Metadata:        n.Metadata,
			NextStep:        n.NextStep,
			Title:           n.Title,
			Type:            n.Type,
			EventName:       n.EventName,
			Variable:        n.Variable,
			Actions:         n.Actions,
			DigressIn:       n.DigressIn,
			DigressOut:      n.DigressOut,
			DigressOutSlots: n.DigressOutSlots,
			UserLabel:       n.UserLabel,
			Disabled:        n.Disabled,
		})
	}
	return out
}

func mapCounterexamples(in []domain.CounterexampleExport) []domain.CreateCounterexample {
	out := make([]domain.CreateCounterexample, 0, len(in))
	for _, c := range in {
		out = append(out, domain.CreateCounterexample{Text: c.Text})
	}
	return out
}
