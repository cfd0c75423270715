package domain

import "encoding/json"

// WorkspaceExport is the read shape returned by a "get workspace" call with
// export=true. Fields the service computes (workspace_id, status, created,
// updated) are decoded but never sent back. Raw holds the body as the
// service returned it, including fields not modelled here.
type WorkspaceExport struct {
	Raw json.RawMessage `json:"-"`

	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Language        string                 `json:"language"`
	WorkspaceID     string                 `json:"workspace_id,omitempty"`
	Status          string                 `json:"status,omitempty"`
	Created         string                 `json:"created,omitempty"`
	Updated         string                 `json:"updated,omitempty"`
	Intents         []IntentExport         `json:"intents"`
	Entities        []EntityExport         `json:"entities"`
	DialogNodes     []DialogNodeExport     `json:"dialog_nodes"`
	Counterexamples []CounterexampleExport `json:"counterexamples"`
	Metadata        map[string]any         `json:"metadata,omitempty"`
	LearningOptOut  bool                   `json:"learning_opt_out"`
	SystemSettings  map[string]any         `json:"system_settings,omitempty"`
}

type IntentExport struct {
	Intent      string          `json:"intent"`
	Description string          `json:"description,omitempty"`
	Examples    []ExampleExport `json:"examples"`
	Created     string          `json:"created,omitempty"`
	Updated     string          `json:"updated,omitempty"`
}

type ExampleExport struct {
	Text     string    `json:"text"`
	Mentions []Mention `json:"mentions,omitempty"`
	Created  string    `json:"created,omitempty"`
	Updated  string    `json:"updated,omitempty"`
}

// Mention marks an entity inside an example utterance; Location is [start, end).
type Mention struct {
	Entity   string `json:"entity"`
	Location []int  `json:"location"`
}

type EntityExport struct {
	Entity      string         `json:"entity"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	FuzzyMatch  *bool          `json:"fuzzy_match,omitempty"`
	Values      []ValueExport  `json:"values"`
	Created     string         `json:"created,omitempty"`
	Updated     string         `json:"updated,omitempty"`
}

type ValueExport struct {
	Value    string         `json:"value"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Type     string         `json:"type,omitempty"`
	Synonyms []string       `json:"synonyms,omitempty"`
	Patterns []string       `json:"patterns,omitempty"`
	Created  string         `json:"created,omitempty"`
	Updated  string         `json:"updated,omitempty"`
}

// DialogNodeExport is one node of the dialog tree. Parent and PreviousSibling
// link nodes by their DialogNode id.
type DialogNodeExport struct {
	DialogNode      string           `json:"dialog_node"`
	Description     string           `json:"description,omitempty"`
	Conditions      string           `json:"conditions,omitempty"`
	Parent          string           `json:"parent,omitempty"`
	PreviousSibling string           `json:"previous_sibling,omitempty"`
	Output          map[string]any   `json:"output,omitempty"`
	Context         map[string]any   `json:"context,omitempty"`
	Metadata        map[string]any   `json:"metadata,omitempty"`
	NextStep        map[string]any   `json:"next_step,omitempty"`
	Title           string           `json:"title,omitempty"`
	Type            string           `json:"type,omitempty"`
	EventName       string           `json:"event_name,omitempty"`
	Variable        string           `json:"variable,omitempty"`
	Actions         []map[string]any `json:"actions,omitempty"`
	DigressIn       string           `json:"digress_in,omitempty"`
	DigressOut      string           `json:"digress_out,omitempty"`
	DigressOutSlots string           `json:"digress_out_slots,omitempty"`
	UserLabel       string           `json:"user_label,omitempty"`
	Disabled        *bool            `json:"disabled,omitempty"`
	Created         string           `json:"created,omitempty"`
	Updated         string           `json:"updated,omitempty"`
}

type CounterexampleExport struct {
	Text    string `json:"text"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}
