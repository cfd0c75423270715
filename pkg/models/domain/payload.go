package domain

// UpdatePayload is the write shape accepted by create and update calls.
// WorkspaceID addresses the workspace to update and travels in the request
// path, not in the body; it is empty for create calls.
type UpdatePayload struct {
	WorkspaceID     string                 `json:"-"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Language        string                 `json:"language"`
	Intents         []CreateIntent         `json:"intents"`
	Entities        []CreateEntity         `json:"entities"`
	DialogNodes     []CreateDialogNode     `json:"dialog_nodes"`
	Counterexamples []CreateCounterexample `json:"counterexamples"`
	Metadata        map[string]any         `json:"metadata,omitempty"`
	LearningOptOut  bool                   `json:"learning_opt_out"`
	SystemSettings  map[string]any         `json:"system_settings,omitempty"`
}

type CreateIntent struct {
	Intent      string          `json:"intent"`
	Description string          `json:"description,omitempty"`
	Examples    []CreateExample `json:"examples"`
}

type CreateExample struct {
	Text     string    `json:"text"`
	Mentions []Mention `json:"mentions,omitempty"`
}

type CreateEntity struct {
	Entity      string         `json:"entity"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	FuzzyMatch  *bool          `json:"fuzzy_match,omitempty"`
	Values      []CreateValue  `json:"values"`
}

type CreateValue struct {
	Value    string         `json:"value"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Type     string         `json:"type,omitempty"`
	Synonyms []string       `json:"synonyms,omitempty"`
	Patterns []string       `json:"patterns,omitempty"`
}

type CreateDialogNode struct {
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
}

type CreateCounterexample struct {
	Text string `json:"text"`
}
