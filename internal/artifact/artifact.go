// Package artifact defines the artifact contract between pipeline stages:
// a named text blob (Markdown or JSON) produced by exactly one stage and
// consumed by zero or more downstream stages.
package artifact

import "encoding/json"

// Kind represents the artifact content type.
type Kind string

const (
	// KindJSON is a JSON-structured artifact validated by its consumer
	KindJSON Kind = "json"
	// KindMarkdown is a human-readable Markdown artifact with no enforced internal schema
	KindMarkdown Kind = "markdown"
	// KindText is generated source code or other plain text
	KindText Kind = "text"
)

// Artifact is an immutable stage output. Once written within a pipeline run
// it is never modified; repair-style stages emit a new artifact instead.
type Artifact struct {
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
}

// NewJSON marshals v with indentation and wraps it as a JSON artifact.
func NewJSON(name string, v any) (*Artifact, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, &IOError{Op: "marshal", Path: name, Cause: err}
	}
	return &Artifact{Name: name, Kind: KindJSON, Content: string(data)}, nil
}

// NewMarkdown wraps rendered markdown as an artifact.
func NewMarkdown(name, content string) *Artifact {
	return &Artifact{Name: name, Kind: KindMarkdown, Content: content}
}

// NewText wraps plain text, typically generated source code, as an artifact.
func NewText(name, content string) *Artifact {
	return &Artifact{Name: name, Kind: KindText, Content: content}
}

// Decode unmarshals a JSON artifact into v.
func (a *Artifact) Decode(v any) error {
	if err := json.Unmarshal([]byte(a.Content), v); err != nil {
		return &IOError{Op: "decode", Path: a.Name, Cause: err}
	}
	return nil
}
