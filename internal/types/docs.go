package types

// APIEndpoint documents one HTTP endpoint of the generated system
type APIEndpoint struct {
	Method         string   `json:"method" validate:"required"`
	Path           string   `json:"path" validate:"required"`
	Description    string   `json:"description"`
	RequestFields  []string `json:"request_fields"`
	ResponseFields []string `json:"response_fields"`
	Errors         []string `json:"errors"`
}

// ComponentDoc documents one component's public surface
type ComponentDoc struct {
	Name            string   `json:"name" validate:"required"`
	Purpose         string   `json:"purpose"`
	PublicInterface []string `json:"public_interface"`
	Dependencies    []string `json:"dependencies"`
	UsageNotes      string   `json:"usage_notes"`
}

// ChangelogEntry is one released change set
type ChangelogEntry struct {
	Version string   `json:"version" validate:"required"`
	Date    string   `json:"date"`
	Changes []string `json:"changes" validate:"min=1"`
}

// DocumentationSet is the documenter's output artifact
type DocumentationSet struct {
	Endpoints  []APIEndpoint    `json:"endpoints"`
	Components []ComponentDoc   `json:"components"`
	Changelog  []ChangelogEntry `json:"changelog"`
}
