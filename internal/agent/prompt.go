package agent

import "encoding/json"

// MarshalForPrompt renders v as indented JSON for interpolation into a
// prompt. Marshal failures surface as ParseError at the call site instead of
// being silently embedded as empty text.
func MarshalForPrompt(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", &ParseError{Message: "failed to marshal prompt input", Cause: err}
	}
	return string(data), nil
}
