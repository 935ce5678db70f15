// Package agent provides the shared base for role agents: completion calls,
// response decoding with field validation, and the stage error taxonomy.
package agent

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jonathan/devteam-agent/internal/llm"
)

// validate is shared across decodes; validator.Validate is safe for concurrent use.
var validate = validator.New()

// Base wraps the completion client with the behavior every role agent shares.
type Base struct {
	Role   string
	Client llm.Client
	Logger zerolog.Logger
}

// New creates a role agent base around an existing client.
func New(role string, client llm.Client) *Base {
	return &Base{
		Role:   role,
		Client: client,
		Logger: log.With().Str("role", role).Logger(),
	}
}

// Completion issues a single completion call with an optional system preamble.
// Failures are wrapped as GenerationError; there is no retry.
func (b *Base) Completion(ctx context.Context, prompt, system string, tier llm.ModelTier) (string, error) {
	full := prompt
	if system != "" {
		full = system + "\n\n" + prompt
	}

	text, err := b.Client.GenerateContent(ctx, full, tier)
	if err != nil {
		b.Logger.Error().Err(err).Str("tier", string(tier)).Msg("completion failed")
		return "", &GenerationError{Message: "completion call failed", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &GenerationError{Message: "completion returned empty text"}
	}

	b.Logger.Debug().Str("tier", string(tier)).Int("response_len", len(text)).Msg("completion ok")
	return text, nil
}

// CompletionJSON issues a single completion call expecting a JSON payload.
func (b *Base) CompletionJSON(ctx context.Context, prompt, system string, tier llm.ModelTier) (string, error) {
	full := prompt
	if system != "" {
		full = system + "\n\n" + prompt
	}

	text, err := b.Client.GenerateJSON(ctx, full, tier)
	if err != nil {
		b.Logger.Error().Err(err).Str("tier", string(tier)).Msg("completion failed")
		return "", &GenerationError{Message: "completion call failed", Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &GenerationError{Message: "completion returned empty text"}
	}
	return text, nil
}

// Fail wraps err in the single role-scoped error a stage propagates.
// Already-wrapped stage errors pass through unchanged.
func (b *Base) Fail(stage string, err error) error {
	if se, ok := err.(*StageError); ok {
		return se
	}
	b.Logger.Error().Err(err).Str("stage", stage).Msg("stage failed")
	return &StageError{Role: b.Role, Stage: stage, Cause: err}
}

// ValidateStruct runs struct-tag validation on v, mapping the first field
// failure to a ValidationError. Used both on decoded responses and on
// artifacts assembled from several model calls.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{Field: fe.Namespace(), Message: "failed " + fe.Tag() + " check"}
		}
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

// DecodeJSON strips fence markers, parses raw into T, and validates struct
// tags. Malformed JSON yields ParseError; missing required fields yield
// ValidationError. Empty input is a validation failure, never a silent accept.
func DecodeJSON[T any](raw string) (*T, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if cleaned == "" {
		return nil, &ValidationError{Message: "empty response"}
	}

	var out T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}

	if err := ValidateStruct(&out); err != nil {
		return nil, err
	}

	return &out, nil
}

// DecodeJSONSlice behaves like DecodeJSON for responses that are JSON arrays.
func DecodeJSONSlice[T any](raw string) ([]T, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if cleaned == "" {
		return nil, &ValidationError{Message: "empty response"}
	}

	var out []T
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &ParseError{Message: "response is not a valid JSON array", Cause: err}
	}

	for i := range out {
		if err := ValidateStruct(&out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
