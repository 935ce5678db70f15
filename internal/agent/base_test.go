package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devteam-agent/internal/agent/agenttest"
	"github.com/jonathan/devteam-agent/internal/llm"
)

type persona struct {
	Name                 string   `json:"name" validate:"required"`
	Role                 string   `json:"role" validate:"required"`
	Goals                []string `json:"goals" validate:"required,min=1"`
	TechnicalProficiency string   `json:"technical_proficiency,omitempty"`
}

func TestCompletion_WrapsClientError(t *testing.T) {
	mock := &agenttest.MockLLMClient{
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}
	base := New("product_manager", mock)

	_, err := base.Completion(context.Background(), "prompt", "system", llm.TierStandard)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestCompletion_EmptyResponse(t *testing.T) {
	mock := &agenttest.MockLLMClient{
		GenerateContentFunc: func(context.Context, string, llm.ModelTier) (string, error) {
			return "   ", nil
		},
	}
	base := New("architect", mock)

	_, err := base.Completion(context.Background(), "prompt", "", llm.TierAdvanced)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestCompletion_PrependsSystemMessage(t *testing.T) {
	var seen string
	mock := &agenttest.MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			seen = prompt
			return "ok", nil
		},
	}
	base := New("planner", mock)

	_, err := base.Completion(context.Background(), "the prompt", "the system message", llm.TierStandard)
	require.NoError(t, err)
	assert.Equal(t, "the system message\n\nthe prompt", seen)
}

func TestDecodeJSON_Fenced(t *testing.T) {
	raw := "```json\n{\"name\": \"Dana\", \"role\": \"Developer\", \"goals\": [\"ship\"]}\n```"

	p, err := DecodeJSON[persona](raw)
	require.NoError(t, err)
	assert.Equal(t, "Dana", p.Name)
	assert.Equal(t, []string{"ship"}, p.Goals)
}

func TestDecodeJSON_InvalidJSON(t *testing.T) {
	_, err := DecodeJSON[persona](`{not json}`)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecodeJSON_MissingRequiredField(t *testing.T) {
	_, err := DecodeJSON[persona](`{"name": "Dana"}`)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestDecodeJSON_Empty(t *testing.T) {
	_, err := DecodeJSON[persona]("")

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestDecodeJSONSlice_Personas(t *testing.T) {
	raw := `[
		{"name": "Dana", "role": "Developer", "goals": ["ship fast"]},
		{"name": "Morgan", "role": "Ops Lead", "goals": ["stability"], "technical_proficiency": "High"}
	]`

	personas, err := DecodeJSONSlice[persona](raw)
	require.NoError(t, err)
	require.Len(t, personas, 2)
	assert.Equal(t, "Morgan", personas[1].Name)
	assert.Equal(t, "High", personas[1].TechnicalProficiency)
	assert.Empty(t, personas[0].TechnicalProficiency)
}

func TestDecodeJSONSlice_InvalidElement(t *testing.T) {
	raw := `[{"name": "Dana", "role": "Developer", "goals": ["ship"]}, {"name": "NoRole"}]`

	_, err := DecodeJSONSlice[persona](raw)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestFail_WrapsOnce(t *testing.T) {
	base := New("reviewer", &agenttest.MockLLMClient{})

	inner := &ParseError{Message: "bad payload"}
	err := base.Fail("review_code", inner)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "reviewer", stageErr.Role)

	// Re-wrapping returns the same stage error untouched
	again := base.Fail("review_code", err)
	assert.Same(t, err, again)

	// Taxonomy error stays reachable
	var parseErr *ParseError
	assert.ErrorAs(t, again, &parseErr)
}
