package ai

import "encoding/json"

const (
	DefaultMaxTokens = 150

	ProcessTemperature  float32 = 0.3
	GenerateTemperature float32 = 0.7

	FallbackIntent = "unknown"
	FallbackAction = "Command not recognized"
)

// SystemPrompt asks the model for a structured reading of a voice command.
const SystemPrompt = `You are an intelligent voice control assistant.
Analyse the user's command and identify:
1. The main intent (e.g. open_application, search, type_text, run_action)
2. Relevant entities (e.g. application name, text to type, search term)
3. Any additional parameters

Reply in JSON with:
{
    "intent": "intent_name",
    "entities": {"key": "value"},
    "action": "description of the action to run",
    "response": "friendly reply for the user"
}`

type ProcessCommandRequest struct {
	Text *string `json:"text" validate:"required"`
}

type GenerateTextRequest struct {
	Prompt    *string `json:"prompt" validate:"required"`
	MaxTokens *int    `json:"max_tokens" validate:"omitempty,min=1"`
}

type CommandResult struct {
	Intent   string                 `json:"intent"`
	Entities map[string]interface{} `json:"entities"`
	Action   string                 `json:"action"`
	Response string                 `json:"response"`
}

type TextResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

type ProcessCommandResponse struct {
	Success bool          `json:"success"`
	Result  CommandResult `json:"result"`
}

type HealthResponse struct {
	Status   string          `json:"status"`
	Services map[string]bool `json:"services"`
}

// ParseCommandResult reads the model output as a CommandResult. Anything that
// is not a JSON object of that shape with an intent key yields the fallback
// result carrying the raw text as the response.
func ParseCommandResult(raw string) CommandResult {
	var result CommandResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil || !hasIntent(raw) {
		return CommandResult{
			Intent:   FallbackIntent,
			Entities: map[string]interface{}{},
			Action:   FallbackAction,
			Response: raw,
		}
	}

	if result.Entities == nil {
		result.Entities = map[string]interface{}{}
	}
	return result
}

func hasIntent(raw string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil || obj == nil {
		return false
	}
	_, ok := obj["intent"]
	return ok
}
