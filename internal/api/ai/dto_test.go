package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommandResult(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CommandResult
	}{
		{
			name: "structured reply",
			raw:  `{"intent":"open_app","entities":{"app":"browser"},"action":"open the browser","response":"Opening"}`,
			want: CommandResult{
				Intent:   "open_app",
				Entities: map[string]interface{}{"app": "browser"},
				Action:   "open the browser",
				Response: "Opening",
			},
		},
		{
			name: "missing entities become empty",
			raw:  `{"intent":"search","action":"search","response":"ok"}`,
			want: CommandResult{Intent: "search", Entities: map[string]interface{}{}, Action: "search", Response: "ok"},
		},
		{
			name: "plain text",
			raw:  "Sure, opening it now!",
			want: CommandResult{Intent: FallbackIntent, Entities: map[string]interface{}{}, Action: FallbackAction, Response: "Sure, opening it now!"},
		},
		{
			name: "json array",
			raw:  `["a"]`,
			want: CommandResult{Intent: FallbackIntent, Entities: map[string]interface{}{}, Action: FallbackAction, Response: `["a"]`},
		},
		{
			name: "json null",
			raw:  `null`,
			want: CommandResult{Intent: FallbackIntent, Entities: map[string]interface{}{}, Action: FallbackAction, Response: `null`},
		},
		{
			name: "wrong field types",
			raw:  `{"intent":1,"entities":"x"}`,
			want: CommandResult{Intent: FallbackIntent, Entities: map[string]interface{}{}, Action: FallbackAction, Response: `{"intent":1,"entities":"x"}`},
		},
		{
			name: "object without intent",
			raw:  `{"foo":1}`,
			want: CommandResult{Intent: FallbackIntent, Entities: map[string]interface{}{}, Action: FallbackAction, Response: `{"foo":1}`},
		},
		{
			name: "empty object",
			raw:  `{}`,
			want: CommandResult{Intent: FallbackIntent, Entities: map[string]interface{}{}, Action: FallbackAction, Response: `{}`},
		},
		{
			name: "reply fields without intent",
			raw:  `{"action":"open","response":"Opening"}`,
			want: CommandResult{Intent: FallbackIntent, Entities: map[string]interface{}{}, Action: FallbackAction, Response: `{"action":"open","response":"Opening"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommandResult(tt.raw))
		})
	}
}
