package toolcall

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantOK     bool
		wantName   string
		wantParams map[string]any
	}{
		{
			name:       "compact directive",
			text:       `<tool_call>{"name":"get_weather","parameters":{"location":"Tokyo"}}</tool_call>`,
			wantOK:     true,
			wantName:   "get_weather",
			wantParams: map[string]any{"location": "Tokyo"},
		},
		{
			name:       "multi-line with surrounding prose",
			text:       "Let me check.\n<tool_call>\n{\"name\": \"get_flight_prices\",\n \"parameters\": {\"origin\": \"NYC\", \"destination\": \"Paris\", \"date\": \"June 15\"}}\n</tool_call>\nOne moment.",
			wantOK:     true,
			wantName:   "get_flight_prices",
			wantParams: map[string]any{"origin": "NYC", "destination": "Paris", "date": "June 15"},
		},
		{
			name:       "parameters omitted",
			text:       `<tool_call>{"name":"ping"}</tool_call>`,
			wantOK:     true,
			wantName:   "ping",
			wantParams: map[string]any{},
		},
		{
			name:       "parameters null",
			text:       `<tool_call>{"name":"ping","parameters":null}</tool_call>`,
			wantOK:     true,
			wantName:   "ping",
			wantParams: map[string]any{},
		},
		{
			name:       "numbers decode as json.Number",
			text:       `<tool_call>{"name":"divide_by_secret_number","parameters":{"numerator":10}}</tool_call>`,
			wantOK:     true,
			wantName:   "divide_by_secret_number",
			wantParams: map[string]any{"numerator": json.Number("10")},
		},
		{
			name:       "large integers keep precision",
			text:       `<tool_call>{"name":"lookup","parameters":{"id":9007199254740993,"nested":{"n":1.5}}}</tool_call>`,
			wantOK:     true,
			wantName:   "lookup",
			wantParams: map[string]any{"id": json.Number("9007199254740993"), "nested": map[string]any{"n": json.Number("1.5")}},
		},
		{
			name:       "first of several directives",
			text:       `<tool_call>{"name":"a"}</tool_call> and <tool_call>{"name":"b"}</tool_call>`,
			wantOK:     true,
			wantName:   "a",
			wantParams: map[string]any{},
		},
		{name: "plain prose", text: "It's sunny and 72°F in Tokyo."},
		{name: "empty", text: ""},
		{name: "unterminated", text: `<tool_call>{"name":"a"}`},
		{name: "invalid json", text: `<tool_call>{name: a}</tool_call>`},
		{name: "not an object", text: `<tool_call>["a"]</tool_call>`},
		{name: "missing name", text: `<tool_call>{"parameters":{}}</tool_call>`},
		{name: "empty name", text: `<tool_call>{"name":""}</tool_call>`},
		{name: "non-string name", text: `<tool_call>{"name":42}</tool_call>`},
		{name: "parameters not an object", text: `<tool_call>{"name":"a","parameters":[1,2]}</tool_call>`},
		{name: "trailing garbage", text: `<tool_call>{"name":"a"} extra</tool_call>`},
		{
			name: "malformed first directive hides a later valid one",
			text: `<tool_call>oops</tool_call><tool_call>{"name":"b"}</tool_call>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, ok := Parse(tt.text)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, Request{}, req)
				return
			}
			assert.Equal(t, tt.wantName, req.Name)
			assert.Equal(t, tt.wantParams, req.Parameters)
			assert.Equal(t, tt.wantOK, Contains(tt.text))
		})
	}
}

func TestFormat(t *testing.T) {
	text := Format(Request{Name: "get_weather", Parameters: map[string]any{"location": "Tokyo"}})
	assert.Equal(t, "<tool_call>\n{\"name\":\"get_weather\",\"parameters\":{\"location\":\"Tokyo\"}}\n</tool_call>", text)

	req, ok := Parse(text)
	require.True(t, ok)
	assert.Equal(t, "get_weather", req.Name)

	assert.Equal(t, "<tool_call>\n{\"name\":\"ping\",\"parameters\":{}}\n</tool_call>", Format(Request{Name: "ping"}))
}
