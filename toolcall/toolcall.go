// Package toolcall implements the textual tool-call protocol spoken between the
// agent and a model: a single JSON object enclosed in <tool_call> delimiters.
//
//	<tool_call>
//	{"name": "get_weather", "parameters": {"location": "Tokyo"}}
//	</tool_call>
//
// Parsing is deliberately lenient about what surrounds the directive and strict
// about what is inside it. Text that merely resembles a directive is treated as
// ordinary prose.
package toolcall

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

const (
	// OpenTag starts a tool-call directive.
	OpenTag = "<tool_call>"
	// CloseTag ends a tool-call directive.
	CloseTag = "</tool_call>"
)

// directivePattern matches the first delimited region, non-greedy and across newlines.
var directivePattern = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(OpenTag) + `(.*?)` + regexp.QuoteMeta(CloseTag))

// Request is a tool invocation requested by the model.
type Request struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
}

// Parse extracts the first tool-call directive from text.
//
// The boolean is false when text contains no directive or when the first
// directive is malformed: the enclosed text is not a JSON object, the name is
// missing, empty or not a string, or parameters is present but not an object.
// A directive without parameters yields an empty, non-nil mapping. Numbers in
// parameters decode as json.Number so large integers keep their precision.
func Parse(text string) (Request, bool) {
	match := directivePattern.FindStringSubmatch(text)
	if match == nil {
		return Request{}, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &raw); err != nil || raw == nil {
		return Request{}, false
	}

	nameRaw, ok := raw["name"]
	if !ok {
		return Request{}, false
	}

	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil || name == "" {
		return Request{}, false
	}

	params := map[string]any{}
	if paramsRaw, ok := raw["parameters"]; ok && string(paramsRaw) != "null" {
		dec := json.NewDecoder(bytes.NewReader(paramsRaw))
		dec.UseNumber()

		var decoded map[string]any
		if err := dec.Decode(&decoded); err != nil || decoded == nil {
			return Request{}, false
		}
		params = decoded
	}

	return Request{Name: name, Parameters: params}, true
}

// Contains reports whether text holds a well-formed tool-call directive.
func Contains(text string) bool {
	_, ok := Parse(text)
	return ok
}

// Format renders req as a directive that Parse accepts.
func Format(req Request) string {
	params := req.Parameters
	if params == nil {
		params = map[string]any{}
	}

	body, err := json.Marshal(Request{Name: req.Name, Parameters: params})
	if err != nil {
		// Parameters carrying values JSON cannot encode still produce a
		// directive naming the tool.
		body, _ = json.Marshal(Request{Name: req.Name, Parameters: map[string]any{}})
	}

	return OpenTag + "\n" + string(body) + "\n" + CloseTag
}
