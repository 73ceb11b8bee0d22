package util

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleArgs struct {
	A string   `json:"a" description:"Field A"`
	B *int     `json:"b" description:"Optional pointer field"`
	C int      `json:"c,omitempty"`
	D float64  `json:"d"`
	E []string `json:"-"`
	f bool
}

func TestStructFields(t *testing.T) {
	fields := StructFields(sampleArgs{})
	require.Len(t, fields, 4)

	assert.Equal(t, Field{Name: "a", Type: "string", Required: true, Description: "Field A"}, fields[0])
	assert.Equal(t, Field{Name: "b", Type: "integer", Required: false, Description: "Optional pointer field"}, fields[1])
	assert.Equal(t, Field{Name: "c", Type: "integer", Required: false}, fields[2])
	assert.Equal(t, Field{Name: "d", Type: "number", Required: true}, fields[3])

	assert.Nil(t, StructFields(42))
	assert.Nil(t, StructFields(nil))
	assert.Len(t, StructFields(&sampleArgs{}), 4)
}

func TestIsValidType(t *testing.T) {
	tests := []struct {
		value    any
		typ      string
		expected bool
	}{
		{"x", "string", true},
		{1.0, "string", false},
		{3.0, "integer", true},
		{3.5, "integer", false},
		{3.5, "number", true},
		{json.Number("9007199254740993"), "integer", true},
		{json.Number("1e3"), "integer", true},
		{json.Number("2.5"), "integer", false},
		{json.Number("2.5"), "number", true},
		{json.Number("abc"), "number", false},
		{true, "boolean", true},
		{[]any{1}, "array", true},
		{map[string]any{}, "object", true},
		{"x", "object", false},
		{nil, "string", true},
		{"x", "custom", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsValidType(tt.value, tt.typ), "%v as %s", tt.value, tt.typ)
	}
}

func TestRenderTemplate(t *testing.T) {
	out, err := RenderTemplate("t", "Hello {{.Name}} <tool_call>", map[string]any{"Name": "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Bob <tool_call>", out)

	out, err = RenderTemplate("t", "plain {json}", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain {json}", out)

	_, err = RenderTemplate("t", "{{.Missing}}", map[string]any{})
	assert.Error(t, err)

	_, err = RenderTemplate("t", "{{.Broken", nil)
	assert.Error(t, err)
}
