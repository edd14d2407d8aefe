package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/jsonmask/pkg/jsonvalue"
)

func TestPrettyPrint_ValidJSON(t *testing.T) {
	result := PrettyPrint(`{"name":"John","age":30,"city":"New York"}`)

	assert.Contains(t, result, "\n")
	assert.Contains(t, result, "  ")
	assert.Contains(t, result, `"name": "John"`)
	assert.Contains(t, result, `"city": "New York"`)
}

func TestPrettyPrint_ComplexJSON(t *testing.T) {
	result := PrettyPrint(`{"users":[{"id":1,"name":"John"},{"id":2,"name":"Jane"}],"metadata":{"count":2}}`)

	want := `{
  "users": [
    {
      "id": 1,
      "name": "John"
    },
    {
      "id": 2,
      "name": "Jane"
    }
  ],
  "metadata": {
    "count": 2
  }
}`
	assert.Equal(t, want, result)
}

func TestCompact_RemovesWhitespace(t *testing.T) {
	input := "{\n  \"name\": \"John\",\n  \"age\": 30,\n  \"tags\": [ \"a\", \"b\" ]\n}"

	assert.Equal(t, `{"name":"John","age":30,"tags":["a","b"]}`, Compact(input))
}

func TestFormat_UnchangedInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "spaces", input: "   "},
		{name: "mixed whitespace", input: " \t\n "},
		{name: "invalid object", input: "{invalid json}"},
		{name: "trailing comma", input: `{"a":1,}`},
		{name: "truncated", input: `{"a":[1,2`},
		{name: "plain text", input: "hello world"},
		{name: "trailing garbage", input: `{"a":1} {"b":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.input, Format(tt.input, true))
			assert.Equal(t, tt.input, Format(tt.input, false))
		})
	}
}

func TestFormat_LineBreaks(t *testing.T) {
	inputs := []string{
		`{"a":1}`,
		`[1,2,3]`,
		`{"nested":{"list":[{"k":"line\nbreak"}]}}`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Contains(t, Format(input, true), "\n")
			assert.NotContains(t, Format(input, false), "\n")
		})
	}
}

func TestFormat_RoundTripPreservesValue(t *testing.T) {
	inputs := []string{
		`{"name":"John","age":30,"city":"New York"}`,
		`[{"id":1},{"id":2,"tags":["x","y"]}]`,
		`{"price":19.990,"big":98765432109876543210,"neg":-1e-9}`,
		`{"empty":{},"list":[],"nil":null,"flag":false}`,
		`"top-level string"`,
		`42`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			original, err := jsonvalue.Parse(input)
			require.NoError(t, err)

			for _, indent := range []bool{true, false} {
				formatted, err := jsonvalue.Parse(Format(input, indent))
				require.NoError(t, err)
				assert.True(t, original.Equal(formatted))
			}
		})
	}
}

func TestFormat_PreservesUnicode(t *testing.T) {
	input := `{"greeting":"Merhaba dünya","jp":"こんにちは","emoji":"🚀","escaped":"caf\u00e9"}`

	for _, indent := range []bool{true, false} {
		result := Format(input, indent)
		assert.Contains(t, result, "Merhaba dünya")
		assert.Contains(t, result, "こんにちは")
		assert.Contains(t, result, "🚀")
		assert.Contains(t, result, "café")
		assert.NotContains(t, result, `\u`)
	}
}

func TestFormat_DoesNotEscapeHTML(t *testing.T) {
	result := Compact(`{"html":"<a href=\"x\">&</a>"}`)
	assert.Equal(t, `{"html":"<a href=\"x\">&</a>"}`, result)
}

func TestFormat_TooDeepReturnsInput(t *testing.T) {
	input := strings.Repeat("[", jsonvalue.DefaultMaxDepth+1) + strings.Repeat("]", jsonvalue.DefaultMaxDepth+1)
	assert.Equal(t, input, PrettyPrint(input))
}

func TestFormatPtr(t *testing.T) {
	assert.Nil(t, FormatPtr(nil, true))
	assert.Nil(t, PrettyPrintPtr(nil))
	assert.Nil(t, CompactPtr(nil))

	empty := ""
	require.NotNil(t, PrettyPrintPtr(&empty))
	assert.Equal(t, "", *PrettyPrintPtr(&empty))

	spaces := "   "
	assert.Equal(t, "   ", *CompactPtr(&spaces))

	input := "{ \"a\" : 1 }"
	assert.Equal(t, `{"a":1}`, *CompactPtr(&input))
	assert.Equal(t, "{ \"a\" : 1 }", input, "input must not be modified")
}
