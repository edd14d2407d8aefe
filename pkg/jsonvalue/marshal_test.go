package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Value {
	t.Helper()
	v, err := Parse(text)
	require.NoError(t, err)
	return v
}

func TestMarshal_Compact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "object",
			input: "{ \"name\" : \"John\",\n \"age\" : 30 }",
			want:  `{"name":"John","age":30}`,
		},
		{
			name:  "nested with empties",
			input: `{"a": [ ], "b": { }, "c": [null, true, false]}`,
			want:  `{"a":[],"b":{},"c":[null,true,false]}`,
		},
		{
			name:  "scalar",
			input: ` "just a string" `,
			want:  `"just a string"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Marshal(mustParse(t, tt.input), false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMarshal_Indented(t *testing.T) {
	out, err := Marshal(mustParse(t, `{"name":"John","tags":[1,2],"meta":{}}`), true)
	require.NoError(t, err)

	want := "{\n" +
		"  \"name\": \"John\",\n" +
		"  \"tags\": [\n" +
		"    1,\n" +
		"    2\n" +
		"  ],\n" +
		"  \"meta\": {}\n" +
		"}"
	assert.Equal(t, want, out)
}

func TestMarshal_EscapesOnlyWhatJSONRequires(t *testing.T) {
	out, err := Marshal(mustParse(t, `{"city":"Zürich","jp":"日本","html":"<b>&amp;</b>","q":"a\"b\\c\nd"}`), false)
	require.NoError(t, err)

	assert.Equal(t, `{"city":"Zürich","jp":"日本","html":"<b>&amp;</b>","q":"a\"b\\c\nd"}`, out)
}

func TestMarshal_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"users":[{"id":1,"name":"John"},{"id":2,"name":"Jane"}],"metadata":{"count":2}}`,
		`[]`,
		`{}`,
		`[1.5e-7, "x", null, {"deep":{"deeper":[true]}}]`,
		`"Ünïcödé"`,
		`12345678901234567890`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			original := mustParse(t, input)
			for _, indent := range []bool{true, false} {
				out, err := Marshal(original, indent)
				require.NoError(t, err)
				assert.True(t, original.Equal(mustParse(t, out)), "round trip changed value: %s", out)
			}
		})
	}
}

func TestMarshal_ConstructedTree(t *testing.T) {
	obj := NewObject()
	obj.Set("password", NewString("***MASKED***"))
	obj.Set("list", NewArray(NewNumber("1"), nil))

	out, err := Marshal(obj, false)
	require.NoError(t, err)
	assert.Equal(t, `{"password":"***MASKED***","list":[1,null]}`, out)
}

func TestMarshal_UnknownKind(t *testing.T) {
	_, err := Marshal(&Value{kind: Kind(99)}, false)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestQuoteString(t *testing.T) {
	assert.Equal(t, `"***MASKED***"`, QuoteString("***MASKED***"))
	assert.Equal(t, `"a\"b"`, QuoteString(`a"b`))
	assert.Equal(t, `"é"`, QuoteString("é"))
}
