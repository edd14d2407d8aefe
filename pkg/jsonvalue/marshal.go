package jsonvalue

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// IndentWidth is the number of spaces per nesting level in indented output.
const IndentWidth = 2

// Stream.WriteString escapes quotes, backslashes and control characters only;
// HTML characters and non-ASCII text are written as-is.
var (
	compactAPI  = jsoniter.Config{EscapeHTML: false}.Froze()
	indentedAPI = jsoniter.Config{EscapeHTML: false, IndentionStep: IndentWidth}.Froze()
)

// Marshal serializes v. With indent, nested members go on their own lines
// indented by IndentWidth spaces; otherwise the output is a single line.
func Marshal(v *Value, indent bool) (string, error) {
	api := compactAPI
	if indent {
		api = indentedAPI
	}

	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	if err := writeValue(stream, v); err != nil {
		return "", err
	}
	if stream.Error != nil {
		return "", stream.Error
	}
	return string(stream.Buffer()), nil
}

// QuoteString returns s as a JSON string literal using the same escaping as Marshal.
func QuoteString(s string) string {
	stream := compactAPI.BorrowStream(nil)
	defer compactAPI.ReturnStream(stream)
	stream.WriteString(s)
	return string(stream.Buffer())
}

func writeValue(stream *jsoniter.Stream, v *Value) error {
	if v == nil {
		stream.WriteNil()
		return nil
	}

	switch v.kind {
	case KindNull:
		stream.WriteNil()
	case KindBool:
		stream.WriteBool(v.b)
	case KindNumber:
		stream.WriteRaw(v.s)
	case KindString:
		stream.WriteString(v.s)
	case KindArray:
		if len(v.items) == 0 {
			stream.WriteEmptyArray()
			return nil
		}
		stream.WriteArrayStart()
		for i, item := range v.items {
			if i > 0 {
				stream.WriteMore()
			}
			if err := writeValue(stream, item); err != nil {
				return err
			}
		}
		stream.WriteArrayEnd()
	case KindObject:
		if len(v.members) == 0 {
			stream.WriteEmptyObject()
			return nil
		}
		stream.WriteObjectStart()
		for i, m := range v.members {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(m.Key)
			if err := writeValue(stream, m.Value); err != nil {
				return err
			}
		}
		stream.WriteObjectEnd()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, v.kind)
	}
	return nil
}
