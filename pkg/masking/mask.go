package masking

import "sync"

var defaultMasker = sync.OnceValue(func() *JSONMasker {
	return NewJSONMasker()
})

// MaskSensitiveData replaces the values of sensitive JSON properties in text
// with a mask string.
//
// Valid JSON is parsed and re-serialized (compact unless WithIndent is given):
// the value under every sensitive key, matched case-insensitively at any
// depth, becomes the mask string, and "Password=...;" segments inside other
// string values are masked. Invalid JSON is masked with regexes and otherwise
// left as is. Empty or whitespace-only text is returned unchanged.
func MaskSensitiveData(text string, opts ...Option) string {
	if len(opts) == 0 {
		return defaultMasker().Mask(text)
	}
	return NewJSONMasker(opts...).Mask(text)
}

// MaskSensitiveDataPtr is MaskSensitiveData for optional payloads: nil in, nil out.
func MaskSensitiveDataPtr(text *string, opts ...Option) *string {
	if text == nil {
		return nil
	}
	masked := MaskSensitiveData(*text, opts...)
	return &masked
}
