package masking

import (
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/codeready-toolchain/jsonmask/pkg/jsonvalue"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
// Replacement uses Regexp.ReplaceAllString template syntax.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// Apply replaces every match of the pattern in s.
func (p *CompiledPattern) Apply(s string) string {
	return p.Regex.ReplaceAllString(s, p.Replacement)
}

const regexpCacheSize = 1000

// Property and connection-string expressions depend on caller-supplied keys,
// so compiled expressions are shared across maskers through an LRU cache.
var regexpCache = newRegexpCache()

func newRegexpCache() *lru.Cache[string, any] {
	c, err := lru.New[string, any](regexpCacheSize)
	if err != nil {
		panic(fmt.Sprintf("failed to create regexp LRU cache: %v", err))
	}
	return c
}

// getCompiled works like regexp.Compile, the compiled expr or error is stored in the LRU cache
func getCompiled(expr string) (*regexp.Regexp, error) {
	if v, ok := regexpCache.Get(expr); ok {
		switch cached := v.(type) {
		case *regexp.Regexp:
			return cached, nil
		case error:
			return nil, cached
		}
	}

	r, err := regexp.Compile(expr)
	if err != nil {
		regexpCache.Add(expr, err)
		return nil, err
	}
	regexpCache.Add(expr, r)
	return r, nil
}

// literalReplacement escapes s so ReplaceAllString inserts it verbatim.
func literalReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// jsonStringContent returns s escaped for use inside a JSON string literal,
// without the surrounding quotes.
func jsonStringContent(s string) string {
	quoted := jsonvalue.QuoteString(s)
	return quoted[1 : len(quoted)-1]
}

// propertyPattern matches `"<key>": "<string value>"` in raw JSON text,
// ignoring key case. The key text is captured so its casing survives.
// A string left unterminated at the end of the text (a truncated payload)
// matches too, so no prefix of the value survives.
func propertyPattern(key, maskPattern string) (*CompiledPattern, error) {
	expr := `(?i)("` + regexp.QuoteMeta(key) + `"\s*:\s*)"(?:[^"\\]|\\.)*(?:"|\\?$)`
	re, err := getCompiled(expr)
	if err != nil {
		return nil, err
	}
	return &CompiledPattern{
		Name:        "property:" + key,
		Regex:       re,
		Replacement: "${1}" + literalReplacement(jsonvalue.QuoteString(maskPattern)),
		Description: fmt.Sprintf("String value of the %q property", key),
	}, nil
}

// connectionStringPattern matches `<key>=<value>` segments of connection
// strings up to the next ';'. With inJSONText the value also stops at the
// closing quote of the enclosing JSON string and the mask is JSON-escaped.
//
// A mask containing ';' would otherwise be split on the next pass, so such a
// mask is matched as a whole first.
func connectionStringPattern(keys []string, maskPattern string, inJSONText bool) (*CompiledPattern, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	alternatives := make([]string, 0, len(keys))
	for _, key := range keys {
		alternatives = append(alternatives, regexp.QuoteMeta(key))
	}

	value := `[^;]*`
	replacement := maskPattern
	name := "connection_string"
	if inJSONText {
		value = `(?:[^;"\\]|\\.)*`
		replacement = jsonStringContent(maskPattern)
		name = "connection_string:text"
	}

	if strings.Contains(replacement, ";") {
		value = `(?:` + regexp.QuoteMeta(replacement) + `|` + value + `)`
	}

	re, err := getCompiled(`(?i)((?:` + strings.Join(alternatives, "|") + `)\s*=)` + value)
	if err != nil {
		return nil, err
	}
	return &CompiledPattern{
		Name:        name,
		Regex:       re,
		Replacement: "${1}" + literalReplacement(replacement),
		Description: "Secret segments embedded in connection strings",
	}, nil
}
