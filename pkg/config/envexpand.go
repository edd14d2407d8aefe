package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes {{.NAME}} references in masking YAML with the value of
// the NAME environment variable; unset variables become empty strings.
//
// Shell-style $VAR is deliberately left alone: masking config is full of '$'
// in regex anchors ("^\$[0-9]+$") and replacement templates ("${1}[MASKED]").
// Data that does not parse or execute as a template is returned as given.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("masking").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, environ()); err != nil {
		return data
	}
	return out.Bytes()
}

func environ() map[string]string {
	vars := os.Environ()
	env := make(map[string]string, len(vars))
	for _, kv := range vars {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			env[name] = value
		}
	}
	return env
}
