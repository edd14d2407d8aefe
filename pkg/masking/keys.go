package masking

import (
	"slices"
	"strings"

	"github.com/codeready-toolchain/jsonmask/pkg/config"
)

// KeySet is a case-insensitive set of property names.
// The zero value is an empty set.
type KeySet struct {
	keys map[string]struct{}
}

// NewKeySet builds a set from names. Names are lowercased; blanks are dropped.
func NewKeySet(names ...string) KeySet {
	s := KeySet{keys: make(map[string]struct{}, len(names))}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		s.keys[name] = struct{}{}
	}
	return s
}

// DefaultKeySet returns the built-in sensitive property names.
func DefaultKeySet() KeySet {
	return NewKeySet(config.DefaultSensitiveKeys()...)
}

// Contains reports whether name is in the set, ignoring case.
func (s KeySet) Contains(name string) bool {
	if len(s.keys) == 0 {
		return false
	}
	_, ok := s.keys[strings.ToLower(name)]
	return ok
}

// Len returns the number of names in the set.
func (s KeySet) Len() int { return len(s.keys) }

// Keys returns the lowercased names in sorted order.
func (s KeySet) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
