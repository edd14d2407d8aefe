// Package masking hides the values of sensitive JSON properties before payloads
// reach logs, traces or debug output.
//
// Masking never fails: malformed JSON is masked with a regex fallback and
// any other problem returns the input unchanged.
package masking

// Masker is the interface for code-based maskers that need structural awareness
// beyond regex pattern matching.
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker
	// should process the data. Should be fast (string checks, not parsing).
	AppliesTo(data string) bool

	// Mask applies masking logic and returns the masked result.
	// Must be defensive: never panic and never return an error.
	Mask(data string) string
}
